package reconcile

import (
	"github.com/ruminaider/asmdef-edit/internal/record"
	"github.com/ruminaider/asmdef-edit/internal/tristate"
)

// ApplyResult is the per-record outcome of a commit.
type ApplyResult struct {
	Path string
	Err  error
}

// Apply copies every non-Mixed field of the combined view onto each
// original record, then saves the records one at a time. Mixed fields are
// left untouched everywhere, preserving existing divergence; list rows
// beyond the combined length are untouched on every original. Saves are
// sequential with no rollback: a failure on one record does not undo
// records already written, and each failed record keeps its dirty flag so
// the caller knows what still needs saving.
func Apply(c *Combined, records []*record.Record, deps record.Deps) []ApplyResult {
	for _, rec := range records {
		copyBack(c, rec, len(records) == 1)
		// Needs saving until the write below succeeds; a failed save
		// leaves the flag set so the caller knows what is still stale.
		rec.Dirty = true
	}

	results := make([]ApplyResult, 0, len(records))
	for _, rec := range records {
		results = append(results, ApplyResult{Path: rec.Path, Err: rec.Save(deps)})
	}
	return results
}

func copyBack(c *Combined, rec *record.Record, sole bool) {
	// Bulk renames are not supported; the combined name is read-only
	// display text unless exactly one record is selected.
	if sole && c.NameEditable {
		rec.Name = c.Name
	}

	setBool(&rec.AllowUnsafeCode, c.AllowUnsafeCode)
	setBool(&rec.OverrideReferences, c.OverrideReferences)
	setBool(&rec.AutoReferenced, c.AutoReferenced)
	if c.UseGUIDs != tristate.Mixed {
		rec.UseGUIDs = c.UseGUIDs
	}

	setBool(&rec.Platforms.CompatibleWithAny, c.CompatibleWithAny)
	for i, v := range c.PlatformFlags {
		setBool(&rec.Platforms.Flags[i], v)
	}
	for i, v := range c.ModuleFlags {
		setBool(&rec.OptionalModules[i], v)
	}

	for k, row := range c.References {
		if row.Display != tristate.Mixed {
			rec.References[k] = row.Value
		}
	}
	for k, row := range c.Precompiled {
		if row.Display != tristate.Mixed {
			rec.Precompiled[k] = row.Value
		}
	}
	for k, row := range c.DefineConstraints {
		if row.Display != tristate.Mixed {
			rec.DefineConstraints[k] = row.Value
		}
	}
	for k, row := range c.VersionDefines {
		if row.Display != tristate.Mixed {
			rec.VersionDefines[k] = row.Value
		}
	}
}

func setBool(dst *bool, v tristate.Value) {
	if b, err := v.Bool(); err == nil {
		*dst = b
	}
}
