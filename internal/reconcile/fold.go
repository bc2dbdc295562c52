package reconcile

import (
	"fmt"

	"github.com/ruminaider/asmdef-edit/internal/record"
	"github.com/ruminaider/asmdef-edit/internal/tristate"
)

// Fold builds the combined view over records. At least one record is
// required. Scalars fold pairwise with tristate.Combine; list rows are
// seeded from the first record and marked Mixed on the first identity-key
// mismatch, which later agreement never undoes.
func Fold(records []*record.Record) (*Combined, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("reconcile: no records")
	}

	first := records[0]
	c := &Combined{
		Name:               first.Name,
		NameEditable:       len(records) == 1,
		AllowUnsafeCode:    tristate.FromBool(first.AllowUnsafeCode),
		OverrideReferences: tristate.FromBool(first.OverrideReferences),
		AutoReferenced:     tristate.FromBool(first.AutoReferenced),
		UseGUIDs:           first.UseGUIDs,
		Dirty:              first.Dirty,
	}

	for _, rec := range records[1:] {
		c.AllowUnsafeCode = tristate.Combine(c.AllowUnsafeCode, tristate.FromBool(rec.AllowUnsafeCode))
		c.OverrideReferences = tristate.Combine(c.OverrideReferences, tristate.FromBool(rec.OverrideReferences))
		c.AutoReferenced = tristate.Combine(c.AutoReferenced, tristate.FromBool(rec.AutoReferenced))
		c.UseGUIDs = tristate.Combine(c.UseGUIDs, rec.UseGUIDs)
		c.Dirty = c.Dirty || rec.Dirty
	}

	foldPlatforms(c, records)
	foldModules(c, records)
	foldReferences(c, records)
	foldPrecompiled(c, records)
	foldConstraints(c, records)
	foldVersionDefines(c, records)

	return c, nil
}

// foldPlatforms combines the any-platform flag and the per-platform array
// element-wise. Exported separately from Fold because the flipper must
// recombine this section after normalizing representations.
func foldPlatforms(c *Combined, records []*record.Record) {
	first := records[0].Platforms
	c.CompatibleWithAny = tristate.FromBool(first.CompatibleWithAny)
	c.PlatformFlags = make([]tristate.Value, len(first.Flags))
	for i, f := range first.Flags {
		c.PlatformFlags[i] = tristate.FromBool(f)
	}
	for _, rec := range records[1:] {
		c.CompatibleWithAny = tristate.Combine(c.CompatibleWithAny, tristate.FromBool(rec.Platforms.CompatibleWithAny))
		for i, f := range rec.Platforms.Flags {
			c.PlatformFlags[i] = tristate.Combine(c.PlatformFlags[i], tristate.FromBool(f))
		}
	}
}

func foldModules(c *Combined, records []*record.Record) {
	first := records[0].OptionalModules
	c.ModuleFlags = make([]tristate.Value, len(first))
	for i, f := range first {
		c.ModuleFlags[i] = tristate.FromBool(f)
	}
	for _, rec := range records[1:] {
		for i, f := range rec.OptionalModules {
			c.ModuleFlags[i] = tristate.Combine(c.ModuleFlags[i], tristate.FromBool(f))
		}
	}
}

func foldReferences(c *Combined, records []*record.Record) {
	n := len(records[0].References)
	for _, rec := range records[1:] {
		n = min(n, len(rec.References))
	}
	c.References = make([]ReferenceRow, n)
	for k := 0; k < n; k++ {
		row := ReferenceRow{Value: records[0].References[k], Display: tristate.True}
		for _, rec := range records[1:] {
			if rec.References[k].Key() != row.Value.Key() {
				row.Display = tristate.Mixed
				break
			}
		}
		c.References[k] = row
	}
}

func foldPrecompiled(c *Combined, records []*record.Record) {
	n := len(records[0].Precompiled)
	for _, rec := range records[1:] {
		n = min(n, len(rec.Precompiled))
	}
	c.Precompiled = make([]PrecompiledRow, n)
	for k := 0; k < n; k++ {
		row := PrecompiledRow{Value: records[0].Precompiled[k], Display: tristate.True}
		for _, rec := range records[1:] {
			if rec.Precompiled[k].Name != row.Value.Name {
				row.Display = tristate.Mixed
				break
			}
		}
		c.Precompiled[k] = row
	}
}

func foldConstraints(c *Combined, records []*record.Record) {
	n := len(records[0].DefineConstraints)
	for _, rec := range records[1:] {
		n = min(n, len(rec.DefineConstraints))
	}
	c.DefineConstraints = make([]ConstraintRow, n)
	for k := 0; k < n; k++ {
		row := ConstraintRow{Value: records[0].DefineConstraints[k], Display: tristate.True}
		for _, rec := range records[1:] {
			// The serialized form carries the negation marker, so rows
			// differing only in negation still compare unequal.
			if rec.DefineConstraints[k].String() != row.Value.String() {
				row.Display = tristate.Mixed
				break
			}
		}
		c.DefineConstraints[k] = row
	}
}

func foldVersionDefines(c *Combined, records []*record.Record) {
	n := len(records[0].VersionDefines)
	for _, rec := range records[1:] {
		n = min(n, len(rec.VersionDefines))
	}
	c.VersionDefines = make([]VersionDefineRow, n)
	for k := 0; k < n; k++ {
		row := VersionDefineRow{Value: records[0].VersionDefines[k], Display: tristate.True}
		for _, rec := range records[1:] {
			// Any of name, expression, or define differing marks the row.
			if rec.VersionDefines[k].Key() != row.Value.Key() {
				row.Display = tristate.Mixed
				break
			}
		}
		c.VersionDefines[k] = row
	}
}
