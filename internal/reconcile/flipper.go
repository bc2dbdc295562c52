package reconcile

import (
	"errors"

	"github.com/ruminaider/asmdef-edit/internal/record"
	"github.com/ruminaider/asmdef-edit/internal/tristate"
)

// ErrMixedTarget is returned when platform-compatibility normalization is
// asked to target Mixed. A concrete target is required; hitting this from
// framework code is a programming defect, never expected from user input.
var ErrMixedTarget = errors.New("reconcile: cannot normalize platform compatibility to a mixed value")

// InvertFilter negates every per-platform flag of one record, flipping the
// meaning of the array without changing which platforms are special.
func InvertFilter(rec *record.Record) {
	for i := range rec.Platforms.Flags {
		rec.Platforms.Flags[i] = !rec.Platforms.Flags[i]
	}
}

// NormalizeAllTo rewrites every record whose any-platform flag differs
// from target: the flag is set to target and the per-platform array
// inverted so the filtered set is preserved. Records already matching are
// untouched.
func NormalizeAllTo(target tristate.Value, records []*record.Record) error {
	want, err := target.Bool()
	if err != nil {
		return ErrMixedTarget
	}
	for _, rec := range records {
		if rec.Platforms.CompatibleWithAny == want {
			continue
		}
		rec.Platforms.CompatibleWithAny = want
		InvertFilter(rec)
		rec.Dirty = true
	}
	return nil
}

// SetCompatibleWithAny drives the any-platform toggle on the combined view.
//
// Mixed to concrete: every source record is normalized to the new value
// first, then the combined per-platform array is recombined from the
// now-uniform sources. Skipping the normalization would let a record whose
// flag already equals the new value, but whose array encodes the opposite
// sense, corrupt the recombine.
//
// Concrete to concrete: all records already agree, so each record's flag
// flips along with its array directly.
func SetCompatibleWithAny(c *Combined, records []*record.Record, value bool) error {
	target := tristate.FromBool(value)
	switch c.CompatibleWithAny {
	case target:
		return nil
	case tristate.Mixed:
		if err := NormalizeAllTo(target, records); err != nil {
			return err
		}
	default:
		for _, rec := range records {
			rec.Platforms.CompatibleWithAny = value
			InvertFilter(rec)
			rec.Dirty = true
		}
	}
	foldPlatforms(c, records)
	return nil
}
