package reconcile

import (
	"fmt"

	"github.com/ruminaider/asmdef-edit/internal/record"
)

// List row edits apply in parallel across all records. Inserts clamp the
// index to each record's own list length, so shorter lists receive the new
// row at their tail instead of out of range; the same clamping rule is
// used for all four list kinds. Removals require the index to be valid in
// every record, which the minimum-length combined view guarantees.

// InsertReference inserts a copy of tmpl into every record's reference list.
func InsertReference(records []*record.Record, index int, tmpl record.Reference) {
	for _, rec := range records {
		i := min(index, len(rec.References))
		rec.References = append(rec.References[:i:i], append([]record.Reference{tmpl}, rec.References[i:]...)...)
		rec.Dirty = true
	}
}

// RemoveReferenceAt removes row index from every record's reference list.
func RemoveReferenceAt(records []*record.Record, index int) error {
	for _, rec := range records {
		if index < 0 || index >= len(rec.References) {
			return fmt.Errorf("reference row %d out of range for %s", index, rec.Path)
		}
	}
	for _, rec := range records {
		rec.References = append(rec.References[:index], rec.References[index+1:]...)
		rec.Dirty = true
	}
	return nil
}

// InsertPrecompiled inserts a copy of tmpl into every record's precompiled
// reference list.
func InsertPrecompiled(records []*record.Record, index int, tmpl record.PrecompiledReference) {
	for _, rec := range records {
		i := min(index, len(rec.Precompiled))
		rec.Precompiled = append(rec.Precompiled[:i:i], append([]record.PrecompiledReference{tmpl}, rec.Precompiled[i:]...)...)
		rec.Dirty = true
	}
}

// RemovePrecompiledAt removes row index from every record's precompiled
// reference list.
func RemovePrecompiledAt(records []*record.Record, index int) error {
	for _, rec := range records {
		if index < 0 || index >= len(rec.Precompiled) {
			return fmt.Errorf("precompiled row %d out of range for %s", index, rec.Path)
		}
	}
	for _, rec := range records {
		rec.Precompiled = append(rec.Precompiled[:index], rec.Precompiled[index+1:]...)
		rec.Dirty = true
	}
	return nil
}

// InsertConstraint inserts a copy of tmpl into every record's define
// constraint list.
func InsertConstraint(records []*record.Record, index int, tmpl record.DefineConstraint) {
	for _, rec := range records {
		i := min(index, len(rec.DefineConstraints))
		rec.DefineConstraints = append(rec.DefineConstraints[:i:i], append([]record.DefineConstraint{tmpl}, rec.DefineConstraints[i:]...)...)
		rec.Dirty = true
	}
}

// RemoveConstraintAt removes row index from every record's define
// constraint list.
func RemoveConstraintAt(records []*record.Record, index int) error {
	for _, rec := range records {
		if index < 0 || index >= len(rec.DefineConstraints) {
			return fmt.Errorf("define constraint row %d out of range for %s", index, rec.Path)
		}
	}
	for _, rec := range records {
		rec.DefineConstraints = append(rec.DefineConstraints[:index], rec.DefineConstraints[index+1:]...)
		rec.Dirty = true
	}
	return nil
}

// InsertVersionDefine inserts a copy of tmpl into every record's version
// define list.
func InsertVersionDefine(records []*record.Record, index int, tmpl record.VersionDefine) {
	for _, rec := range records {
		i := min(index, len(rec.VersionDefines))
		rec.VersionDefines = append(rec.VersionDefines[:i:i], append([]record.VersionDefine{tmpl}, rec.VersionDefines[i:]...)...)
		rec.Dirty = true
	}
}

// RemoveVersionDefineAt removes row index from every record's version
// define list.
func RemoveVersionDefineAt(records []*record.Record, index int) error {
	for _, rec := range records {
		if index < 0 || index >= len(rec.VersionDefines) {
			return fmt.Errorf("version define row %d out of range for %s", index, rec.Path)
		}
	}
	for _, rec := range records {
		rec.VersionDefines = append(rec.VersionDefines[:index], rec.VersionDefines[index+1:]...)
		rec.Dirty = true
	}
	return nil
}
