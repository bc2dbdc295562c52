// Package reconcile folds N loaded records into one combined editable view
// and applies accepted edits back onto each original. The combined view is
// transient: rebuilt from scratch on every (re)load and discarded on apply.
package reconcile

import (
	"github.com/ruminaider/asmdef-edit/internal/record"
	"github.com/ruminaider/asmdef-edit/internal/tristate"
)

// ReferenceRow is one combined reference row. Display marks per-row
// agreement: Mixed rows render as conflicting and are never written back.
type ReferenceRow struct {
	Value   record.Reference
	Display tristate.Value
}

// PrecompiledRow is one combined precompiled reference row.
type PrecompiledRow struct {
	Value   record.PrecompiledReference
	Display tristate.Value
}

// ConstraintRow is one combined define constraint row.
type ConstraintRow struct {
	Value   record.DefineConstraint
	Display tristate.Value
}

// VersionDefineRow is one combined version define row.
type VersionDefineRow struct {
	Value   record.VersionDefine
	Display tristate.Value
}

// Combined is the editable view over a multi-record selection. Every
// scalar boolean is three-valued; list lengths are the minimum across all
// source records, so rows beyond the shortest list are invisible here.
// Rows hold independent copies of record state, never shared rows: commit
// is an explicit copy-back.
type Combined struct {
	Name         string
	NameEditable bool // only a single-record selection can rename

	AllowUnsafeCode    tristate.Value
	OverrideReferences tristate.Value
	AutoReferenced     tristate.Value
	UseGUIDs           tristate.Value

	CompatibleWithAny tristate.Value
	PlatformFlags     []tristate.Value
	ModuleFlags       []tristate.Value

	References        []ReferenceRow
	Precompiled       []PrecompiledRow
	DefineConstraints []ConstraintRow
	VersionDefines    []VersionDefineRow

	Dirty bool
}
