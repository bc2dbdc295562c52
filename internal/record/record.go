// Package record holds the in-memory editing state of one assembly
// definition and the loader that builds it from the persisted document.
package record

import (
	"github.com/ruminaider/asmdef-edit/internal/tristate"
)

// Reference is one assembly reference row.
type Reference struct {
	Raw      string // original serialized form, preserved verbatim
	Name     string // display name; the target's declared name when resolvable
	GUID     string // opaque identifier, "" when the reference is name-form
	Path     string // resolved target path, "" when unresolved
	Resolved bool   // false for dangling identifier references (shown grayed)
}

// Key is the identity used when comparing rows across records.
func (r Reference) Key() string {
	if r.Path != "" {
		return r.Path
	}
	return r.Raw
}

// PrecompiledReference is one precompiled (DLL) reference row.
type PrecompiledReference struct {
	Name     string
	Path     string // resolved descriptor path, "" when unknown
	Resolved bool
}

// DefineConstraint is one scripting-define constraint row.
type DefineConstraint struct {
	Symbol  string
	Negated bool
}

// String returns the serialized constraint form, with the negation marker.
func (d DefineConstraint) String() string {
	if d.Negated {
		return "!" + d.Symbol
	}
	return d.Symbol
}

// VersionDefine is one version define row: Define is set when the resource
// named Name has a version matching Expression.
type VersionDefine struct {
	Name       string
	Expression string
	Define     string
}

// Key is the identity used when comparing rows across records.
func (v VersionDefine) Key() string {
	return v.Name + "\x00" + v.Expression + "\x00" + v.Define
}

// PlatformFilter pairs the any-platform flag with the per-platform flag
// array. The array always lists platforms in the opposite sense of the
// flag: when CompatibleWithAny is true the flags mark exclusions, when
// false they mark inclusions.
type PlatformFilter struct {
	CompatibleWithAny bool
	Flags             []bool // indexed by platform catalog position
}

// Record is the editable state of one assembly definition.
type Record struct {
	Path string // source file, also the record's identity

	Name               string
	References         []Reference
	Precompiled        []PrecompiledReference
	DefineConstraints  []DefineConstraint
	VersionDefines     []VersionDefine
	AllowUnsafeCode    bool
	OverrideReferences bool
	AutoReferenced     bool

	// UseGUIDs controls how references re-serialize: True writes the
	// identifier form, False writes plain names, Mixed passes each
	// reference's original raw text through unchanged.
	UseGUIDs tristate.Value

	Platforms       PlatformFilter
	OptionalModules []bool // indexed by module catalog position

	// Dirty marks unsaved state, including load-time normalization of
	// malformed entries.
	Dirty bool
}
