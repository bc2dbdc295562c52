package record

import (
	"github.com/ruminaider/asmdef-edit/internal/asmdef"
	"github.com/ruminaider/asmdef-edit/internal/tristate"
)

// Serialize re-encodes the record as a persisted document.
//
// Reference rows follow UseGUIDs: True writes the identifier form, falling
// back to the original raw text when no identifier is resolvable; False
// writes plain declared names; Mixed passes each row's raw text through
// unmodified. The platform filter re-emits as an include or exclude list
// chosen by this record's own any-platform flag, holding exactly the
// platforms whose flag is set; when none is set neither list is emitted.
func (r *Record) Serialize(deps Deps) asmdef.Document {
	doc := asmdef.Document{
		Name:               r.Name,
		AllowUnsafeCode:    r.AllowUnsafeCode,
		OverrideReferences: r.OverrideReferences,
		AutoReferenced:     r.AutoReferenced,
	}

	for _, ref := range r.References {
		doc.References = append(doc.References, r.encodeReference(ref, deps.Resolver))
	}
	for _, p := range r.Precompiled {
		doc.PrecompiledReferences = append(doc.PrecompiledReferences, p.Name)
	}
	for _, d := range r.DefineConstraints {
		doc.DefineConstraints = append(doc.DefineConstraints, d.String())
	}
	for _, v := range r.VersionDefines {
		doc.VersionDefines = append(doc.VersionDefines, asmdef.VersionDefine{
			Name: v.Name, Expression: v.Expression, Define: v.Define,
		})
	}

	var flagged []string
	for i, set := range r.Platforms.Flags {
		if set {
			flagged = append(flagged, deps.Platforms.At(i).Name)
		}
	}
	if r.Platforms.CompatibleWithAny {
		doc.ExcludePlatforms = flagged
	} else {
		doc.IncludePlatforms = flagged
	}

	for i, set := range r.OptionalModules {
		if set {
			doc.OptionalUnityReferences = append(doc.OptionalUnityReferences, deps.Modules[i].Token)
		}
	}

	return doc
}

// Save serializes the record back to its source path and clears the dirty
// flag on success.
func (r *Record) Save(deps Deps) error {
	if err := asmdef.Write(r.Path, r.Serialize(deps)); err != nil {
		return err
	}
	r.Dirty = false
	return nil
}

func (r *Record) encodeReference(ref Reference, resolver Resolver) string {
	switch r.UseGUIDs {
	case tristate.True:
		if ref.GUID != "" {
			return asmdef.GUIDReference(ref.GUID)
		}
		if resolver != nil && ref.Path != "" {
			if guid, ok := resolver.GUIDForPath(ref.Path); ok {
				return asmdef.GUIDReference(guid)
			}
		}
		return ref.Raw
	case tristate.False:
		return ref.Name
	default:
		return ref.Raw
	}
}
