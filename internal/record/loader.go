package record

import (
	"fmt"

	"github.com/ruminaider/asmdef-edit/internal/asmdef"
	"github.com/ruminaider/asmdef-edit/internal/platform"
	"github.com/ruminaider/asmdef-edit/internal/symbols"
	"github.com/ruminaider/asmdef-edit/internal/tristate"
)

// Resolver maps opaque asset identifiers to assembly definition paths and
// back. Satisfied by assetdb.DB.
type Resolver interface {
	PathForGUID(guid string) (string, bool)
	GUIDForPath(path string) (string, bool)
}

// Deps are the collaborators a load needs. Platforms and Modules must be
// set; SymbolValid defaults to symbols.IsValid when nil.
type Deps struct {
	Resolver    Resolver
	Platforms   *platform.Catalog
	Modules     []platform.OptionalModule
	SymbolValid func(string) bool

	// PrecompiledPaths optionally maps a precompiled reference name to its
	// resolved location. Entries absent from the map load as unresolved.
	PrecompiledPaths map[string]string
}

func (d Deps) symbolValid(name string) bool {
	if d.SymbolValid != nil {
		return d.SymbolValid(name)
	}
	return symbols.IsValid(name)
}

// Diagnostic is one recovered per-entry load problem. The entry was
// skipped (or retained unresolved) and the record marked dirty; loading
// continued.
type Diagnostic struct {
	Path    string // source record
	Entry   string // offending entry, verbatim
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Path, d.Entry, d.Message)
}

// Load reads the record at path and builds its editing state.
// A missing or unparsable file, or an unknown platform name in the filter
// lists, fails the whole load; no partial record is returned. Malformed
// list entries are skipped with a Diagnostic and mark the record dirty.
func Load(path string, deps Deps) (*Record, []Diagnostic, error) {
	doc, err := asmdef.Read(path)
	if err != nil {
		return nil, nil, err
	}
	return FromDocument(path, doc, deps)
}

// FromDocument builds the editing state from an already-parsed document.
func FromDocument(path string, doc asmdef.Document, deps Deps) (*Record, []Diagnostic, error) {
	rec := &Record{
		Path:               path,
		Name:               doc.Name,
		AllowUnsafeCode:    doc.AllowUnsafeCode,
		OverrideReferences: doc.OverrideReferences,
		AutoReferenced:     doc.AutoReferenced,
		OptionalModules:    make([]bool, len(deps.Modules)),
	}
	var diags []Diagnostic
	skip := func(entry, msg string) {
		diags = append(diags, Diagnostic{Path: path, Entry: entry, Message: msg})
		rec.Dirty = true
	}

	// References. Identifier form is preferred when the record declares no
	// references at all, and wins as soon as any loaded reference uses it.
	rec.UseGUIDs = tristate.FromBool(len(doc.References) == 0)
	for _, raw := range doc.References {
		if raw == "" {
			skip(raw, "empty reference")
			continue
		}
		rec.References = append(rec.References, resolveReference(raw, deps))
		if asmdef.IsGUIDReference(raw) {
			rec.UseGUIDs = tristate.True
		}
	}

	for _, name := range doc.PrecompiledReferences {
		if name == "" {
			skip(name, "empty precompiled reference")
			continue
		}
		p, ok := deps.PrecompiledPaths[name]
		rec.Precompiled = append(rec.Precompiled, PrecompiledReference{
			Name: name, Path: p, Resolved: ok,
		})
	}

	for _, raw := range doc.DefineConstraints {
		sym, negated := splitConstraint(raw)
		if !deps.symbolValid(sym) {
			skip(raw, "invalid define constraint symbol")
			continue
		}
		rec.DefineConstraints = append(rec.DefineConstraints, DefineConstraint{
			Symbol: sym, Negated: negated,
		})
	}

	for _, vd := range doc.VersionDefines {
		if !deps.symbolValid(vd.Define) {
			skip(vd.Define, "invalid version define symbol")
			continue
		}
		rec.VersionDefines = append(rec.VersionDefines, VersionDefine{
			Name: vd.Name, Expression: vd.Expression, Define: vd.Define,
		})
	}

	for _, token := range doc.OptionalUnityReferences {
		i, err := platform.ModuleIndex(deps.Modules, token)
		if err != nil {
			skip(token, "unknown optional module reference")
			continue
		}
		rec.OptionalModules[i] = true
	}

	filter, err := reconstructFilter(doc, deps.Platforms)
	if err != nil {
		// An unknown platform name is unresolvable ambiguity: silently
		// dropping it would change build semantics, so fail the record.
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	rec.Platforms = filter

	return rec, diags, nil
}

// resolveReference builds a Reference row from its serialized form.
// Identifier-form references that cannot be located, or whose target fails
// to parse, are retained unresolved rather than dropped, so the user can
// see and fix dangling references.
func resolveReference(raw string, deps Deps) Reference {
	ref := Reference{Raw: raw, Name: raw}
	if !asmdef.IsGUIDReference(raw) {
		// Plain-name reference: nothing to resolve.
		ref.Resolved = true
		return ref
	}

	ref.GUID = asmdef.GUIDFromReference(raw)
	if deps.Resolver == nil {
		return ref
	}
	path, ok := deps.Resolver.PathForGUID(ref.GUID)
	if !ok {
		return ref
	}
	ref.Path = path
	target, err := asmdef.Read(path)
	if err != nil {
		return ref
	}
	ref.Name = target.Name
	ref.Resolved = true
	return ref
}

func splitConstraint(raw string) (symbol string, negated bool) {
	if len(raw) > 0 && raw[0] == '!' {
		return raw[1:], true
	}
	return raw, false
}

// reconstructFilter rebuilds the platform filter from whichever list the
// document carries. Include lists mean "not compatible with any platform";
// exclude lists the reverse; neither list means unconditionally compatible.
func reconstructFilter(doc asmdef.Document, catalog *platform.Catalog) (PlatformFilter, error) {
	filter := PlatformFilter{
		CompatibleWithAny: true,
		Flags:             make([]bool, catalog.Len()),
	}
	names := doc.ExcludePlatforms
	if len(doc.IncludePlatforms) > 0 {
		filter.CompatibleWithAny = false
		names = doc.IncludePlatforms
	}
	for _, name := range names {
		i, err := catalog.Index(name)
		if err != nil {
			return PlatformFilter{}, err
		}
		filter.Flags[i] = true
	}
	return filter, nil
}
