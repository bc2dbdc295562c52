package commands

import (
	"fmt"
	"strings"

	"github.com/ruminaider/asmdef-edit/internal/asmdef"
	"github.com/ruminaider/asmdef-edit/internal/reconcile"
	"github.com/ruminaider/asmdef-edit/internal/record"
	"github.com/ruminaider/asmdef-edit/internal/symbols"
	"github.com/ruminaider/asmdef-edit/internal/versionexpr"
)

// Row edits mutate every record in parallel and rebuild the combined view,
// so the caller always observes a fully reconciled state afterwards.

// AddReference appends a reference row to every record. ref may be a plain
// assembly name or the serialized identifier form.
func (s *Session) AddReference(ref string) error {
	if ref == "" {
		return fmt.Errorf("reference cannot be empty")
	}
	tmpl := resolveTemplate(ref, s.Deps)
	reconcile.InsertReference(s.Records, len(s.Combined.References), tmpl)
	return s.Refold()
}

// RemoveReference removes the combined row at index from every record.
func (s *Session) RemoveReference(index int) error {
	if index < 0 || index >= len(s.Combined.References) {
		return fmt.Errorf("reference row %d out of range", index)
	}
	if err := reconcile.RemoveReferenceAt(s.Records, index); err != nil {
		return err
	}
	return s.Refold()
}

// AddPrecompiled appends a precompiled reference row to every record.
func (s *Session) AddPrecompiled(name string) error {
	if name == "" {
		return fmt.Errorf("precompiled reference cannot be empty")
	}
	path, ok := s.Deps.PrecompiledPaths[name]
	tmpl := record.PrecompiledReference{Name: name, Path: path, Resolved: ok}
	reconcile.InsertPrecompiled(s.Records, len(s.Combined.Precompiled), tmpl)
	return s.Refold()
}

// RemovePrecompiled removes the combined row at index from every record.
func (s *Session) RemovePrecompiled(index int) error {
	if index < 0 || index >= len(s.Combined.Precompiled) {
		return fmt.Errorf("precompiled row %d out of range", index)
	}
	if err := reconcile.RemovePrecompiledAt(s.Records, index); err != nil {
		return err
	}
	return s.Refold()
}

// AddDefineConstraint appends a constraint row, given in serialized form
// with an optional leading negation marker.
func (s *Session) AddDefineConstraint(raw string) error {
	sym := strings.TrimPrefix(raw, "!")
	if !s.symbolValid(sym) {
		return fmt.Errorf("invalid define constraint symbol %q", sym)
	}
	tmpl := record.DefineConstraint{Symbol: sym, Negated: strings.HasPrefix(raw, "!")}
	reconcile.InsertConstraint(s.Records, len(s.Combined.DefineConstraints), tmpl)
	return s.Refold()
}

// RemoveDefineConstraint removes the combined row at index from every record.
func (s *Session) RemoveDefineConstraint(index int) error {
	if index < 0 || index >= len(s.Combined.DefineConstraints) {
		return fmt.Errorf("define constraint row %d out of range", index)
	}
	if err := reconcile.RemoveConstraintAt(s.Records, index); err != nil {
		return err
	}
	return s.Refold()
}

// AddVersionDefine appends a version define row after validating its
// symbol and expression.
func (s *Session) AddVersionDefine(resource, expression, define string) error {
	if resource == "" {
		return fmt.Errorf("resource name cannot be empty")
	}
	if !s.symbolValid(define) {
		return fmt.Errorf("invalid version define symbol %q", define)
	}
	if _, err := versionexpr.Parse(expression); err != nil {
		return err
	}
	tmpl := record.VersionDefine{Name: resource, Expression: expression, Define: define}
	reconcile.InsertVersionDefine(s.Records, len(s.Combined.VersionDefines), tmpl)
	return s.Refold()
}

// RemoveVersionDefine removes the combined row at index from every record.
func (s *Session) RemoveVersionDefine(index int) error {
	if index < 0 || index >= len(s.Combined.VersionDefines) {
		return fmt.Errorf("version define row %d out of range", index)
	}
	if err := reconcile.RemoveVersionDefineAt(s.Records, index); err != nil {
		return err
	}
	return s.Refold()
}

func (s *Session) symbolValid(sym string) bool {
	if s.Deps.SymbolValid != nil {
		return s.Deps.SymbolValid(sym)
	}
	return symbols.IsValid(sym)
}

// resolveTemplate builds the new-row reference the same way the loader
// resolves one read from disk.
func resolveTemplate(ref string, deps record.Deps) record.Reference {
	tmpl := record.Reference{Raw: ref, Name: ref, Resolved: true}
	if !asmdef.IsGUIDReference(ref) {
		return tmpl
	}
	tmpl.Resolved = false
	tmpl.GUID = asmdef.GUIDFromReference(ref)
	if deps.Resolver == nil {
		return tmpl
	}
	if path, ok := deps.Resolver.PathForGUID(tmpl.GUID); ok {
		tmpl.Path = path
		if target, err := asmdef.Read(path); err == nil {
			tmpl.Name = target.Name
			tmpl.Resolved = true
		}
	}
	return tmpl
}
