package commands

import (
	"fmt"

	"github.com/ruminaider/asmdef-edit/internal/reconcile"
	"github.com/ruminaider/asmdef-edit/internal/tristate"
)

// Flag names accepted by SetFlag.
const (
	FlagAllowUnsafe        = "allow-unsafe"
	FlagOverrideReferences = "override-references"
	FlagAutoReferenced     = "auto-referenced"
	FlagUseGUIDs           = "use-guids"
)

// SetFlag sets a scalar boolean on the combined view. The edit reaches
// the underlying records at apply time.
func (s *Session) SetFlag(name string, value bool) error {
	var target *tristate.Value
	switch name {
	case FlagAllowUnsafe:
		target = &s.Combined.AllowUnsafeCode
	case FlagOverrideReferences:
		target = &s.Combined.OverrideReferences
	case FlagAutoReferenced:
		target = &s.Combined.AutoReferenced
	case FlagUseGUIDs:
		target = &s.Combined.UseGUIDs
	default:
		return fmt.Errorf("unknown flag %q", name)
	}
	*target = tristate.FromBool(value)
	s.Combined.Dirty = true
	return nil
}

// SetName renames the assembly. Only a single-record selection can
// rename; for bulk selections the combined name is display-only.
func (s *Session) SetName(name string) error {
	if !s.Combined.NameEditable {
		return fmt.Errorf("cannot rename across %d records; select exactly one", len(s.Records))
	}
	if name == "" {
		return fmt.Errorf("assembly name cannot be empty")
	}
	s.Combined.Name = name
	s.Combined.Dirty = true
	return nil
}

// SetAnyPlatform drives the any-platform toggle, normalizing source
// records when the combined flag leaves the mixed state.
func (s *Session) SetAnyPlatform(value bool) error {
	if err := reconcile.SetCompatibleWithAny(s.Combined, s.Records, value); err != nil {
		return err
	}
	s.Combined.Dirty = true
	return nil
}

// SelectAllPlatforms marks every platform flag in the combined view.
func (s *Session) SelectAllPlatforms() {
	for i := range s.Combined.PlatformFlags {
		s.Combined.PlatformFlags[i] = tristate.True
	}
	s.Combined.Dirty = true
}

// DeselectAllPlatforms clears every platform flag in the combined view.
func (s *Session) DeselectAllPlatforms() {
	for i := range s.Combined.PlatformFlags {
		s.Combined.PlatformFlags[i] = tristate.False
	}
	s.Combined.Dirty = true
}

// SetPlatform includes or excludes one named platform. The stored flag's
// sense depends on the any-platform mode, which must be concrete first.
func (s *Session) SetPlatform(name string, included bool) error {
	i, err := s.Deps.Platforms.Index(name)
	if err != nil {
		return err
	}
	anyPlatform, err := s.Combined.CompatibleWithAny.Bool()
	if err != nil {
		return fmt.Errorf("platform compatibility mode is mixed; set any-platform first")
	}
	// In exclude mode a set flag means "not on this platform".
	flag := included != anyPlatform
	s.Combined.PlatformFlags[i] = tristate.FromBool(flag)
	s.Combined.Dirty = true
	return nil
}

// SetModule toggles one optional module reference by token.
func (s *Session) SetModule(token string, enabled bool) error {
	for i, m := range s.Deps.Modules {
		if m.Token == token {
			s.Combined.ModuleFlags[i] = tristate.FromBool(enabled)
			s.Combined.Dirty = true
			return nil
		}
	}
	return fmt.Errorf("unknown optional module %q", token)
}
