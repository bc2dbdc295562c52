// Package platform holds the catalogs of build platforms and optional
// engine module references. Catalogs are injected into the loader and
// reconciler rather than read as ambient globals, so tests can substitute
// smaller ones.
package platform

import (
	"errors"
	"fmt"
)

// ErrUnknownPlatform is returned when a name is not in the catalog.
// Loaders treat it as fatal for the whole record.
var ErrUnknownPlatform = errors.New("unknown platform")

// Platform is one build target an assembly can be filtered on.
type Platform struct {
	Name        string
	DisplayName string
}

// OptionalModule is an engine module an assembly may opt into referencing.
type OptionalModule struct {
	Token       string
	DisplayName string
	Tooltip     string
}

// Catalog is an ordered, immutable list of platforms. Per-platform flag
// arrays throughout the editor are indexed by catalog position.
type Catalog struct {
	platforms []Platform
	index     map[string]int
}

// NewCatalog builds a catalog from an ordered platform list.
func NewCatalog(platforms []Platform) *Catalog {
	idx := make(map[string]int, len(platforms))
	for i, p := range platforms {
		idx[p.Name] = i
	}
	return &Catalog{platforms: platforms, index: idx}
}

// Len returns the number of platforms.
func (c *Catalog) Len() int { return len(c.platforms) }

// At returns the platform at index i.
func (c *Catalog) At(i int) Platform { return c.platforms[i] }

// Index resolves a platform name to its catalog index.
func (c *Catalog) Index(name string) (int, error) {
	i, ok := c.index[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownPlatform, name)
	}
	return i, nil
}

// Names returns all platform names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.platforms))
	for i, p := range c.platforms {
		names[i] = p.Name
	}
	return names
}

// Default returns the built-in platform catalog.
func Default() *Catalog {
	return NewCatalog([]Platform{
		{Name: "Editor", DisplayName: "Editor"},
		{Name: "WindowsStandalone32", DisplayName: "Windows 32-bit"},
		{Name: "WindowsStandalone64", DisplayName: "Windows 64-bit"},
		{Name: "macOSStandalone", DisplayName: "macOS"},
		{Name: "LinuxStandalone64", DisplayName: "Linux 64-bit"},
		{Name: "iOS", DisplayName: "iOS"},
		{Name: "Android", DisplayName: "Android"},
		{Name: "WebGL", DisplayName: "WebGL"},
		{Name: "PS4", DisplayName: "PlayStation 4"},
		{Name: "PS5", DisplayName: "PlayStation 5"},
		{Name: "XboxOne", DisplayName: "Xbox One"},
		{Name: "GameCoreXboxSeries", DisplayName: "Xbox Series"},
		{Name: "Switch", DisplayName: "Nintendo Switch"},
		{Name: "tvOS", DisplayName: "tvOS"},
		{Name: "VisionOS", DisplayName: "visionOS"},
	})
}

// DefaultModules returns the built-in optional module catalog.
func DefaultModules() []OptionalModule {
	return []OptionalModule{
		{
			Token:       "TestAssemblies",
			DisplayName: "Test Assemblies",
			Tooltip:     "Predefined assemblies and assemblies referencing this one gain access to the unit test framework.",
		},
	}
}

// ModuleIndex resolves a module token within a module catalog.
func ModuleIndex(modules []OptionalModule, token string) (int, error) {
	for i, m := range modules {
		if m.Token == token {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown optional module %q", token)
}
