package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruminaider/asmdef-edit/internal/asmdef"
	"github.com/ruminaider/asmdef-edit/internal/platform"
	"github.com/ruminaider/asmdef-edit/internal/tristate"
)

type fakeResolver struct {
	guidToPath map[string]string
	pathToGUID map[string]string
}

func (f *fakeResolver) PathForGUID(guid string) (string, bool) {
	p, ok := f.guidToPath[guid]
	return p, ok
}

func (f *fakeResolver) GUIDForPath(path string) (string, bool) {
	g, ok := f.pathToGUID[path]
	return g, ok
}

func testCatalog() *platform.Catalog {
	return platform.NewCatalog([]platform.Platform{
		{Name: "Editor", DisplayName: "Editor"},
		{Name: "iOS", DisplayName: "iOS"},
		{Name: "Android", DisplayName: "Android"},
	})
}

func testDeps() Deps {
	return Deps{
		Resolver:  &fakeResolver{},
		Platforms: testCatalog(),
		Modules:   platform.DefaultModules(),
	}
}

func writeDoc(t *testing.T, dir, name string, doc asmdef.Document) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, asmdef.Write(path, doc))
	return path
}

func TestLoad_Basic(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "Game.Core.asmdef", asmdef.Document{
		Name:              "Game.Core",
		References:        []string{"Game.Shared"},
		IncludePlatforms:  []string{"Editor"},
		AllowUnsafeCode:   true,
		AutoReferenced:    true,
		DefineConstraints: []string{"UNITY_EDITOR", "!RELEASE"},
	})

	rec, diags, err := Load(path, testDeps())
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.False(t, rec.Dirty)

	assert.Equal(t, "Game.Core", rec.Name)
	assert.True(t, rec.AllowUnsafeCode)
	assert.True(t, rec.AutoReferenced)
	assert.False(t, rec.OverrideReferences)

	require.Len(t, rec.References, 1)
	assert.Equal(t, "Game.Shared", rec.References[0].Name)
	assert.True(t, rec.References[0].Resolved)

	require.Len(t, rec.DefineConstraints, 2)
	assert.Equal(t, DefineConstraint{Symbol: "UNITY_EDITOR"}, rec.DefineConstraints[0])
	assert.Equal(t, DefineConstraint{Symbol: "RELEASE", Negated: true}, rec.DefineConstraints[1])

	assert.False(t, rec.Platforms.CompatibleWithAny)
	assert.Equal(t, []bool{true, false, false}, rec.Platforms.Flags)
}

func TestLoad_Missing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.asmdef"), testDeps())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_UseGUIDsInference(t *testing.T) {
	dir := t.TempDir()
	deps := testDeps()

	// Zero references: identifier form preferred by default.
	p := writeDoc(t, dir, "A.asmdef", asmdef.Document{Name: "A"})
	rec, _, err := Load(p, deps)
	require.NoError(t, err)
	assert.Equal(t, tristate.True, rec.UseGUIDs)

	// Only plain-name references: stick with names.
	p = writeDoc(t, dir, "B.asmdef", asmdef.Document{Name: "B", References: []string{"A"}})
	rec, _, err = Load(p, deps)
	require.NoError(t, err)
	assert.Equal(t, tristate.False, rec.UseGUIDs)

	// Any identifier-form reference flips the preference.
	p = writeDoc(t, dir, "C.asmdef", asmdef.Document{Name: "C", References: []string{"A", "GUID:beef"}})
	rec, _, err = Load(p, deps)
	require.NoError(t, err)
	assert.Equal(t, tristate.True, rec.UseGUIDs)
}

func TestLoad_ResolvedGUIDReference(t *testing.T) {
	dir := t.TempDir()
	target := writeDoc(t, dir, "Game.Shared.asmdef", asmdef.Document{Name: "Game.Shared"})
	deps := testDeps()
	deps.Resolver = &fakeResolver{guidToPath: map[string]string{"cafe01": target}}

	p := writeDoc(t, dir, "Game.Core.asmdef", asmdef.Document{
		Name:       "Game.Core",
		References: []string{"GUID:cafe01"},
	})
	rec, _, err := Load(p, deps)
	require.NoError(t, err)

	require.Len(t, rec.References, 1)
	ref := rec.References[0]
	assert.True(t, ref.Resolved)
	// The target's declared name overrides the display name.
	assert.Equal(t, "Game.Shared", ref.Name)
	assert.Equal(t, "cafe01", ref.GUID)
	assert.Equal(t, target, ref.Path)
}

func TestLoad_DanglingGUIDReferenceRetained(t *testing.T) {
	dir := t.TempDir()
	p := writeDoc(t, dir, "Game.Core.asmdef", asmdef.Document{
		Name:       "Game.Core",
		References: []string{"GUID:dead"},
	})

	rec, diags, err := Load(p, testDeps())
	require.NoError(t, err)
	assert.Empty(t, diags)

	// Present but unresolved, never silently dropped.
	require.Len(t, rec.References, 1)
	assert.False(t, rec.References[0].Resolved)
	assert.Equal(t, "GUID:dead", rec.References[0].Raw)
}

func TestLoad_UnparsableReferenceTargetRetained(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "Broken.asmdef")
	require.NoError(t, os.WriteFile(broken, []byte("{nope"), 0644))

	deps := testDeps()
	deps.Resolver = &fakeResolver{guidToPath: map[string]string{"bad": broken}}

	p := writeDoc(t, dir, "Game.Core.asmdef", asmdef.Document{
		Name:       "Game.Core",
		References: []string{"GUID:bad"},
	})
	rec, _, err := Load(p, deps)
	require.NoError(t, err)

	require.Len(t, rec.References, 1)
	assert.False(t, rec.References[0].Resolved)
	assert.Equal(t, broken, rec.References[0].Path)
}

func TestLoad_MalformedEntriesSkippedAndDirty(t *testing.T) {
	dir := t.TempDir()
	p := writeDoc(t, dir, "Game.Core.asmdef", asmdef.Document{
		Name:              "Game.Core",
		DefineConstraints: []string{"GOOD_ONE", "!2bad", "also bad"},
		VersionDefines: []asmdef.VersionDefine{
			{Name: "com.unity.burst", Expression: "1.0.0", Define: "HAS_BURST"},
			{Name: "com.unity.math", Expression: "1.0.0", Define: "not a symbol"},
		},
	})

	rec, diags, err := Load(p, testDeps())
	require.NoError(t, err)

	// Both bad constraints and the bad version define were skipped, each
	// with a diagnostic, and the record needs re-saving.
	assert.Len(t, diags, 3)
	assert.True(t, rec.Dirty)
	require.Len(t, rec.DefineConstraints, 1)
	assert.Equal(t, "GOOD_ONE", rec.DefineConstraints[0].Symbol)
	require.Len(t, rec.VersionDefines, 1)
	assert.Equal(t, "HAS_BURST", rec.VersionDefines[0].Define)
}

func TestLoad_UnknownPlatformFailsRecord(t *testing.T) {
	dir := t.TempDir()
	p := writeDoc(t, dir, "Game.Core.asmdef", asmdef.Document{
		Name:             "Game.Core",
		IncludePlatforms: []string{"Editor", "Dreamcast"},
	})

	_, _, err := Load(p, testDeps())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dreamcast")
}

func TestLoad_ExcludeListFilter(t *testing.T) {
	dir := t.TempDir()
	p := writeDoc(t, dir, "Game.Core.asmdef", asmdef.Document{
		Name:             "Game.Core",
		ExcludePlatforms: []string{"iOS"},
	})

	rec, _, err := Load(p, testDeps())
	require.NoError(t, err)
	assert.True(t, rec.Platforms.CompatibleWithAny)
	assert.Equal(t, []bool{false, true, false}, rec.Platforms.Flags)
}

func TestLoad_NoFilterMeansCompatibleEverywhere(t *testing.T) {
	dir := t.TempDir()
	p := writeDoc(t, dir, "Game.Core.asmdef", asmdef.Document{Name: "Game.Core"})

	rec, _, err := Load(p, testDeps())
	require.NoError(t, err)
	assert.True(t, rec.Platforms.CompatibleWithAny)
	assert.Equal(t, []bool{false, false, false}, rec.Platforms.Flags)
}

func TestLoad_OptionalModules(t *testing.T) {
	dir := t.TempDir()
	p := writeDoc(t, dir, "Game.Tests.asmdef", asmdef.Document{
		Name:                    "Game.Tests",
		OptionalUnityReferences: []string{"TestAssemblies", "Bogus"},
	})

	rec, diags, err := Load(p, testDeps())
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, rec.OptionalModules)
	// Unknown module tokens are recovered per-entry, unlike platforms.
	assert.Len(t, diags, 1)
	assert.True(t, rec.Dirty)
}
