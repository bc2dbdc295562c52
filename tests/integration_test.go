//go:build integration

package tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruminaider/asmdef-edit/internal/assetdb"
	"github.com/ruminaider/asmdef-edit/internal/commands"
	"github.com/ruminaider/asmdef-edit/internal/platform"
	"github.com/ruminaider/asmdef-edit/internal/record"
	"github.com/ruminaider/asmdef-edit/internal/tristate"
)

// writeAssembly writes an .asmdef file and, when guid is non-empty, its
// .meta sidecar.
func writeAssembly(t *testing.T, root, rel, content, guid string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	if guid != "" {
		require.NoError(t, assetdb.WriteMeta(path, guid))
	}
	return path
}

func projectDeps(t *testing.T, root string) record.Deps {
	t.Helper()
	db, err := assetdb.Scan(root)
	require.NoError(t, err)
	return record.Deps{
		Resolver:  db,
		Platforms: platform.Default(),
		Modules:   platform.DefaultModules(),
	}
}

func TestFullWorkflow(t *testing.T) {
	root := t.TempDir()

	// ---------------------------------------------------------------
	// Step 1: a small project. Core is referenced by GUID from Game,
	// by name from Tests. The two leaf assemblies disagree on unsafe
	// code and platform mode.
	// ---------------------------------------------------------------
	coreGUID := assetdb.NewGUID()
	writeAssembly(t, root, "Assets/Core/Game.Core.asmdef",
		`{"name": "Game.Core"}`, coreGUID)
	gamePath := writeAssembly(t, root, "Assets/Game/Game.Main.asmdef",
		`{"name": "Game.Main", "references": ["GUID:`+coreGUID+`"], "allowUnsafeCode": true}`, "")
	testsPath := writeAssembly(t, root, "Assets/Tests/Game.Tests.asmdef",
		`{"name": "Game.Tests", "references": ["Game.Core"], "includePlatforms": ["Editor"], "optionalUnityReferences": ["TestAssemblies"]}`, "")

	deps := projectDeps(t, root)

	// ---------------------------------------------------------------
	// Step 2: load both leaves into one session. The GUID reference
	// resolves through the scanned index to the same assembly name,
	// so the reference row agrees; the scalars do not.
	// ---------------------------------------------------------------
	sess, err := commands.Load([]string{gamePath, testsPath}, deps)
	require.NoError(t, err)

	require.Len(t, sess.Combined.References, 1)
	assert.Equal(t, "Game.Core", sess.Combined.References[0].Value.Name)
	assert.Equal(t, tristate.True, sess.Combined.References[0].Display)
	assert.Equal(t, tristate.Mixed, sess.Combined.AllowUnsafeCode)
	assert.Equal(t, tristate.Mixed, sess.Combined.CompatibleWithAny)
	assert.Equal(t, tristate.Mixed, sess.Combined.UseGUIDs)

	// ---------------------------------------------------------------
	// Step 3: edit. Force unsafe code off everywhere, restrict both
	// assemblies to the editor, and add a shared define constraint.
	// ---------------------------------------------------------------
	require.NoError(t, sess.SetFlag(commands.FlagAllowUnsafe, false))
	require.NoError(t, sess.SetAnyPlatform(false))
	require.NoError(t, sess.SetPlatform("Editor", true))
	require.NoError(t, sess.AddDefineConstraint("!UNITY_WEBGL"))

	for _, res := range sess.Apply() {
		require.NoError(t, res.Err)
	}

	// ---------------------------------------------------------------
	// Step 4: reload from disk and verify the edits landed, each in
	// the record's own reference style.
	// ---------------------------------------------------------------
	fresh, err := commands.Load([]string{gamePath, testsPath}, deps)
	require.NoError(t, err)

	assert.Equal(t, tristate.False, fresh.Combined.AllowUnsafeCode)
	assert.Equal(t, tristate.False, fresh.Combined.CompatibleWithAny)
	require.Len(t, fresh.Combined.DefineConstraints, 1)
	assert.Equal(t, "!UNITY_WEBGL", fresh.Combined.DefineConstraints[0].Value.String())
	assert.False(t, fresh.Dirty())

	gameData, err := os.ReadFile(gamePath)
	require.NoError(t, err)
	assert.Contains(t, string(gameData), "GUID:"+coreGUID)
	assert.Contains(t, string(gameData), `"includePlatforms"`)

	testsData, err := os.ReadFile(testsPath)
	require.NoError(t, err)
	assert.Contains(t, string(testsData), `"Game.Core"`)
	assert.NotContains(t, string(testsData), "GUID:")
	// The untouched optional module survived the round trip.
	assert.Contains(t, string(testsData), "TestAssemblies")
}

func TestMixedFieldsStayUntouched(t *testing.T) {
	root := t.TempDir()

	aPath := writeAssembly(t, root, "A.asmdef",
		`{"name": "A", "autoReferenced": true, "overrideReferences": true}`, "")
	bPath := writeAssembly(t, root, "B.asmdef",
		`{"name": "B", "autoReferenced": false, "overrideReferences": true}`, "")

	deps := projectDeps(t, root)
	sess, err := commands.Load([]string{aPath, bPath}, deps)
	require.NoError(t, err)
	require.Equal(t, tristate.Mixed, sess.Combined.AutoReferenced)

	// Edit only the field the records agree on; the mixed one must
	// come back from disk unchanged per record.
	require.NoError(t, sess.SetFlag(commands.FlagOverrideReferences, false))
	for _, res := range sess.Apply() {
		require.NoError(t, res.Err)
	}

	fresh, err := commands.Load([]string{aPath, bPath}, deps)
	require.NoError(t, err)
	assert.Equal(t, tristate.Mixed, fresh.Combined.AutoReferenced)
	assert.Equal(t, tristate.False, fresh.Combined.OverrideReferences)
	assert.True(t, fresh.Records[0].AutoReferenced)
	assert.False(t, fresh.Records[1].AutoReferenced)
}

func TestRenameSingleAssembly(t *testing.T) {
	root := t.TempDir()
	path := writeAssembly(t, root, "Old.asmdef", `{"name": "Old.Name"}`, "")

	deps := projectDeps(t, root)
	sess, err := commands.Load([]string{path}, deps)
	require.NoError(t, err)

	require.NoError(t, sess.SetName("New.Name"))
	for _, res := range sess.Apply() {
		require.NoError(t, res.Err)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "New.Name"`)
}
