package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruminaider/asmdef-edit/internal/asmdef"
)

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	clean := writeDoc(t, dir, "Clean.asmdef", asmdef.Document{Name: "Clean"})
	dangling := writeDoc(t, dir, "Dangling.asmdef", asmdef.Document{
		Name:       "Dangling",
		References: []string{"GUID:dead"},
	})
	badExpr := writeDoc(t, dir, "BadExpr.asmdef", asmdef.Document{
		Name: "BadExpr",
		VersionDefines: []asmdef.VersionDefine{
			{Name: "com.x", Expression: "[oops", Define: "HAS_X"},
		},
	})
	broken := filepath.Join(dir, "Broken.asmdef")
	require.NoError(t, os.WriteFile(broken, []byte("{nope"), 0644))

	results := Check([]string{clean, dangling, badExpr, broken}, testDeps())
	require.Len(t, results, 4)

	assert.True(t, results[0].Clean())

	assert.False(t, results[1].Clean())
	require.Len(t, results[1].Problems, 1)
	assert.Contains(t, results[1].Problems[0], "unresolved reference")

	assert.False(t, results[2].Clean())
	require.Len(t, results[2].Problems, 1)
	assert.Contains(t, results[2].Problems[0], "HAS_X")

	assert.Error(t, results[3].LoadErr)
}
