package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruminaider/asmdef-edit/internal/paths"
)

func TestToolDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.ToolDir(), home))
	assert.True(t, strings.HasSuffix(paths.ToolDir(), ".asmdef-edit"))
}

func TestConfigFile(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.ConfigFile(), "config.yaml"))
}
