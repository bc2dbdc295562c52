package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ToolDir returns ~/.asmdef-edit.
func ToolDir() string {
	return filepath.Join(home(), ".asmdef-edit")
}

// ConfigFile returns ~/.asmdef-edit/config.yaml.
func ConfigFile() string {
	return filepath.Join(ToolDir(), "config.yaml")
}
