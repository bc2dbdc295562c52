// Package config reads the tool's own preferences file,
// ~/.asmdef-edit/config.yaml. Everything in it is optional; flags on the
// command line win over the file.
package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Config represents ~/.asmdef-edit/config.yaml.
type Config struct {
	// ProjectRoot is the tree scanned for asset identifiers. Empty means
	// the current working directory.
	ProjectRoot string `yaml:"project_root,omitempty"`

	// PrecompiledDirs are searched for precompiled reference targets.
	PrecompiledDirs []string `yaml:"precompiled_dirs,omitempty"`

	// NoColor disables styled output.
	NoColor bool `yaml:"no_color,omitempty"`
}

// Parse parses config.yaml bytes into a Config.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// LoadFile reads the config at path. A missing file yields the zero
// config, not an error.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}
