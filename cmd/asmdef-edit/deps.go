package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruminaider/asmdef-edit/internal/assetdb"
	"github.com/ruminaider/asmdef-edit/internal/commands"
	"github.com/ruminaider/asmdef-edit/internal/config"
	"github.com/ruminaider/asmdef-edit/internal/paths"
	"github.com/ruminaider/asmdef-edit/internal/platform"
	"github.com/ruminaider/asmdef-edit/internal/record"
)

var flagProjectRoot string

// buildDeps assembles the loader collaborators: tool config, the asset
// identifier index over the project root, and the static catalogs.
func buildDeps() (record.Deps, error) {
	cfg, err := config.LoadFile(paths.ConfigFile())
	if err != nil {
		return record.Deps{}, err
	}
	if cfg.NoColor {
		// lipgloss picks this up before the first render.
		os.Setenv("NO_COLOR", "1")
	}

	root := flagProjectRoot
	if root == "" {
		root = cfg.ProjectRoot
	}
	if root == "" {
		root, _ = os.Getwd()
	}

	db, err := assetdb.Scan(root)
	if err != nil {
		return record.Deps{}, err
	}

	return record.Deps{
		Resolver:         db,
		Platforms:        platform.Default(),
		Modules:          platform.DefaultModules(),
		PrecompiledPaths: scanPrecompiled(cfg.PrecompiledDirs),
	}, nil
}

// scanPrecompiled indexes DLL names found under the configured search
// directories. Missing directories are skipped silently.
func scanPrecompiled(dirs []string) map[string]string {
	found := make(map[string]string)
	for _, dir := range dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".dll") {
				found[d.Name()] = path
			}
			return nil
		})
	}
	return found
}

// loadSession builds the collaborator set and loads the selected records.
func loadSession(args []string) (*commands.Session, error) {
	deps, err := buildDeps()
	if err != nil {
		return nil, err
	}
	return commands.Load(args, deps)
}
