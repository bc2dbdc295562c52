// Package assetdb resolves opaque asset identifiers (GUIDs) to assembly
// definition paths and back. The index is built by scanning a project tree
// for .asmdef files and reading the guid out of each sibling .meta file.
package assetdb

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"
)

// DB is an in-memory GUID index over one project tree.
type DB struct {
	byGUID map[string]string // guid -> asmdef path
	byPath map[string]string // asmdef path -> guid
}

// meta is the subset of a .meta sidecar file we care about.
type meta struct {
	GUID string `yaml:"guid"`
}

// Scan walks root and indexes every .asmdef that has a readable .meta
// sidecar. Assemblies without a sidecar are skipped, not errors: a freshly
// created definition has no guid yet.
func Scan(root string) (*DB, error) {
	db := &DB{
		byGUID: make(map[string]string),
		byPath: make(map[string]string),
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".asmdef") {
			return nil
		}
		guid, err := readMetaGUID(path + ".meta")
		if err != nil || guid == "" {
			return nil
		}
		db.byGUID[guid] = path
		db.byPath[path] = guid
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	return db, nil
}

func readMetaGUID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var m meta
	if err := yaml.Unmarshal(data, &m); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	return m.GUID, nil
}

// PathForGUID resolves a guid to the asmdef path it names.
func (db *DB) PathForGUID(guid string) (string, bool) {
	p, ok := db.byGUID[guid]
	return p, ok
}

// GUIDForPath resolves an asmdef path to its guid.
func (db *DB) GUIDForPath(path string) (string, bool) {
	g, ok := db.byPath[path]
	return g, ok
}

// Add records one guid/path pair, replacing any previous mapping.
func (db *DB) Add(guid, path string) {
	db.byGUID[guid] = path
	db.byPath[path] = guid
}

// Len returns the number of indexed assemblies.
func (db *DB) Len() int { return len(db.byGUID) }

// NewGUID returns a fresh identifier in the 32-hex-digit form used by
// asset sidecar files.
func NewGUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// WriteMeta writes a minimal .meta sidecar for path carrying guid.
func WriteMeta(path, guid string) error {
	data, err := yaml.Marshal(meta{GUID: guid})
	if err != nil {
		return err
	}
	if err := os.WriteFile(path+".meta", data, 0644); err != nil {
		return fmt.Errorf("writing meta for %s: %w", path, err)
	}
	return nil
}
