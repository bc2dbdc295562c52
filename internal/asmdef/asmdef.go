// Package asmdef reads and writes the on-disk assembly definition document.
// The document is JSON; references are stored either as a plain assembly
// name or in the opaque "GUID:<hex>" form.
package asmdef

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// GUIDPrefix marks a reference serialized in identifier form.
const GUIDPrefix = "GUID:"

// VersionDefine maps a resource's version-range expression to a define symbol.
type VersionDefine struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
	Define     string `json:"define"`
}

// Document is one persisted assembly definition.
// IncludePlatforms and ExcludePlatforms are mutually exclusive; both absent
// means the assembly is compatible with every platform.
type Document struct {
	Name                    string          `json:"name"`
	References              []string        `json:"references,omitempty"`
	OptionalUnityReferences []string        `json:"optionalUnityReferences,omitempty"`
	IncludePlatforms        []string        `json:"includePlatforms,omitempty"`
	ExcludePlatforms        []string        `json:"excludePlatforms,omitempty"`
	AllowUnsafeCode         bool            `json:"allowUnsafeCode"`
	OverrideReferences      bool            `json:"overrideReferences"`
	PrecompiledReferences   []string        `json:"precompiledReferences,omitempty"`
	AutoReferenced          bool            `json:"autoReferenced"`
	DefineConstraints       []string        `json:"defineConstraints,omitempty"`
	VersionDefines          []VersionDefine `json:"versionDefines,omitempty"`
}

// Parse parses document bytes.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parsing assembly definition: %w", err)
	}
	if len(doc.IncludePlatforms) > 0 && len(doc.ExcludePlatforms) > 0 {
		return Document{}, fmt.Errorf("parsing assembly definition: includePlatforms and excludePlatforms are mutually exclusive")
	}
	return doc, nil
}

// Marshal serializes a Document with stable two-space indentation.
func Marshal(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling assembly definition: %w", err)
	}
	return append(data, '\n'), nil
}

// Read loads and parses the document at path.
func Read(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading assembly definition: %w", err)
	}
	return Parse(data)
}

// Write serializes doc and writes it to path.
func Write(path string, doc Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing assembly definition: %w", err)
	}
	return nil
}

// IsGUIDReference reports whether a serialized reference uses identifier form.
func IsGUIDReference(ref string) bool {
	return strings.HasPrefix(ref, GUIDPrefix)
}

// GUIDFromReference strips the identifier prefix from a reference.
// Returns "" when ref is not in identifier form.
func GUIDFromReference(ref string) string {
	if !IsGUIDReference(ref) {
		return ""
	}
	return strings.TrimPrefix(ref, GUIDPrefix)
}

// GUIDReference formats a GUID in serialized identifier form.
func GUIDReference(guid string) string {
	return GUIDPrefix + guid
}
