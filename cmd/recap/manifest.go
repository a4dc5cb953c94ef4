package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

const manifestName = "recap.toml"

// Manifest describes a batch of patterns to generate code for.
type Manifest struct {
	// Package is the Go package name for all generated files.
	Package string `toml:"package"`

	// OutDir is the directory generated files are written to, resolved
	// relative to the manifest's own directory.
	OutDir string `toml:"out_dir"`

	Patterns []ManifestPattern `toml:"patterns"`
}

// ManifestPattern is one generation target.
type ManifestPattern struct {
	Name       string   `toml:"name"`
	Pattern    string   `toml:"pattern"`
	Output     string   `toml:"output"`
	GroupNames []string `toml:"group_names"`
}

// LoadManifest parses the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if m.Package == "" {
		return fmt.Errorf("package is required")
	}
	if len(m.Patterns) == 0 {
		return fmt.Errorf("at least one pattern is required")
	}
	for i, p := range m.Patterns {
		if p.Name == "" {
			return fmt.Errorf("patterns[%d]: name is required", i)
		}
		if p.Pattern == "" {
			return fmt.Errorf("patterns[%d] (%s): pattern is required", i, p.Name)
		}
	}
	return nil
}

// OutputFile returns where the generated file for p goes, defaulting to
// <lowercase name>_gen.go under OutDir.
func (m *Manifest) OutputFile(base string, p ManifestPattern) string {
	out := p.Output
	if out == "" {
		out = lowercase(p.Name) + "_gen.go"
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(base, m.OutDir, out)
}

func lowercase(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// findManifest locates the manifest to use: the explicit path when given,
// otherwise ./recap.toml, otherwise the XDG config location.
func findManifest(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if _, err := os.Stat(manifestName); err == nil {
		return manifestName, nil
	}
	xdgPath := filepath.Join(xdg.ConfigHome, "recap", manifestName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath, nil
	}
	return "", fmt.Errorf("no manifest found: tried ./%s and %s", manifestName, xdgPath)
}
