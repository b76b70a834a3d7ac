package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest lists the textbook sources of a run in output order.
type Manifest struct {
	Sources []ManifestSource `yaml:"sources"`
}

// ManifestSource is one textbook file. Level may be left empty to derive it
// from the file name.
type ManifestSource struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// LoadManifest reads a YAML manifest. Relative source paths are resolved
// against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	base := filepath.Dir(path)
	for i, s := range m.Sources {
		if s.Path == "" {
			return nil, fmt.Errorf("manifest source %d: missing path", i)
		}
		if !filepath.IsAbs(s.Path) {
			m.Sources[i].Path = filepath.Join(base, s.Path)
		}
	}
	return &m, nil
}
