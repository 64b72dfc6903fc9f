package config

import (
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/spachava753/tutorials/internal/models"
)

// LoadVersionManifest loads and parses a version manifest (e.g. "3.0.0.toml")
// from the given filesystem.
func LoadVersionManifest(fsys fs.FS, name string) (*models.Manual, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	var m models.Manual
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parsing %s: unknown key %q", name, undecoded[0].String())
	}

	if m.Version == "" {
		return nil, fmt.Errorf("%s: version is required", name)
	}

	seen := make(map[string]bool, len(m.Steps))
	for i, s := range m.Steps {
		if s.Number == "" {
			return nil, fmt.Errorf("%s: steps[%d]: number is required", name, i)
		}
		if seen[s.Number] {
			return nil, fmt.Errorf("%s: duplicate step %q", name, s.Number)
		}
		seen[s.Number] = true
	}

	return &m, nil
}
