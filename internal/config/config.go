// Package config loads the pipeline's external configuration record:
// identity resolution, output paths, and excluded accounts, per spec.md §6.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

// Identity declares how the pipeline recognizes "me" among a replay's
// players.
type Identity struct {
	PlatformIDs  []string `yaml:"platform_ids"`
	DisplayNames []string `yaml:"display_names"`
}

// Paths declares where reports are written.
type Paths struct {
	ReportsDir string `yaml:"reports_dir"`
}

// Preferences holds optional user preferences.
type Preferences struct {
	Timezone string `yaml:"timezone"`
}

// Config is the input configuration record, per spec.md §6.
type Config struct {
	Identity      Identity    `yaml:"identity"`
	Paths         Paths       `yaml:"paths"`
	Preferences   Preferences `yaml:"preferences"`
	ExcludedNames []string    `yaml:"excluded_names"`
}

// Load reads a YAML config file from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return &c, nil
}

// ResolveMe finds which player in the header is "me": first by platform id
// match, then by display-name match, never guessing beyond that.
func (c *Config) ResolveMe(header *rlreplay.Header) (string, bool) {
	for _, p := range header.Players {
		for _, platformID := range c.Identity.PlatformIDs {
			for _, id := range p.PlatformIDs {
				if id == platformID {
					return p.CanonicalID, true
				}
			}
		}
	}
	for _, p := range header.Players {
		for _, name := range c.Identity.DisplayNames {
			if p.DisplayName == name {
				return p.CanonicalID, true
			}
		}
	}
	return "", false
}

// IsExcluded reports whether the resolved "me" display name matches one of
// the configured excluded_names.
func (c *Config) IsExcluded(header *rlreplay.Header, meID string) bool {
	if meID == "" {
		return false
	}
	p, ok := header.PlayerByCanonicalID(meID)
	if !ok {
		return false
	}
	for _, name := range c.ExcludedNames {
		if name == p.DisplayName {
			return true
		}
	}
	return false
}
