// Package config loads the YAML-driven configuration for a lumol-nblist
// run: the neighbor-list policy (cutoff, skin, pacing) plus the parameters
// needed to stand up a demo Argon lattice.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration document, unmarshaled directly from
// YAML. Zero values are not valid configuration; call Validate after Load.
type Config struct {
	Backend string `yaml:"backend"` // "all-pairs" or "directed-linked-list"

	MaxCutoff             float64 `yaml:"max_cutoff"`
	Skin                  float64 `yaml:"skin"`
	Delay                 uint64  `yaml:"delay"`
	StepsPerUpdateCheck   uint64  `yaml:"steps_per_update_check"`
	UpdatesPerSanityCheck uint64  `yaml:"updates_per_sanity_check"` // 0 disables sanity checks

	LatticeSize    int     `yaml:"lattice_size"`
	LatticeSpacing float64 `yaml:"lattice_spacing"`
	CellSide       float64 `yaml:"cell_side"`
	Steps          int     `yaml:"steps"`
	Seed           int64   `yaml:"seed"`
}

// Load reads and parses the YAML document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate reports the first configuration problem it finds. It does not
// repeat checks that the neighbors package itself enforces at construction
// time (e.g. skin > 0); it only catches problems that would otherwise
// surface as a confusing error deep in a constructor.
func (c *Config) Validate() error {
	switch c.Backend {
	case "all-pairs", "directed-linked-list":
	default:
		return fmt.Errorf("config: backend must be \"all-pairs\" or \"directed-linked-list\", got %q", c.Backend)
	}
	if c.LatticeSize <= 0 {
		return fmt.Errorf("config: lattice_size must be > 0, got %d", c.LatticeSize)
	}
	if c.LatticeSpacing <= 0 {
		return fmt.Errorf("config: lattice_spacing must be > 0, got %v", c.LatticeSpacing)
	}
	if c.CellSide <= 0 {
		return fmt.Errorf("config: cell_side must be > 0, got %v", c.CellSide)
	}
	if c.Steps < 0 {
		return fmt.Errorf("config: steps must be >= 0, got %d", c.Steps)
	}
	return nil
}
