package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds sandbox tuning, overridable per-field from a TOML file
type Config struct {
	Segments   int      `toml:"segments"`
	Length     float64  `toml:"length"`
	Thickness  int      `toml:"thickness"`
	Iterations int      `toml:"iterations"`
	Color      [3]uint8 `toml:"color"`
	Sound      bool     `toml:"sound"`
}

// DefaultConfig returns the baseline sandbox tuning
func DefaultConfig() Config {
	return Config{
		Segments:  8,
		Length:    4,
		Thickness: 1,
		Color:     [3]uint8{80, 250, 180},
	}
}

// LoadConfig merges a TOML file over cfg in place
func LoadConfig(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %s", path, undecoded[0])
	}
	return nil
}
