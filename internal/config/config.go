// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for tui-2048.
type Config struct {
	Spawn   SpawnConfig   `yaml:"spawn"`
	Rules   RulesConfig   `yaml:"rules"`
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
}

// SpawnConfig defines how tiles are spawned.
type SpawnConfig struct {
	InitialTiles    int     `yaml:"initial_tiles"`
	FourProbability float64 `yaml:"four_probability"` // 0.0 = always 2, 1.0 = always 4
}

// RulesConfig defines turn rules.
type RulesConfig struct {
	SpawnOnNoop bool `yaml:"spawn_on_noop"`
}

// UIConfig defines presentation options.
type UIConfig struct {
	Theme          string `yaml:"theme"`           // "emoji" or "numbers"
	SwipeThreshold int    `yaml:"swipe_threshold"` // Minimum drag length in cells
}

// StorageConfig defines where saved games live.
type StorageConfig struct {
	DBPath       string `yaml:"db_path"`
	AutosaveSlot string `yaml:"autosave_slot"` // Empty disables autosave
}

// Themes lists the accepted UI theme names.
var Themes = []string{"emoji", "numbers"}

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid config")

// Validate checks that all values are in range.
func (c Config) Validate() error {
	if c.Spawn.InitialTiles < 0 || c.Spawn.InitialTiles > 16 {
		return fmt.Errorf("%w: spawn.initial_tiles must be in [0, 16], got %d", ErrInvalid, c.Spawn.InitialTiles)
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("%w: spawn.four_probability must be in [0, 1], got %g", ErrInvalid, c.Spawn.FourProbability)
	}
	if c.UI.SwipeThreshold < 0 {
		return fmt.Errorf("%w: ui.swipe_threshold must not be negative, got %d", ErrInvalid, c.UI.SwipeThreshold)
	}
	if !validTheme(c.UI.Theme) {
		return fmt.Errorf("%w: ui.theme must be one of %v, got %q", ErrInvalid, Themes, c.UI.Theme)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("%w: storage.db_path must not be empty", ErrInvalid)
	}
	return nil
}

func validTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
