package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Spawn: SpawnConfig{
			InitialTiles:    2,
			FourProbability: 0.5,
		},
		Rules: RulesConfig{
			SpawnOnNoop: true,
		},
		UI: UIConfig{
			Theme:          "emoji",
			SwipeThreshold: 2,
		},
		Storage: StorageConfig{
			DBPath:       "~/.t2048/saves.db",
			AutosaveSlot: "autosave",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
