package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load.
const (
	EnvConfigPath = "T2048_CONFIG"
	EnvDBPath     = "T2048_DB"
)

// LocalPath is the project-local config file.
const LocalPath = "configs/t2048.yaml"

// LoadDotEnv reads KEY=VALUE pairs from the given files (default ".env")
// into the environment. Missing files are ignored; variables already set
// are kept.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", p, err)
		}
	}
	return nil
}

// Load loads the game configuration.
// Search order: customPath -> $T2048_CONFIG -> ~/.t2048/config.yaml ->
// ./configs/t2048.yaml -> embedded default. Values missing from the file
// keep their defaults. $T2048_DB overrides storage.db_path.
func Load(customPath string) (Config, error) {
	if customPath == "" {
		customPath = os.Getenv(EnvConfigPath)
	}

	// An explicit path must exist and parse
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return finish(cfg)
	}

	// Search path entries are skipped when missing or broken
	for _, p := range []string{userConfigPath("config.yaml"), LocalPath} {
		if p == "" {
			continue
		}
		if cfg, err := loadFile(p); err == nil {
			return finish(cfg)
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		cfg = Default() // Fallback to hardcoded if embed fails
	}
	return finish(cfg)
}

// loadFile reads a YAML file over the defaults.
func loadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func finish(cfg Config) (Config, error) {
	if db := os.Getenv(EnvDBPath); db != "" {
		cfg.Storage.DBPath = db
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", filename)
}
