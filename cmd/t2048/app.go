package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// newLogger creates a logger at the level given by --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

// fileLogger logs to ~/.t2048/t2048.log so output does not draw over the
// alternate screen. The returned close func is never nil.
func fileLogger() (*log.Logger, func()) {
	dir := filepath.Join(os.Getenv("HOME"), ".t2048")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(filepath.Join(dir, "t2048.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	//nolint:errcheck // Best-effort close
	return newLogger(f, "t2048"), func() { f.Close() }
}

// runtimeConfig builds the runtime config from the terminal size and seed.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	cfg.Seed = flagSeed
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// gameOptions maps the config file onto engine options.
func gameOptions(cfg config.Config) t2048.Options {
	return t2048.Options{
		InitialTiles:    cfg.Spawn.InitialTiles,
		FourProbability: cfg.Spawn.FourProbability,
		SpawnOnNoop:     cfg.Rules.SpawnOnNoop,
	}
}

// resolveTheme returns the flag theme if set, otherwise the configured one.
func resolveTheme(flag string, cfg config.Config) (t2048.Theme, error) {
	name := cfg.UI.Theme
	if flag != "" {
		name = flag
	}
	theme, ok := t2048.ParseTheme(name)
	if !ok {
		return "", fmt.Errorf("unknown theme %q (want one of %v)", name, config.Themes)
	}
	return theme, nil
}

// newGame deals a new game, or restores the named slot when resume is set.
func newGame(store *storage.Store, resume string, seed int64, opts t2048.Options) (*t2048.Game, error) {
	rng := rand.New(rand.NewSource(seed))
	if resume == "" {
		return t2048.New(rng, opts), nil
	}

	if store == nil {
		return nil, errors.New("saves database is not available")
	}
	slot, err := store.LoadSlot(resume)
	if err != nil {
		return nil, err
	}
	return t2048.Restore(slot.SessionID, slot.Grid, slot.Score, slot.Moves, rng, opts), nil
}

// openStore opens the saves database. Play continues without saving when
// it cannot be opened.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open saves database", "path", appConfig.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

// playSession runs one game in the TUI. slot is where the game is saved on
// quit.
func playSession(store *storage.Store, logger *log.Logger, rc core.RuntimeConfig, resume, slot string, theme t2048.Theme) error {
	game, err := newGame(store, resume, rc.Seed, gameOptions(appConfig))
	if err != nil {
		return err
	}
	logger.Info("session start",
		"session", game.ID(),
		"resume", resume,
		"seed", rc.Seed,
		"score", game.Score(),
	)

	opts := tui.Options{
		Theme:          theme,
		SwipeThreshold: appConfig.UI.SwipeThreshold,
		Slot:           slot,
	}

	// A nil *storage.Store must not become a non-nil interface
	var slots tui.SlotStore
	if store != nil {
		slots = store
	}
	return tui.Run(game, slots, logger, rc, opts)
}
