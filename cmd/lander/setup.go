package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

// loadConfig loads the config named by --config and applies --difficulty.
func loadConfig() (config.LanderConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.LanderConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.LanderConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openLogger opens ~/.lander/lander.log. The game owns the terminal,
// so nothing is logged to stderr while it runs.
func openLogger() (*log.Logger, func()) {
	discard := log.New(io.Discard)
	home, err := os.UserHomeDir()
	if err != nil {
		return discard, func() {}
	}
	dir := filepath.Join(home, ".lander")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "lander.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return discard, func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "lander",
	})
	return logger, func() { f.Close() }
}

// openStoreOrWarn opens the score database. A missing database is not fatal:
// the game keeps its scores in memory for the session.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// localOptions wires the game collaborators for the local terminal.
func localOptions(cfg config.LanderConfig, store *storage.Store, logger *log.Logger) tui.GameOptions {
	opts := tui.GameOptions{
		Lander:  cfg,
		Runtime: runtimeConfig(),
		Logger:  logger,
	}
	if store != nil {
		opts.Board = storage.NewBoard(store, cfg.Scoring.MaxTopScores, logger)
		opts.Profile = storage.NewProfile(store, storage.LocalProfile, logger)
	} else {
		opts.Board = lander.NewMemoryBoard(cfg.Scoring.MaxTopScores)
		opts.Profile = &lander.StaticProfile{Name: cfg.Input.DefaultPlayer}
	}
	return opts
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
