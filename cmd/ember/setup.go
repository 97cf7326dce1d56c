package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ember-story/internal/assets"
	"github.com/vovakirdan/ember-story/internal/config"
	"github.com/vovakirdan/ember-story/internal/storage"
)

var logFile *os.File

// setupLogging sends the default logger to the log file. The terminal
// belongs to the game while it runs.
func setupLogging() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	path := flagLogFile
	if path == "" {
		dir := config.UserDir()
		if dir == "" {
			return errors.New("cannot find home directory; pass --log-file")
		}
		path = filepath.Join(dir, "ember.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "ember",
		Level:           level,
	})
	log.SetDefault(logger)
	return nil
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
	}
}

// loadGameConfig reads the config and applies the command-line overrides.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return cfg, fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadBundle loads every resource, naming what is missing on failure.
func loadBundle(ctx context.Context, cfg config.GameConfig) (*assets.Bundle, error) {
	b, err := assets.Load(ctx, flagResources, cfg)
	if err == nil {
		return b, nil
	}

	if missing := assets.Missing(flagResources, cfg); len(missing) > 0 {
		return nil, fmt.Errorf("%d resource files missing under %s (first: %s); run 'ember assets check': %w",
			len(missing), flagResources, missing[0], err)
	}
	return nil, err
}

// openStore opens the history database. History is optional: failures
// are logged and nil is returned.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open run history", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
