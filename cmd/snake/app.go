package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// app holds what every command shares: logger, store and loaded config.
type app struct {
	logger   *log.Logger
	logFile  *os.File
	store    *storage.Store // nil when the database could not be opened
	cfg      config.SnakeConfig
	settings config.Settings
}

// newApp loads the configuration and opens the log file and database.
// A missing database is not fatal; the game runs without persistence.
func newApp(withStore bool) (*app, error) {
	a := &app{logger: log.New(io.Discard)}

	if path, err := expandHome(flagLogFile); err == nil && path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				a.logFile = f
				a.logger = log.NewWithOptions(f, log.Options{
					ReportTimestamp: true,
					Prefix:          "snake",
				})
			}
		}
	}
	if flagDebug {
		a.logger.SetLevel(log.DebugLevel)
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		a.close()
		return nil, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		a.close()
		return nil, err
	}
	config.ApplySnakePreset(&cfg, preset)
	a.cfg = cfg
	a.settings = cfg.Settings
	a.logger.Debug("config loaded", "source", source, "difficulty", preset)

	if withStore {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			a.logger.Warn("storage unavailable", "error", err)
		} else {
			a.store = store
			if saved, err := store.LoadSettings(a.settings); err != nil {
				a.logger.Warn("could not load settings", "error", err)
			} else {
				a.settings = saved
			}
		}
	}

	return a, nil
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// effectiveConfig is the loaded config with the player's options applied.
func (a *app) effectiveConfig() config.SnakeConfig {
	cfg := a.cfg
	cfg.Settings = a.settings
	return cfg
}

// session builds the play screen inputs for the current options.
func (a *app) session(rt core.RuntimeConfig) tui.Session {
	cfg := a.effectiveConfig()
	return tui.Session{
		Settings:     engine.SettingsFromConfig(cfg),
		Store:        a.store,
		HighScoreKey: cfg.Scoring.HighScoreKey,
		Runtime:      rt,
		Logger:       a.logger,
	}
}

// bestScore reads the persisted best score, or 0 without a store.
func (a *app) bestScore() int {
	if a.store == nil {
		return 0
	}
	best, err := storage.NewBestScore(a.store, a.cfg.Scoring.HighScoreKey).LoadHighScore()
	if err != nil {
		a.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return best
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg = cfg.WithSize(w, h)
	}
	cfg.Seed = flagSeed
	return cfg
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
