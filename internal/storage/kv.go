package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Preference keys.
const (
	keyWalls = "settings.walls"
	keyMode  = "settings.mode"
)

// Get returns the value stored under key and whether it exists.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	return nil
}

// GetInt returns the integer stored under key, or 0 when absent.
func (s *Store) GetInt(key string) (int, error) {
	value, ok, err := s.Get(key)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("storage: value of %q is not an integer: %w", key, err)
	}
	return n, nil
}

// RaiseInt stores n under key only if it exceeds the stored value.
func (s *Store) RaiseInt(key string, n int) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
		 WHERE CAST(kv.value AS INTEGER) < CAST(excluded.value AS INTEGER)`,
		key, strconv.Itoa(n),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot raise %q: %w", key, err)
	}
	return nil
}

// BestScore exposes one kv key as the engine's best-score store.
type BestScore struct {
	store *Store
	key   string
}

// NewBestScore returns a best-score store backed by key.
func NewBestScore(store *Store, key string) *BestScore {
	if key == "" {
		key = config.DefaultHighScoreKey
	}
	return &BestScore{store: store, key: key}
}

// LoadHighScore returns the stored best score, 0 if none.
func (b *BestScore) LoadHighScore() (int, error) {
	return b.store.GetInt(b.key)
}

// SaveHighScore stores score if it beats the stored value.
func (b *BestScore) SaveHighScore(score int) error {
	return b.store.RaiseInt(b.key, score)
}

// LoadSettings returns the saved options, falling back to defaults for
// anything never saved.
func (s *Store) LoadSettings(defaults config.Settings) (config.Settings, error) {
	out := defaults

	walls, ok, err := s.Get(keyWalls)
	if err != nil {
		return defaults, err
	}
	if ok {
		if b, perr := strconv.ParseBool(walls); perr == nil {
			out.Walls = b
		}
	}

	mode, ok, err := s.Get(keyMode)
	if err != nil {
		return defaults, err
	}
	if ok && (mode == "classic" || mode == "armed") {
		out.Mode = mode
	}

	return out, nil
}

// SaveSettings persists the options.
func (s *Store) SaveSettings(settings config.Settings) error {
	if err := s.Set(keyWalls, strconv.FormatBool(settings.Walls)); err != nil {
		return err
	}
	return s.Set(keyMode, settings.Mode)
}
