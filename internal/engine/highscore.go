package engine

// HighScoreStore persists the single best score.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// MemoryHighScore keeps the best score in memory. It is used when no
// database is available.
type MemoryHighScore struct {
	Score int
	Saves int
}

// LoadHighScore returns the stored value.
func (m *MemoryHighScore) LoadHighScore() (int, error) {
	return m.Score, nil
}

// SaveHighScore stores score.
func (m *MemoryHighScore) SaveHighScore(score int) error {
	m.Score = score
	m.Saves++
	return nil
}
