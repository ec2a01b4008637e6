package snapshot

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// store persists JSON snapshots in a single key-value table.
type store struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a new snapshot KV backed by the given database.
func New(db *sql.DB) KV {
	return &store{db: db}
}

var _ KV = (*store)(nil)

func (s *store) Get(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM snapshots WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(value), v); err != nil {
		// Corrupt content is treated the same as a missing key.
		log.Warn("Ignoring corrupt snapshot", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (s *store) Put(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %s: %w", key, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;
	`, key, string(value), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}
	return nil
}

func (s *store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM snapshots WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", key, err)
	}
	return nil
}
