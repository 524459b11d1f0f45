package database

import (
	"database/sql"
	"fmt"
	"sync"
)

// KV is the storage contract the repositories are written against: string
// keys mapped to string values (whole JSON blobs), no range queries, no
// cross-key transactions. Mirrors the web client's local storage surface.
type KV interface {
	// Get returns the value for key and whether the key exists.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Keys returns every key with the given prefix, in no particular order.
	Keys(prefix string) ([]string, error)
}

// SQLKV implements KV on top of a single kv table.
type SQLKV struct {
	db *DB
}

// NewSQLKV creates a KV store backed by the given database
func NewSQLKV(db *DB) *SQLKV {
	return &SQLKV{db: db}
}

// Get returns the value stored under key
func (s *SQLKV) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT v FROM kv WHERE k = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the value for key
func (s *SQLKV) Set(key, value string) error {
	query := s.db.Dialect.RewriteQuery(s.db.Dialect.UpsertKV())
	if _, err := s.db.DB.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Delete removes the row for key
func (s *SQLKV) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE k = ?", key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// Keys lists all keys starting with prefix
func (s *SQLKV) Keys(prefix string) ([]string, error) {
	rows, err := s.db.Query("SELECT k FROM kv WHERE k LIKE ?", prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// MemoryKV is an in-memory KV implementation used by tests and by the
// server when no database is configured.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string

	// FailWrites makes Set return an error, for exercising quota-style
	// write failures in tests.
	FailWrites bool
}

// NewMemoryKV creates an empty in-memory store
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return fmt.Errorf("failed to write key %q: storage quota exceeded", key)
	}
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryKV) Keys(prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			keys = append(keys, k)
		}
	}
	return keys, nil
}
