// Package storage provides the local key-value store the application
// persists into. The store is injected into the state managers rather than
// accessed as an ambient singleton, so tests can substitute an in-memory
// implementation.
//
// All operations are fail-soft: errors are logged and the caller proceeds
// with defaults. A caller cannot distinguish a missing key from an
// unreadable store.
package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Store is a persistent string-keyed store of JSON-serializable values.
type Store interface {
	// Save persists value under key. Serialization and write failures are
	// logged, never returned.
	Save(key string, value any)
	// Load decodes the value stored under key into out (a pointer). It
	// reports whether out was populated; missing keys, decode failures and
	// read failures all report false.
	Load(key string, out any) bool
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string)
}

// LoadOr returns the value stored under key, or def when the key is absent
// or unreadable.
func LoadOr[T any](s Store, key string, def T) T {
	var v T
	if s.Load(key, &v) {
		return v
	}
	return def
}

// FileStore keeps one JSON document per key under a base directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the base directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Save(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Error("storage_save_failed", "key", key, "error", err)
		return
	}
	if err := os.WriteFile(s.path(key), data, 0o600); err != nil {
		slog.Error("storage_save_failed", "key", key, "error", err)
	}
}

func (s *FileStore) Load(key string, out any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error("storage_load_failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		slog.Error("storage_load_failed", "key", key, "error", err)
		return false
	}
	return true
}

func (s *FileStore) Remove(key string) {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("storage_remove_failed", "key", key, "error", err)
	}
}
