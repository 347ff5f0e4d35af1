package storage

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// MemoryStore is an in-process Store used by tests. Values still pass
// through JSON so load/save round-trips behave like the file store.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string][]byte)}
}

func (s *MemoryStore) Save(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Error("storage_save_failed", "key", key, "error", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = data
}

func (s *MemoryStore) Load(key string, out any) bool {
	s.mu.RLock()
	data, ok := s.m[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		slog.Error("storage_load_failed", "key", key, "error", err)
		return false
	}
	return true
}

func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}

// Keys reports how many keys the store currently holds.
func (s *MemoryStore) Keys() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
