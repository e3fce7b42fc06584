package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store used in tests and single-node
// deployments running without Redis.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func memoryKey(sessionID, key string) string {
	return sessionID + ":" + key
}

// Get reads a JSON value from the session.
func (s *MemoryStore) Get(_ context.Context, sessionID, key string, dest interface{}) (bool, error) {
	s.mu.RLock()
	payload, ok := s.values[memoryKey(sessionID, key)]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("decode session value failed: %w", err)
	}
	return true, nil
}

// Set writes a JSON value.
func (s *MemoryStore) Set(_ context.Context, sessionID, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode session value failed: %w", err)
	}
	s.mu.Lock()
	s.values[memoryKey(sessionID, key)] = payload
	s.mu.Unlock()
	return nil
}

// Del removes a session value.
func (s *MemoryStore) Del(_ context.Context, sessionID, key string) error {
	s.mu.Lock()
	delete(s.values, memoryKey(sessionID, key))
	s.mu.Unlock()
	return nil
}
