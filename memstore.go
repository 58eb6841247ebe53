package tether

import "sync"

// MemoryStore is an in-memory Store. Writes always succeed and Flush is a
// no-op. Useful for testing and for applications that persist elsewhere.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]Value
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]Value)}
}

// Contains reports whether the store holds an entry for key.
func (s *MemoryStore) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[key]
	return ok
}

// Get returns the value stored under key, or the invalid Value when absent.
func (s *MemoryStore) Get(key string) Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Set writes the value under key.
func (s *MemoryStore) Set(key string, v Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = v
}

// Flush is a no-op.
func (s *MemoryStore) Flush() error {
	return nil
}

// Err always returns nil; in-memory writes cannot fail.
func (s *MemoryStore) Err() error {
	return nil
}

// Len returns the number of stored entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
