package session

import (
	"context"
	"sync"
	"time"
)

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
}

// NewMemoryStore is a process-local Store for single-instance development
// setups without Redis.
func NewMemoryStore() Store {
	return &memoryStore{
		sessions: make(map[string]time.Time),
	}
}

func (s *memoryStore) Save(_ context.Context, tokenID string, _ string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[tokenID] = time.Now().Add(ttl)
	return nil
}

func (s *memoryStore) Exists(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.sessions[tokenID]
	if !ok {
		return false, nil
	}
	if time.Now().After(exp) {
		delete(s.sessions, tokenID)
		return false, nil
	}
	return true, nil
}

func (s *memoryStore) Revoke(_ context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenID)
	return nil
}
