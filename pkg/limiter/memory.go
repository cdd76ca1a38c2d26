package limiter

import (
	"context"
	"sync"
	"time"
)

// MemoryAttemptStore is a process-local AttemptStore for single-instance
// deployments and tests.
type MemoryAttemptStore struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
}

func NewMemoryAttemptStore() *MemoryAttemptStore {
	return &MemoryAttemptStore{
		attempts: make(map[string][]time.Time),
	}
}

func (s *MemoryAttemptStore) recent(identifier string) []time.Time {
	cutoff := time.Now().Add(-LockoutWindow)
	var valid []time.Time
	for _, at := range s.attempts[identifier] {
		if at.After(cutoff) {
			valid = append(valid, at)
		}
	}
	s.attempts[identifier] = valid
	return valid
}

func (s *MemoryAttemptStore) IsBlocked(_ context.Context, identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recent(identifier)) >= MaxLoginAttempts, nil
}

func (s *MemoryAttemptStore) AddAttempt(_ context.Context, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[identifier] = append(s.recent(identifier), time.Now())
	return nil
}

func (s *MemoryAttemptStore) Clear(_ context.Context, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, identifier)
	return nil
}
