package memory

import (
	"context"
	"sync"
	"time"

	"ordering/internal/core/ports"
)

type idempotencyEntry struct {
	value     string
	hasValue  bool
	expiresAt time.Time
}

// IdempotencyStore is the in-process counterpart of the Redis store.
type IdempotencyStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   ports.Clock
	entries map[string]idempotencyEntry
}

func NewIdempotencyStore(ttl time.Duration, clock ports.Clock) *IdempotencyStore {
	return &IdempotencyStore{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]idempotencyEntry),
	}
}

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

func (s *IdempotencyStore) TryLock(_ context.Context, scope, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := scope + ":" + key
	if _, ok := s.live(k); ok {
		return false, nil
	}
	s.entries[k] = idempotencyEntry{expiresAt: s.clock.Now().Add(s.ttl)}
	return true, nil
}

func (s *IdempotencyStore) Release(_ context.Context, scope, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, scope+":"+key)
	return nil
}

func (s *IdempotencyStore) Remember(_ context.Context, scope, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[scope+":"+key] = idempotencyEntry{
		value:     value,
		hasValue:  true,
		expiresAt: s.clock.Now().Add(s.ttl),
	}
	return nil
}

func (s *IdempotencyStore) Recall(_ context.Context, scope, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(scope + ":" + key)
	if !ok || !e.hasValue {
		return "", false, nil
	}
	return e.value, true, nil
}

// live returns the entry for k unless it has expired, dropping expired entries.
func (s *IdempotencyStore) live(k string) (idempotencyEntry, bool) {
	e, ok := s.entries[k]
	if !ok {
		return idempotencyEntry{}, false
	}
	if !s.clock.Now().Before(e.expiresAt) {
		delete(s.entries, k)
		return idempotencyEntry{}, false
	}
	return e, true
}
