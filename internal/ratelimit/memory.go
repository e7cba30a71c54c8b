package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the single-instance fallback used when no redis URL is
// configured. State does not survive restarts; the ledger fallback in the
// rate limiter covers that gap.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	at      time.Time
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// NewMemoryStoreWithClock is for tests that control time.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	store := NewMemoryStore()
	store.now = now
	return store
}

func (s *MemoryStore) Last(_ context.Context, key string) (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.live(key)
	if !ok {
		return time.Time{}, false, nil
	}
	return entry.at, true, nil
}

func (s *MemoryStore) Reserve(_ context.Context, key string, at time.Time, window time.Duration) (bool, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.live(key); ok {
		return false, entry.at, nil
	}
	s.entries[key] = memoryEntry{at: at, expires: at.Add(window)}
	return true, time.Time{}, nil
}

func (s *MemoryStore) Commit(_ context.Context, key string, at time.Time, window time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{at: at, expires: at.Add(window)}
	return nil
}

func (s *MemoryStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// live returns the entry for key, lazily dropping it once expired.
// Callers must hold s.mu.
func (s *MemoryStore) live(key string) (memoryEntry, bool) {
	entry, ok := s.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if !s.now().Before(entry.expires) {
		delete(s.entries, key)
		return memoryEntry{}, false
	}
	return entry, true
}
