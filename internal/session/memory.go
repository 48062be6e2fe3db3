package session

import (
	"context"
	"sync"
	"time"

	"github.com/apna-adda/adda/internal/common/errorx"
)

type memoryEntry struct {
	session   *Session
	expiresAt time.Time
}

// MemoryStore implements the Store interface using in-memory storage with
// lazy expiry.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*memoryEntry
}

// NewMemoryStore creates a new memory store instance.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]*memoryEntry),
	}
}

// Get retrieves a session by id. Expired entries are dropped on read.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, errorx.ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, id)
		return nil, errorx.ErrSessionNotFound
	}
	// Concurrent requests on one cookie each get their own copy; the stored
	// session is only replaced wholesale under the mutex in Save.
	return entry.session.Clone(), nil
}

// Save persists the session and restarts its inactivity window.
func (s *MemoryStore) Save(ctx context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sess.ID] = &memoryEntry{
		session:   sess.Clone(),
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Delete removes the session.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}
