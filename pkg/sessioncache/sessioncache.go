package sessioncache

import (
	"sync"
	"time"
)

// Snapshot is the cached view of a signed-in session: enough to show an
// identity optimistically before a full profile round-trip completes.
type Snapshot struct {
	UserID   string
	Email    string
	UserType string
	FullName string
}

// Store is a TTL key-value slot for session snapshots, keyed by token. The
// token stays the single source of truth; entries are invalidated on every
// auth event, so staleness is bounded by the next event or the TTL.
type Store interface {
	Set(token string, snap Snapshot, ttl time.Duration)
	Get(token string) (Snapshot, bool)
	Invalidate(token string)
}

type entry struct {
	snap      Snapshot
	expiresAt time.Time
}

type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]entry)}
}

func (s *MemoryStore) Set(token string, snap Snapshot, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{snap: snap, expiresAt: time.Now().Add(ttl)}
}

func (s *MemoryStore) Get(token string) (Snapshot, bool) {
	s.mu.RLock()
	e, ok := s.data[token]
	s.mu.RUnlock()
	if !ok {
		return Snapshot{}, false
	}
	if time.Now().After(e.expiresAt) {
		s.Invalidate(token)
		return Snapshot{}, false
	}
	return e.snap, true
}

func (s *MemoryStore) Invalidate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, token)
}
