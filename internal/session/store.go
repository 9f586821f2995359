// Package session provides the scratch space that holds staged CSV imports
// between the stage and commit requests. Entries are keyed by an opaque
// session ID and live only as long as the user's browsing session; nothing
// here ever touches the permanent store.
package session

import (
	"sync"
	"time"

	"payday/internal/csvimport"
)

// DefaultTTL is how long a staged import survives without being committed.
const DefaultTTL = 30 * time.Minute

// Store is the session-scoped scratch space for staged imports.
type Store interface {
	Put(sessionID string, staged *csvimport.Staged)
	Get(sessionID string) (*csvimport.Staged, bool)
	Clear(sessionID string)
}

type entry struct {
	staged    *csvimport.Staged
	expiresAt time.Time
}

type memoryStore struct {
	mu  sync.RWMutex
	ttl time.Duration
	now func() time.Time

	entries map[string]entry
}

// NewMemoryStore returns an in-memory Store with the given TTL.
// A non-positive ttl falls back to DefaultTTL.
func NewMemoryStore(ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &memoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (m *memoryStore) Put(sessionID string, staged *csvimport.Staged) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictExpiredLocked()
	m.entries[sessionID] = entry{staged: staged, expiresAt: m.now().Add(m.ttl)}
}

func (m *memoryStore) Get(sessionID string) (*csvimport.Staged, bool) {
	m.mu.RLock()
	e, ok := m.entries[sessionID]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if m.now().After(e.expiresAt) {
		m.Clear(sessionID)
		return nil, false
	}
	return e.staged, true
}

func (m *memoryStore) Clear(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, sessionID)
}

// evictExpiredLocked drops stale entries. Called on writes so abandoned
// sessions do not accumulate; there is no background sweeper.
func (m *memoryStore) evictExpiredLocked() {
	now := m.now()
	for id, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, id)
		}
	}
}
