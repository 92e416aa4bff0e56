// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used when no database is configured and in tests.
//
// Characteristics:
//   - Stores serialized game states keyed by session id in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// Store persists one opaque state string per session.
// Implementations may be backed by memory (this file), SQLite, etc.
type Store interface {
	// Load returns the stored state, or ok=false if none exists.
	Load(ctx context.Context, sessionID string) (state string, ok bool, err error)

	// Save persists or replaces the state for a session.
	Save(ctx context.Context, sessionID, state string) error

	// Delete removes any state for a session. Deleting a missing entry is not an error.
	Delete(ctx context.Context, sessionID string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex      // guards states map
	states map[string]string // keyed by session id
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{states: make(map[string]string)}
}

// Load looks up the state for a session.
func (m *memory) Load(ctx context.Context, sessionID string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.states[sessionID]
	return s, ok, nil
}

// Save adds or updates the state in the map.
func (m *memory) Save(ctx context.Context, sessionID, state string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[sessionID] = state
	return nil
}

// Delete drops the state for a session.
func (m *memory) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, sessionID)
	return nil
}
