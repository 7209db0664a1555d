// internal/store/memory.go
//
// Session persistence for the HTTP layer.
//
// A *game.Session is single-owner; the Store is what makes it usable from
// concurrent handlers. Every mutation goes through Update, which runs the
// callback while holding that session's lock, and Get hands out copies.
//
// The in-memory implementation below keeps sessions in a map guarded by an
// RWMutex, plus one mutex per session. State is lost on restart; see
// sqlite.go for the durable variant.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordguess/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists a session, replacing any previous state with the same ID.
	// The store takes ownership of s.
	Save(ctx context.Context, s *game.Session) error

	// Get returns a copy of the session with the given ID.
	Get(ctx context.Context, id string) (*game.Session, error)

	// Update runs fn with exclusive access to the session and persists the
	// result. Changes made by fn are kept even if it returns an error, which
	// Update passes through unchanged.
	Update(ctx context.Context, id string, fn func(*game.Session) error) error

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}

// entry pairs a session with the lock that serializes access to it.
type entry struct {
	mu sync.Mutex
	s  *game.Session
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex      // guards sessions map
	sessions map[string]*entry // keyed by Session.ID()
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*entry)}
}

// Save adds or replaces the session in the map.
func (m *memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = &entry{s: s}
	return nil
}

func (m *memory) lookup(id string) (*entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.sessions[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

// Get looks up a session by ID and returns a copy of it.
func (m *memory) Get(ctx context.Context, id string) (*game.Session, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.s.Clone(), nil
}

// Update mutates the stored session in place under its lock.
func (m *memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.s)
}

// Delete drops the session from the map.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
