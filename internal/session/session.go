// internal/session/session.go
//
// In-memory store for live solver sessions.
// A session pairs one strategy instance with one logical game, matching
// the solver's ownership rule: the candidate state inside the strategy is
// never shared between games.
//
// Characteristics:
//   - Sessions keyed by ID in a map, guarded by an RWMutex.
//   - State is lost on restart; finished solves are persisted elsewhere.
//   - ErrNotFound for missing IDs on Get.

package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/solverkit/wordle/internal/solver"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Session is one in-flight solve. The store guards the map, not the
// session: callers must serialize turns within a single session.
type Session struct {
	ID        string
	Strategy  solver.Strategy
	Turn      int    // turns consumed so far, including the opener
	LastGuess string // the most recent word handed to the caller
	StartedAt time.Time
}

// Store defines the persistence interface for live sessions.
// Implementations may be backed by memory (this package), Redis, etc.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore constructs an in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
