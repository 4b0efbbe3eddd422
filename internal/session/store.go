package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dechi99991/cooking-sim/internal/game"
)

var ErrNotFound = errors.New("session not found")

// Store owns session lifecycle. Game sessions are not thread safe, so every
// access goes through With, which guarantees at most one in-flight mutation
// per session id.
type Store interface {
	Create(ctx context.Context, s *game.Session) (string, error)
	With(ctx context.Context, id string, fn func(*game.Session) error) error
	Delete(ctx context.Context, id string) error
	IDs(ctx context.Context) ([]string, error)
}

type entry struct {
	mu         sync.Mutex
	sess       *game.Session
	lastActive time.Time
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*entry
	clock   Clock
}

func NewMemoryStore(clock Clock) *MemoryStore {
	if clock == nil {
		clock = RealClock{}
	}
	return &MemoryStore{
		entries: make(map[string]*entry),
		clock:   clock,
	}
}

func (m *MemoryStore) Create(_ context.Context, s *game.Session) (string, error) {
	id := uuid.NewString()
	m.mu.Lock()
	m.entries[id] = &entry{sess: s, lastActive: m.clock.Now()}
	m.mu.Unlock()
	return id, nil
}

// With runs fn while holding the session's own lock. The store lock is not
// held during fn, so slow sessions never block each other.
func (m *MemoryStore) With(ctx context.Context, id string, fn func(*game.Session) error) error {
	m.mu.RLock()
	e, ok := m.entries[id]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	e.lastActive = m.clock.Now()
	return fn(e.sess)
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *MemoryStore) IDs(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	return ids, nil
}

// EvictIdle drops sessions idle longer than maxIdle and returns how many
// went. Abandoned runs are not worth keeping; there is no persistence.
func (m *MemoryStore) EvictIdle(maxIdle time.Duration) int {
	cutoff := m.clock.Now().Add(-maxIdle)
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, e := range m.entries {
		if e.lastActive.Before(cutoff) {
			delete(m.entries, id)
			evicted++
		}
	}
	return evicted
}
