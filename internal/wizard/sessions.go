package wizard

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/introbot/chatbot-server/internal/model"
)

// ErrTooManySessions is returned when the live-session cap is reached.
var ErrTooManySessions = errors.New("too many live sessions")

// Manager tracks live conversations by session ID. Sessions are held
// in memory only; a restart drops them all. Completed sessions are
// evicted after a retention window so the final messages stay pollable
// but the slot is reclaimed; abandoned sessions are reclaimed by
// PruneIdle.
type Manager struct {
	engine    *Engine
	max       int
	retention time.Duration
	sched     Scheduler

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewManager creates a Manager serving sessions through engine, with at
// most max live sessions (0 means unlimited). A session that reaches
// the end of the flow is dropped retention after its last message lands.
func NewManager(engine *Engine, max int, retention time.Duration, sched Scheduler) *Manager {
	m := &Manager{
		engine:    engine,
		max:       max,
		retention: retention,
		sched:     sched,
		sessions:  make(map[uuid.UUID]*Session),
	}

	engine.SetOnComplete(func(s *Session) {
		m.sched.AfterFunc(m.retention, func() {
			m.evict(s.ID)
		})
	})

	return m
}

// Create starts a new conversation and returns its seeded session.
func (m *Manager) Create() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.max > 0 && len(m.sessions) >= m.max {
		return nil, ErrTooManySessions
	}

	s := m.engine.NewSession()
	m.sessions[s.ID] = s

	return s, nil
}

// Get returns the session with the given ID.
func (m *Manager) Get(id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return s, nil
}

// Submit feeds one answer to the identified session and returns its
// state after the synchronous part of the turn.
func (m *Manager) Submit(id uuid.UUID, raw string) (Snapshot, error) {
	s, err := m.Get(id)
	if err != nil {
		return Snapshot{}, err
	}

	if err := m.engine.SubmitAnswer(s, raw); err != nil {
		return Snapshot{}, err
	}

	return s.Snapshot(), nil
}

// Snapshot returns the identified session's state.
func (m *Manager) Snapshot(id uuid.UUID) (Snapshot, error) {
	s, err := m.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	return s.Snapshot(), nil
}

// PruneIdle drops sessions without activity for longer than maxIdle and
// returns how many were removed. Sessions awaiting a bot reply are left
// alone so an in-flight save keeps its transcript.
func (m *Manager) PruneIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		touched, composing := s.lastTouched()
		if composing || touched.After(cutoff) {
			continue
		}
		delete(m.sessions, id)
		removed++
	}

	return removed
}

func (m *Manager) evict(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
