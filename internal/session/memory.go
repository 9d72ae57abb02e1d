package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a thread-safe in-memory session repository. It backs tests
// and single-process deployments that can afford to drop sessions on
// restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

// Get loads a session copy by ID.
func (m *MemoryStore) Get(_ context.Context, id string) (Session, error) {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return Session{}, ErrNotFound
	}
	if sess.User != nil {
		copied := *sess.User
		sess.User = &copied
	}
	return sess, nil
}

// Put stores a session copy keyed by its ID.
func (m *MemoryStore) Put(_ context.Context, sess Session) error {
	sess.UpdatedAt = time.Now().UTC()
	if sess.User != nil {
		copied := *sess.User
		sess.User = &copied
	}
	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	return nil
}

// Delete removes a session by ID.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

var _ Repository = (*MemoryStore)(nil)
