package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"advanx_funnel_backend/internal/funnel/domain"
	"advanx_funnel_backend/platform/apperr"

	"github.com/google/uuid"
)

// MemoryStore is a process-local session store for development without
// Redis. Sessions are kept serialized so callers get the same copy
// semantics as the Redis store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID][]byte
	created  atomic.Int64
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[uuid.UUID][]byte)}
}

// Compile-time check that MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)

// Save stores a serialized copy of the session.
func (s *MemoryStore) Save(_ context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = payload
	return nil
}

// Get loads a session by ID.
func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*domain.Session, error) {
	s.mu.RLock()
	payload, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, apperr.NotFound(sessionNotFoundMessage)
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes a session.
func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// IncrementCreated bumps the lifetime session counter.
func (s *MemoryStore) IncrementCreated(_ context.Context) error {
	s.created.Add(1)
	return nil
}

// CreatedCount returns the lifetime session counter.
func (s *MemoryStore) CreatedCount(_ context.Context) (int64, error) {
	return s.created.Load(), nil
}
