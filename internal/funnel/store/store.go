// Package store persists funnel sessions. Sessions are ephemeral: the
// Redis-backed store keeps them under a TTL, the in-memory store exists
// for development without Redis and for tests.
package store

import (
	"context"

	"advanx_funnel_backend/internal/funnel/domain"

	"github.com/google/uuid"
)

// Store reads and writes funnel sessions. The created counter outlives
// individual sessions and feeds the admin completion-rate metric.
type Store interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementCreated(ctx context.Context) error
	CreatedCount(ctx context.Context) (int64, error)
}

const sessionNotFoundMessage = "session not found"
