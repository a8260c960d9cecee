// Package repository persists captured leads.
package repository

import (
	"context"
	"fmt"
	"time"

	"advanx_funnel_backend/internal/funnel/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LeadWriter persists a frozen lead profile. The funnel service depends
// on this interface so tests can stub persistence.
type LeadWriter interface {
	Insert(ctx context.Context, profile domain.LeadProfile) (Lead, error)
}

// Lead is a persisted funnel submission.
type Lead struct {
	ID        uuid.UUID
	Profile   domain.LeadProfile
	CreatedAt time.Time
}

// Repo implements LeadWriter with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a lead repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements LeadWriter.
var _ LeadWriter = (*Repo)(nil)

// Insert stores a submitted lead profile.
func (r *Repo) Insert(ctx context.Context, profile domain.LeadProfile) (Lead, error) {
	query := `
		INSERT INTO leads (full_name, email, whatsapp, instagram, city, state, state_code, business_description, revenue)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	lead := Lead{Profile: profile}
	err := r.pool.QueryRow(ctx, query,
		profile.FullName, profile.Email, profile.WhatsApp, profile.Instagram,
		profile.City, profile.State, profile.StateCode, profile.BusinessDescription, profile.Revenue,
	).Scan(&lead.ID, &lead.CreatedAt)
	if err != nil {
		return Lead{}, fmt.Errorf("insert lead: %w", err)
	}

	return lead, nil
}
