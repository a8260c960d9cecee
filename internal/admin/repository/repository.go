// Package repository provides the admin read models over leads and the
// pixel configuration store.
package repository

import (
	"context"
	"fmt"
	"time"

	"advanx_funnel_backend/internal/tracking"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Lead is a captured lead as listed in the dashboard.
type Lead struct {
	ID                  uuid.UUID
	FullName            string
	Email               string
	WhatsApp            string
	Instagram           string
	City                string
	State               string
	StateCode           string
	BusinessDescription string
	Revenue             string
	CreatedAt           time.Time
}

// ListParams filters the lead listing. Search matches name, email and
// city case-insensitively; Revenue is an exact bracket match.
type ListParams struct {
	Search  string
	Revenue string
}

// Repo implements the admin queries with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates an admin repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const leadColumns = `id, full_name, email, whatsapp, instagram, city, state, state_code, business_description, revenue, created_at`

// ListLeads retrieves leads newest first, filtered by params.
func (r *Repo) ListLeads(ctx context.Context, params ListParams) ([]Lead, error) {
	var searchParam interface{}
	if params.Search != "" {
		searchParam = "%" + params.Search + "%"
	}
	var revenueParam interface{}
	if params.Revenue != "" {
		revenueParam = params.Revenue
	}

	query := `
		SELECT ` + leadColumns + `
		FROM leads
		WHERE ($1::text IS NULL OR full_name ILIKE $1 OR email ILIKE $1 OR city ILIKE $1)
			AND ($2::text IS NULL OR revenue = $2)
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, searchParam, revenueParam)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	return scanLeads(rows)
}

// CountLeads returns the total number of captured leads.
func (r *Repo) CountLeads(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return total, nil
}

// CountLeadsSince returns the number of leads captured at or after t.
func (r *Repo) CountLeadsSince(ctx context.Context, t time.Time) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads WHERE created_at >= $1`, t).Scan(&total); err != nil {
		return 0, fmt.Errorf("count leads since: %w", err)
	}
	return total, nil
}

// CountLeadsByRevenue returns per-bracket lead counts.
func (r *Repo) CountLeadsByRevenue(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT revenue, COUNT(*) FROM leads GROUP BY revenue`)
	if err != nil {
		return nil, fmt.Errorf("count leads by revenue: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var revenue string
		var count int
		if err := rows.Scan(&revenue, &count); err != nil {
			return nil, fmt.Errorf("scan revenue count: %w", err)
		}
		counts[revenue] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revenue counts: %w", err)
	}
	return counts, nil
}

// GetPixelConfigs retrieves the persisted pixel configuration set.
func (r *Repo) GetPixelConfigs(ctx context.Context) ([]tracking.PixelConfig, error) {
	query := `SELECT id, platform, pixel_id, active FROM pixel_configs ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get pixel configs: %w", err)
	}
	defer rows.Close()

	var configs []tracking.PixelConfig
	for rows.Next() {
		var cfg tracking.PixelConfig
		if err := rows.Scan(&cfg.ID, &cfg.Platform, &cfg.PixelID, &cfg.Active); err != nil {
			return nil, fmt.Errorf("scan pixel config: %w", err)
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pixel configs: %w", err)
	}
	return configs, nil
}

// ReplacePixelConfigs persists the set wholesale: the previous rows are
// dropped and the payload becomes the new truth, in one transaction.
func (r *Repo) ReplacePixelConfigs(ctx context.Context, configs []tracking.PixelConfig) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("replace pixel configs: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM pixel_configs`); err != nil {
		return fmt.Errorf("replace pixel configs: clear: %w", err)
	}

	for _, cfg := range configs {
		_, err := tx.Exec(ctx,
			`INSERT INTO pixel_configs (id, platform, pixel_id, active) VALUES ($1, $2, $3, $4)`,
			cfg.ID, cfg.Platform, cfg.PixelID, cfg.Active,
		)
		if err != nil {
			return fmt.Errorf("replace pixel configs: insert: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("replace pixel configs: commit: %w", err)
	}
	return nil
}

func scanLeads(rows pgx.Rows) ([]Lead, error) {
	var results []Lead
	for rows.Next() {
		var l Lead
		err := rows.Scan(
			&l.ID, &l.FullName, &l.Email, &l.WhatsApp, &l.Instagram,
			&l.City, &l.State, &l.StateCode, &l.BusinessDescription, &l.Revenue, &l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		results = append(results, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}
	return results, nil
}
