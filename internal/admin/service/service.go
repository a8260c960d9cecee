// Package service implements the admin use cases: authentication, lead
// views, CSV export, dashboard metrics and pixel configuration.
package service

import (
	"context"
	"time"

	"advanx_funnel_backend/internal/admin/repository"
	"advanx_funnel_backend/internal/events"
	"advanx_funnel_backend/internal/tracking"
	"advanx_funnel_backend/platform/config"
	"advanx_funnel_backend/platform/logger"
	"advanx_funnel_backend/platform/metrics"
)

// Repository is the slice of the admin repository this service needs.
type Repository interface {
	ListLeads(ctx context.Context, params repository.ListParams) ([]repository.Lead, error)
	CountLeads(ctx context.Context) (int, error)
	CountLeadsSince(ctx context.Context, t time.Time) (int, error)
	CountLeadsByRevenue(ctx context.Context) (map[string]int, error)
	GetPixelConfigs(ctx context.Context) ([]tracking.PixelConfig, error)
	ReplacePixelConfigs(ctx context.Context, configs []tracking.PixelConfig) error
}

// SessionCounter exposes how many funnel sessions were ever started.
type SessionCounter interface {
	CreatedCount(ctx context.Context) (int64, error)
}

// Service orchestrates the admin dashboard operations.
type Service struct {
	repo       Repository
	dispatcher *tracking.Dispatcher
	sessions   SessionCounter
	bus        events.Bus
	cfg        config.AdminConfig
	log        *logger.Logger
	met        *metrics.Metrics
}

// New creates the admin service.
func New(
	repo Repository,
	dispatcher *tracking.Dispatcher,
	sessions SessionCounter,
	bus events.Bus,
	cfg config.AdminConfig,
	log *logger.Logger,
	met *metrics.Metrics,
) *Service {
	return &Service{
		repo:       repo,
		dispatcher: dispatcher,
		sessions:   sessions,
		bus:        bus,
		cfg:        cfg,
		log:        log,
		met:        met,
	}
}
