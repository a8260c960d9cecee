// Package admin provides the dashboard bounded context module: admin
// authentication, lead views and pixel configuration.
package admin

import (
	"advanx_funnel_backend/internal/admin/handler"
	"advanx_funnel_backend/internal/admin/repository"
	"advanx_funnel_backend/internal/admin/service"
	"advanx_funnel_backend/internal/events"
	apphttp "advanx_funnel_backend/internal/http"
	"advanx_funnel_backend/internal/tracking"
	"advanx_funnel_backend/platform/config"
	"advanx_funnel_backend/platform/logger"
	"advanx_funnel_backend/platform/metrics"
	"advanx_funnel_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the admin bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the admin module with all its dependencies.
func NewModule(
	pool *pgxpool.Pool,
	dispatcher *tracking.Dispatcher,
	sessions service.SessionCounter,
	eventBus events.Bus,
	cfg config.AdminConfig,
	val *validator.Validator,
	log *logger.Logger,
	met *metrics.Metrics,
) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, dispatcher, sessions, eventBus, cfg, log, met)

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "admin"
}

// Service returns the admin service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts admin routes on the provided router context.
// Auth endpoints stay outside the JWT middleware but behind the stricter
// rate limiter; everything else requires a valid access token.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	authGroup := ctx.V1.Group("/admin/auth", ctx.AuthRateLimiter.RateLimit())
	m.handler.RegisterAuthRoutes(authGroup)

	m.handler.RegisterProtectedRoutes(ctx.Admin)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
