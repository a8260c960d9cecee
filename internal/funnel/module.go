// Package funnel provides the lead-capture funnel bounded context module.
// This file defines the module that encapsulates all funnel setup and route registration.
package funnel

import (
	"advanx_funnel_backend/internal/diagnostic"
	"advanx_funnel_backend/internal/events"
	"advanx_funnel_backend/internal/funnel/handler"
	"advanx_funnel_backend/internal/funnel/repository"
	"advanx_funnel_backend/internal/funnel/service"
	"advanx_funnel_backend/internal/funnel/store"
	apphttp "advanx_funnel_backend/internal/http"
	"advanx_funnel_backend/internal/tracking"
	"advanx_funnel_backend/platform/logger"
	"advanx_funnel_backend/platform/metrics"
	"advanx_funnel_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the funnel bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the funnel module with all its dependencies.
func NewModule(
	pool *pgxpool.Pool,
	sessions store.Store,
	dispatcher *tracking.Dispatcher,
	generator diagnostic.Generator,
	eventBus events.Bus,
	val *validator.Validator,
	log *logger.Logger,
	met *metrics.Metrics,
	groupLink string,
) *Module {
	repo := repository.New(pool)
	svc := service.New(sessions, repo, dispatcher, generator, eventBus, log, met, groupLink)

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "funnel"
}

// Service returns the funnel service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts funnel routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/funnel")
	m.handler.RegisterRoutes(group)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
