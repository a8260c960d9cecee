// Package metrics provides Prometheus instrumentation for the application.
// This is part of the platform layer and contains no business logic.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application counters. A single instance is created by
// the composition root and injected where needed.
type Metrics struct {
	registry *prometheus.Registry

	FunnelStepViews  *prometheus.CounterVec
	TrackingEvents   *prometheus.CounterVec
	TrackingSkipped  prometheus.Counter
	LeadsCaptured    prometheus.Counter
	Diagnostics      *prometheus.CounterVec
	AdminLogins      *prometheus.CounterVec
}

// New creates a Metrics instance with its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		FunnelStepViews: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "funnel_step_views_total",
			Help: "Funnel steps viewed, by step number.",
		}, []string{"step"}),
		TrackingEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tracking_events_total",
			Help: "Tracking events dispatched, by platform and event.",
		}, []string{"platform", "event"}),
		TrackingSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "tracking_events_skipped_total",
			Help: "Tracking dispatches suppressed by session dedup.",
		}),
		LeadsCaptured: factory.NewCounter(prometheus.CounterOpts{
			Name: "leads_captured_total",
			Help: "Leads persisted on funnel submission.",
		}),
		Diagnostics: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "diagnostics_generated_total",
			Help: "Diagnostics generated, by source (ai or rules).",
		}, []string{"source"}),
		AdminLogins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_logins_total",
			Help: "Admin login attempts, by result.",
		}, []string{"result"}),
	}
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
