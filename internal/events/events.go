// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"advanx_funnel_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Funnel Domain Events
// =============================================================================

// LeadCaptured is published when a funnel submission persists a lead.
type LeadCaptured struct {
	BaseEvent
	LeadID    uuid.UUID `json:"leadId"`
	SessionID uuid.UUID `json:"sessionId"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	WhatsApp  string    `json:"whatsapp"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Revenue   string    `json:"revenue"`
}

func (e LeadCaptured) EventName() string { return "funnel.lead.captured" }

// =============================================================================
// Tracking Domain Events
// =============================================================================

// TrackingDispatched is published for every non-deduplicated tracking
// dispatch, regardless of configured platforms. It mirrors the original
// always-on dataLayer push.
type TrackingDispatched struct {
	BaseEvent
	Event string                 `json:"event"`
	Step  int                    `json:"step"`
	Extra map[string]interface{} `json:"extra,omitempty"`
}

func (e TrackingDispatched) EventName() string { return "tracking.event.dispatched" }

// PixelConfigsUpdated is published when the admin saves a new pixel
// configuration set.
type PixelConfigsUpdated struct {
	BaseEvent
	Count int `json:"count"`
}

func (e PixelConfigsUpdated) EventName() string { return "tracking.pixels.updated" }
