// Package transport defines the funnel API request and response shapes.
package transport

import (
	"advanx_funnel_backend/internal/diagnostic"
	"advanx_funnel_backend/internal/funnel/domain"

	"github.com/google/uuid"
)

// UpdateFieldRequest sets one profile field by its wire name.
type UpdateFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// GoToRequest jumps to a specific wizard step.
type GoToRequest struct {
	Step int `json:"step" validate:"required,min=1,max=6"`
}

// SessionResponse is the funnel session as seen by the wizard.
type SessionResponse struct {
	SessionID         uuid.UUID          `json:"sessionId"`
	CurrentStep       int                `json:"currentStep"`
	Progress          float64            `json:"progress"`
	Submitting        bool               `json:"submitting"`
	Data              domain.LeadProfile `json:"data"`
	Diagnostic        *diagnostic.Result `json:"diagnostic,omitempty"`
	WhatsAppGroupLink string             `json:"whatsappGroupLink,omitempty"`
}

// FromSession maps a domain session to its response shape. The group
// link is only exposed on the diagnostic step.
func FromSession(s *domain.Session, groupLink string) SessionResponse {
	resp := SessionResponse{
		SessionID:   s.ID,
		CurrentStep: s.CurrentStep,
		Progress:    s.Progress(),
		Submitting:  s.Submitting,
		Data:        s.Data,
		Diagnostic:  s.Diagnostic,
	}
	if s.CurrentStep == domain.LastStep {
		resp.WhatsAppGroupLink = groupLink
	}
	return resp
}
