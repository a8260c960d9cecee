// Package domain holds the funnel session model and its step invariants.
package domain

import (
	"time"

	"advanx_funnel_backend/internal/diagnostic"
	"advanx_funnel_backend/internal/locale"
	"advanx_funnel_backend/internal/tracking"
	"advanx_funnel_backend/platform/apperr"
	"advanx_funnel_backend/platform/phone"

	"github.com/google/uuid"
)

// Step bounds for the wizard. Step 1 is the landing view, step 6 shows
// the diagnostic.
const (
	FirstStep = 1
	LastStep  = 6
)

// Revenue brackets accepted on the qualification step.
var RevenueBrackets = []string{"0-5k", "5-10k", "10-20k", "20-50k", "50-100k", "100k+"}

// ValidRevenue reports whether the bracket is one of the fixed options.
func ValidRevenue(revenue string) bool {
	for _, b := range RevenueBrackets {
		if b == revenue {
			return true
		}
	}
	return false
}

// LeadProfile is the data collected across the funnel steps.
type LeadProfile struct {
	FullName            string `json:"fullName"`
	Email               string `json:"email"`
	WhatsApp            string `json:"whatsapp"`
	Instagram           string `json:"instagram"`
	City                string `json:"city"`
	State               string `json:"state"`
	StateCode           string `json:"stateCode"`
	BusinessDescription string `json:"businessDescription"`
	Revenue             string `json:"revenue"`
}

// Session is one visitor's pass through the funnel. It is persisted as a
// JSON blob in the session store; the fired set travels with it so event
// dedup survives reloads.
type Session struct {
	ID          uuid.UUID          `json:"id"`
	CurrentStep int                `json:"currentStep"`
	Data        LeadProfile        `json:"data"`
	Submitting  bool               `json:"submitting"`
	Diagnostic  *diagnostic.Result `json:"diagnostic,omitempty"`
	Fired       tracking.FiredSet  `json:"fired"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// NewSession creates a session positioned at the first step.
func NewSession() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:          uuid.New(),
		CurrentStep: FirstStep,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Advance moves one step forward. At the last step it is a no-op; the
// returned bool tells whether the step changed.
func (s *Session) Advance() bool {
	if s.CurrentStep >= LastStep {
		return false
	}
	s.CurrentStep++
	s.touch()
	return true
}

// Retreat moves one step back, stopping at the first step.
func (s *Session) Retreat() bool {
	if s.CurrentStep <= FirstStep {
		return false
	}
	s.CurrentStep--
	s.touch()
	return true
}

// GoTo jumps to an arbitrary step inside the valid range.
func (s *Session) GoTo(step int) error {
	if step < FirstStep || step > LastStep {
		return apperr.BadRequest("step out of range")
	}
	s.CurrentStep = step
	s.touch()
	return nil
}

// Progress returns the completion percentage for the current step.
func (s *Session) Progress() float64 {
	return float64(s.CurrentStep-1) / float64(LastStep-1) * 100
}

// UpdateField sets a single profile field by its wire name. No cross-field
// validation happens here; steps validate on submit. A whatsapp update
// re-applies the display mask and fills city/state from the area code.
func (s *Session) UpdateField(field, value string) error {
	switch field {
	case "fullName":
		s.Data.FullName = value
	case "email":
		s.Data.Email = value
	case "instagram":
		s.Data.Instagram = value
	case "businessDescription":
		s.Data.BusinessDescription = value
	case "revenue":
		if value != "" && !ValidRevenue(value) {
			return apperr.BadRequest("unknown revenue bracket")
		}
		s.Data.Revenue = value
	case "whatsapp":
		s.Data.WhatsApp = phone.FormatBR(value)
		if loc, ok := locale.Lookup(phone.ExtractAreaCode(value)); ok {
			s.Data.City = loc.City
			s.Data.State = loc.State
			s.Data.StateCode = loc.StateCode
		}
	default:
		return apperr.BadRequest("unknown field")
	}
	s.touch()
	return nil
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now().UTC()
}
