// Package service implements the funnel use cases: session lifecycle,
// step navigation, field updates and the final submission.
package service

import (
	"context"
	"strconv"
	"strings"

	"advanx_funnel_backend/internal/diagnostic"
	"advanx_funnel_backend/internal/events"
	"advanx_funnel_backend/internal/funnel/domain"
	"advanx_funnel_backend/internal/funnel/repository"
	"advanx_funnel_backend/internal/funnel/store"
	"advanx_funnel_backend/internal/tracking"
	"advanx_funnel_backend/platform/apperr"
	"advanx_funnel_backend/platform/logger"
	"advanx_funnel_backend/platform/metrics"
	"advanx_funnel_backend/platform/phone"

	"github.com/google/uuid"
)

// SubmitStep is the contact step; submission is only valid there.
const SubmitStep = 5

// Service orchestrates the funnel. Submission is the one operation that
// touches external systems; none of their failures reach the visitor.
type Service struct {
	store      store.Store
	leads      repository.LeadWriter
	dispatcher *tracking.Dispatcher
	generator  diagnostic.Generator
	bus        events.Bus
	log        *logger.Logger
	met        *metrics.Metrics
	groupLink  string
}

// New creates the funnel service.
func New(
	sessions store.Store,
	leads repository.LeadWriter,
	dispatcher *tracking.Dispatcher,
	generator diagnostic.Generator,
	bus events.Bus,
	log *logger.Logger,
	met *metrics.Metrics,
	groupLink string,
) *Service {
	return &Service{
		store:      sessions,
		leads:      leads,
		dispatcher: dispatcher,
		generator:  generator,
		bus:        bus,
		log:        log,
		met:        met,
		groupLink:  groupLink,
	}
}

// GroupLink returns the WhatsApp group CTA link shown on the final step.
func (s *Service) GroupLink() string {
	return s.groupLink
}

// Create starts a new session at step 1 and fires its page view.
func (s *Service) Create(ctx context.Context) (*domain.Session, error) {
	session := domain.NewSession()
	if err := s.store.IncrementCreated(ctx); err != nil {
		s.log.DatabaseError("increment session counter", err)
	}
	s.trackStepView(ctx, session)

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get loads a session.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	return s.store.Get(ctx, id)
}

// Advance moves a session one step forward, firing a page view when the
// step actually changes.
func (s *Service) Advance(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Advance() {
		s.trackStepView(ctx, session)
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Retreat moves a session one step back. Going back never fires events.
func (s *Service) Retreat(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Retreat()

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GoTo jumps a session to an arbitrary step.
func (s *Service) GoTo(ctx context.Context, id uuid.UUID, step int) (*domain.Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := session.CurrentStep
	if err := session.GoTo(step); err != nil {
		return nil, err
	}
	if session.CurrentStep != previous {
		s.trackStepView(ctx, session)
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateField sets one profile field on the session.
func (s *Service) UpdateField(ctx context.Context, id uuid.UUID, field, value string) (*domain.Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := session.UpdateField(field, value); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Submit freezes the profile: fires the Lead event, persists the lead,
// generates the diagnostic and advances to the final step. Persistence
// and diagnostic failures are logged, never surfaced; the visitor always
// lands on step 6 with a non-nil diagnostic.
func (s *Service) Submit(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.CurrentStep != SubmitStep {
		return nil, apperr.BadRequest("submission is only valid on the contact step")
	}
	if err := validateProfile(session.Data); err != nil {
		return nil, err
	}

	session.Submitting = true

	s.dispatcher.Dispatch(ctx, &session.Fired, tracking.EventLead, session.CurrentStep, map[string]interface{}{
		"revenue": session.Data.Revenue,
		"city":    session.Data.City,
		"state":   session.Data.StateCode,
	})

	if lead, err := s.leads.Insert(ctx, session.Data); err != nil {
		s.log.DatabaseError("insert lead", err)
	} else {
		s.met.LeadsCaptured.Inc()
		s.bus.Publish(ctx, events.LeadCaptured{
			BaseEvent: events.NewBaseEvent(),
			LeadID:    lead.ID,
			SessionID: session.ID,
			FullName:  session.Data.FullName,
			Email:     session.Data.Email,
			WhatsApp:  session.Data.WhatsApp,
			City:      session.Data.City,
			State:     session.Data.State,
			Revenue:   session.Data.Revenue,
		})
	}

	result := s.generator.Generate(ctx, diagnostic.Input{
		FullName:            session.Data.FullName,
		City:                session.Data.City,
		BusinessDescription: session.Data.BusinessDescription,
		Revenue:             session.Data.Revenue,
	})
	session.Diagnostic = &result
	session.Submitting = false

	if session.Advance() {
		s.trackStepView(ctx, session)
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) trackStepView(ctx context.Context, session *domain.Session) {
	s.met.FunnelStepViews.WithLabelValues(strconv.Itoa(session.CurrentStep)).Inc()
	s.dispatcher.Dispatch(ctx, &session.Fired, tracking.EventPageView, session.CurrentStep, nil)
}

func validateProfile(p domain.LeadProfile) error {
	var missing []string
	if strings.TrimSpace(p.FullName) == "" {
		missing = append(missing, "fullName")
	}
	if strings.TrimSpace(p.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(p.WhatsApp) == "" {
		missing = append(missing, "whatsapp")
	}
	if p.Revenue == "" {
		missing = append(missing, "revenue")
	}
	if len(missing) > 0 {
		return apperr.New(apperr.KindValidation, "missing required fields: "+strings.Join(missing, ", "))
	}
	if !phone.IsValidBR(p.WhatsApp) {
		return apperr.New(apperr.KindValidation, "invalid whatsapp number")
	}
	return nil
}
