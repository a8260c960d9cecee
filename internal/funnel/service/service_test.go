package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"advanx_funnel_backend/internal/diagnostic"
	"advanx_funnel_backend/internal/funnel/domain"
	"advanx_funnel_backend/internal/funnel/repository"
	"advanx_funnel_backend/internal/funnel/store"
	"advanx_funnel_backend/internal/tracking"
	"advanx_funnel_backend/platform/apperr"
	"advanx_funnel_backend/platform/events"
	"advanx_funnel_backend/platform/logger"
	"advanx_funnel_backend/platform/metrics"

	"github.com/google/uuid"
)

type stubLeadWriter struct {
	inserted []domain.LeadProfile
	err      error
}

func (w *stubLeadWriter) Insert(_ context.Context, profile domain.LeadProfile) (repository.Lead, error) {
	if w.err != nil {
		return repository.Lead{}, w.err
	}
	w.inserted = append(w.inserted, profile)
	return repository.Lead{ID: uuid.New(), Profile: profile, CreatedAt: time.Now()}, nil
}

type stubGenerator struct {
	calls int
}

func (g *stubGenerator) Generate(_ context.Context, in diagnostic.Input) diagnostic.Result {
	g.calls++
	return diagnostic.RuleBased(in)
}

func newTestService(t *testing.T, leads repository.LeadWriter) (*Service, *stubGenerator) {
	t.Helper()

	log := logger.New("development")
	met := metrics.New()
	bus := events.NewInMemoryBus(log)
	dispatcher := tracking.NewDispatcher(nil, bus, log, met)
	gen := &stubGenerator{}

	svc := New(store.NewMemoryStore(), leads, dispatcher, gen, bus, log, met, "https://example.com/grupo")
	return svc, gen
}

func fillContactData(t *testing.T, svc *Service, id uuid.UUID) {
	t.Helper()

	fields := map[string]string{
		"fullName": "João Silva",
		"email":    "joao@exemplo.com.br",
		"whatsapp": "11988887777",
		"revenue":  "5-10k",
	}
	for field, value := range fields {
		if _, err := svc.UpdateField(context.Background(), id, field, value); err != nil {
			t.Fatalf("UpdateField(%s): %v", field, err)
		}
	}
}

func TestCreateStartsAtFirstStep(t *testing.T) {
	svc, _ := newTestService(t, &stubLeadWriter{})

	session, err := svc.Create(context.Background())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if session.CurrentStep != domain.FirstStep {
		t.Errorf("CurrentStep = %d, want %d", session.CurrentStep, domain.FirstStep)
	}
	if !session.Fired.Has(tracking.EventPageView, 1) {
		t.Error("step 1 page view was not recorded")
	}
}

func TestAdvancePersistsStep(t *testing.T) {
	svc, _ := newTestService(t, &stubLeadWriter{})
	ctx := context.Background()

	session, _ := svc.Create(ctx)
	if _, err := svc.Advance(ctx, session.ID); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	got, err := svc.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.CurrentStep != 2 {
		t.Errorf("CurrentStep = %d, want 2", got.CurrentStep)
	}
	if !got.Fired.Has(tracking.EventPageView, 2) {
		t.Error("step 2 page view was not recorded")
	}
}

func TestSubmitHappyPath(t *testing.T) {
	writer := &stubLeadWriter{}
	svc, gen := newTestService(t, writer)
	ctx := context.Background()

	session, _ := svc.Create(ctx)
	fillContactData(t, svc, session.ID)
	if _, err := svc.GoTo(ctx, session.ID, 5); err != nil {
		t.Fatalf("GoTo: %v", err)
	}

	got, err := svc.Submit(ctx, session.ID)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if got.CurrentStep != domain.LastStep {
		t.Errorf("CurrentStep = %d, want %d", got.CurrentStep, domain.LastStep)
	}
	if got.Diagnostic == nil {
		t.Fatal("Diagnostic is nil after submit")
	}
	if got.Submitting {
		t.Error("Submitting flag not cleared")
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
	if len(writer.inserted) != 1 {
		t.Fatalf("inserted leads = %d, want 1", len(writer.inserted))
	}
	if writer.inserted[0].City != "São Paulo" {
		t.Errorf("lead city = %q, want autofilled São Paulo", writer.inserted[0].City)
	}
	if !got.Fired.Has(tracking.EventLead, 5) {
		t.Error("Lead event was not recorded")
	}
}

func TestSubmitPersistenceFailureStillCompletes(t *testing.T) {
	svc, _ := newTestService(t, &stubLeadWriter{err: errors.New("connection refused")})
	ctx := context.Background()

	session, _ := svc.Create(ctx)
	fillContactData(t, svc, session.ID)
	if _, err := svc.GoTo(ctx, session.ID, 5); err != nil {
		t.Fatalf("GoTo: %v", err)
	}

	got, err := svc.Submit(ctx, session.ID)
	if err != nil {
		t.Fatalf("Submit must not surface persistence failures: %v", err)
	}
	if got.CurrentStep != domain.LastStep {
		t.Errorf("CurrentStep = %d, want %d", got.CurrentStep, domain.LastStep)
	}
	if got.Diagnostic == nil {
		t.Error("Diagnostic is nil after submit")
	}
}

func TestSubmitRejectsWrongStep(t *testing.T) {
	svc, _ := newTestService(t, &stubLeadWriter{})
	ctx := context.Background()

	session, _ := svc.Create(ctx)
	fillContactData(t, svc, session.ID)

	if _, err := svc.Submit(ctx, session.ID); apperr.GetKind(err) != apperr.KindBadRequest {
		t.Errorf("Submit at step 1: err = %v, want bad request", err)
	}
}

func TestSubmitRejectsIncompleteProfile(t *testing.T) {
	svc, _ := newTestService(t, &stubLeadWriter{})
	ctx := context.Background()

	session, _ := svc.Create(ctx)
	if _, err := svc.GoTo(ctx, session.ID, 5); err != nil {
		t.Fatalf("GoTo: %v", err)
	}

	if _, err := svc.Submit(ctx, session.ID); apperr.GetKind(err) != apperr.KindValidation {
		t.Errorf("Submit with empty profile: err = %v, want validation error", err)
	}
}

func TestSubmitRejectsIncompletePhone(t *testing.T) {
	svc, _ := newTestService(t, &stubLeadWriter{})
	ctx := context.Background()

	session, _ := svc.Create(ctx)
	fillContactData(t, svc, session.ID)
	if _, err := svc.UpdateField(ctx, session.ID, "whatsapp", "1198888"); err != nil {
		t.Fatalf("UpdateField: %v", err)
	}
	if _, err := svc.GoTo(ctx, session.ID, 5); err != nil {
		t.Fatalf("GoTo: %v", err)
	}

	if _, err := svc.Submit(ctx, session.ID); apperr.GetKind(err) != apperr.KindValidation {
		t.Errorf("Submit with partial phone: err = %v, want validation error", err)
	}
}

func TestGetMissingSession(t *testing.T) {
	svc, _ := newTestService(t, &stubLeadWriter{})

	if _, err := svc.Get(context.Background(), uuid.New()); apperr.GetKind(err) != apperr.KindNotFound {
		t.Errorf("Get: err = %v, want not found", err)
	}
}
