package notification

import (
	"context"
	"strings"
	"testing"

	domainevents "advanx_funnel_backend/internal/events"
	"advanx_funnel_backend/platform/events"
	"advanx_funnel_backend/platform/logger"

	"github.com/google/uuid"
)

type stubSender struct {
	to      string
	subject string
	body    string
	calls   int
}

func (s *stubSender) Send(_ context.Context, to, subject, htmlContent string) error {
	s.calls++
	s.to = to
	s.subject = subject
	s.body = htmlContent
	return nil
}

func captured() domainevents.LeadCaptured {
	return domainevents.LeadCaptured{
		BaseEvent: domainevents.NewBaseEvent(),
		LeadID:    uuid.New(),
		SessionID: uuid.New(),
		FullName:  "João Silva",
		Email:     "joao@exemplo.com.br",
		WhatsApp:  "(11) 98888-7777",
		City:      "São Paulo",
		State:     "São Paulo",
		Revenue:   "20-50k",
	}
}

func TestLeadCapturedSendsEmail(t *testing.T) {
	sender := &stubSender{}
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)

	m := New(sender, "leads@advanx.com.br", true, log)
	m.RegisterHandlers(bus)

	if err := bus.PublishSync(context.Background(), captured()); err != nil {
		t.Fatalf("PublishSync: %v", err)
	}

	if sender.calls != 1 {
		t.Fatalf("sends = %d, want 1", sender.calls)
	}
	if sender.to != "leads@advanx.com.br" {
		t.Errorf("to = %q", sender.to)
	}
	if !strings.Contains(sender.subject, "João Silva") {
		t.Errorf("subject = %q", sender.subject)
	}
	for _, want := range []string{"joao@exemplo.com.br", "(11) 98888-7777", "São Paulo", "20-50k"} {
		if !strings.Contains(sender.body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestLeadCapturedSkippedWhenDisabled(t *testing.T) {
	sender := &stubSender{}
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)

	m := New(sender, "", true, log)
	m.RegisterHandlers(bus)

	if err := bus.PublishSync(context.Background(), captured()); err != nil {
		t.Fatalf("PublishSync: %v", err)
	}
	if sender.calls != 0 {
		t.Errorf("sends = %d, want 0", sender.calls)
	}
}
