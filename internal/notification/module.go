package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"advanx_funnel_backend/internal/events"
	"advanx_funnel_backend/platform/logger"
)

var leadEmailTemplate = template.Must(template.New("lead").Parse(`
<h2>Novo lead capturado</h2>
<table cellpadding="4">
	<tr><td><b>Nome</b></td><td>{{.FullName}}</td></tr>
	<tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
	<tr><td><b>WhatsApp</b></td><td>{{.WhatsApp}}</td></tr>
	<tr><td><b>Cidade</b></td><td>{{.City}}{{if .State}} - {{.State}}{{end}}</td></tr>
	<tr><td><b>Faturamento</b></td><td>{{.Revenue}}</td></tr>
</table>
`))

// Module subscribes to domain events and sends the agency notifications.
// It is not HTTP-facing.
type Module struct {
	sender  Sender
	notify  string
	enabled bool
	log     *logger.Logger
}

// New creates the notification module. With no notify address the module
// stays registered but drops every event.
func New(sender Sender, notifyAddress string, enabled bool, log *logger.Logger) *Module {
	return &Module{
		sender:  sender,
		notify:  notifyAddress,
		enabled: enabled && notifyAddress != "",
		log:     log,
	}
}

// RegisterHandlers subscribes the module to the event bus.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.LeadCaptured{}.EventName(), events.HandlerFunc(m.onLeadCaptured))
}

func (m *Module) onLeadCaptured(ctx context.Context, event events.Event) error {
	e, ok := event.(events.LeadCaptured)
	if !ok {
		return nil
	}
	if !m.enabled {
		m.log.Debug("lead notification skipped, email disabled", "leadId", e.LeadID)
		return nil
	}

	var body bytes.Buffer
	if err := leadEmailTemplate.Execute(&body, e); err != nil {
		return fmt.Errorf("render lead email: %w", err)
	}

	subject := "Novo lead: " + e.FullName
	if err := m.sender.Send(ctx, m.notify, subject, body.String()); err != nil {
		m.log.Error("lead notification failed", "error", err, "leadId", e.LeadID)
		return err
	}

	m.log.Info("lead notification sent", "leadId", e.LeadID, "to", m.notify)
	return nil
}
