package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"advanx_funnel_backend/internal/admin/repository"
)

// revenueLabels localizes the bracket values for display and export.
var revenueLabels = map[string]string{
	"0-5k":    "R$ 0 - 5 mil",
	"5-10k":   "R$ 5 - 10 mil",
	"10-20k":  "R$ 10 - 20 mil",
	"20-50k":  "R$ 20 - 50 mil",
	"50-100k": "R$ 50 - 100 mil",
	"100k+":   "R$ 100 mil+",
}

// RevenueLabel returns the localized label for a bracket, or the raw
// value when it is not one of the fixed options.
func RevenueLabel(revenue string) string {
	if label, ok := revenueLabels[revenue]; ok {
		return label
	}
	return revenue
}

// ListLeads returns the filtered lead listing, newest first.
func (s *Service) ListLeads(ctx context.Context, params repository.ListParams) ([]repository.Lead, error) {
	return s.repo.ListLeads(ctx, params)
}

var csvHeader = []string{"Nome", "Email", "WhatsApp", "Instagram", "Cidade", "Estado", "Faturamento", "Data"}

// ExportLeadsCSV renders the filtered leads as CSV. Returns the
// download filename and the file contents.
func (s *Service) ExportLeadsCSV(ctx context.Context, params repository.ListParams) (string, []byte, error) {
	leads, err := s.repo.ListLeads(ctx, params)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return "", nil, fmt.Errorf("export leads: %w", err)
	}
	for _, lead := range leads {
		instagram := lead.Instagram
		if instagram == "" {
			instagram = "-"
		}
		record := []string{
			lead.FullName,
			lead.Email,
			lead.WhatsApp,
			instagram,
			lead.City,
			lead.State,
			RevenueLabel(lead.Revenue),
			lead.CreatedAt.Format("02/01/2006"),
		}
		if err := w.Write(record); err != nil {
			return "", nil, fmt.Errorf("export leads: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, fmt.Errorf("export leads: %w", err)
	}

	filename := fmt.Sprintf("leads_advanx_%s.csv", time.Now().Format("2006-01-02"))
	return filename, buf.Bytes(), nil
}

// DashboardMetrics aggregates the numbers shown on the admin dashboard.
type DashboardMetrics struct {
	TotalLeads      int            `json:"totalLeads"`
	LeadsToday      int            `json:"leadsToday"`
	LeadsThisWeek   int            `json:"leadsThisWeek"`
	SessionsStarted int64          `json:"sessionsStarted"`
	CompletionRate  float64        `json:"completionRate"`
	ByRevenue       map[string]int `json:"byRevenue"`
}

// Metrics computes the dashboard aggregates. The completion rate is the
// share of started sessions that ended in a captured lead.
func (s *Service) Metrics(ctx context.Context) (DashboardMetrics, error) {
	total, err := s.repo.CountLeads(ctx)
	if err != nil {
		return DashboardMetrics{}, err
	}

	now := time.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	today, err := s.repo.CountLeadsSince(ctx, startOfDay)
	if err != nil {
		return DashboardMetrics{}, err
	}
	week, err := s.repo.CountLeadsSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return DashboardMetrics{}, err
	}
	byRevenue, err := s.repo.CountLeadsByRevenue(ctx)
	if err != nil {
		return DashboardMetrics{}, err
	}

	started, err := s.sessions.CreatedCount(ctx)
	if err != nil {
		s.log.DatabaseError("read session counter", err)
		started = 0
	}

	m := DashboardMetrics{
		TotalLeads:      total,
		LeadsToday:      today,
		LeadsThisWeek:   week,
		SessionsStarted: started,
		ByRevenue:       byRevenue,
	}
	if started > 0 {
		m.CompletionRate = float64(total) / float64(started) * 100
	}
	return m, nil
}
