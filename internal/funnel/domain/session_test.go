package domain

import "testing"

func TestAdvanceStopsAtLastStep(t *testing.T) {
	s := NewSession()

	for step := FirstStep; step < LastStep; step++ {
		if s.CurrentStep != step {
			t.Fatalf("CurrentStep = %d, want %d", s.CurrentStep, step)
		}
		if !s.Advance() {
			t.Fatalf("Advance at step %d returned false", step)
		}
	}

	if s.Advance() {
		t.Error("Advance at last step should be a no-op")
	}
	if s.CurrentStep != LastStep {
		t.Errorf("CurrentStep = %d, want %d", s.CurrentStep, LastStep)
	}
}

func TestRetreatStopsAtFirstStep(t *testing.T) {
	s := NewSession()
	if s.Retreat() {
		t.Error("Retreat at first step should be a no-op")
	}

	s.Advance()
	if !s.Retreat() {
		t.Error("Retreat returned false")
	}
	if s.CurrentStep != FirstStep {
		t.Errorf("CurrentStep = %d, want %d", s.CurrentStep, FirstStep)
	}
}

func TestGoToRange(t *testing.T) {
	s := NewSession()

	if err := s.GoTo(4); err != nil {
		t.Fatalf("GoTo(4): %v", err)
	}
	if s.CurrentStep != 4 {
		t.Errorf("CurrentStep = %d, want 4", s.CurrentStep)
	}

	for _, step := range []int{0, 7, -1} {
		if err := s.GoTo(step); err == nil {
			t.Errorf("GoTo(%d) should fail", step)
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		step int
		want float64
	}{
		{1, 0},
		{2, 20},
		{4, 60},
		{6, 100},
	}

	s := NewSession()
	for _, tt := range tests {
		s.CurrentStep = tt.step
		if got := s.Progress(); got != tt.want {
			t.Errorf("Progress at step %d = %v, want %v", tt.step, got, tt.want)
		}
	}
}

func TestUpdateFieldWhatsAppAutofillsLocation(t *testing.T) {
	s := NewSession()

	if err := s.UpdateField("whatsapp", "11988887777"); err != nil {
		t.Fatalf("UpdateField: %v", err)
	}

	if s.Data.WhatsApp != "(11) 98888-7777" {
		t.Errorf("WhatsApp = %q, want masked form", s.Data.WhatsApp)
	}
	if s.Data.City != "São Paulo" || s.Data.StateCode != "SP" {
		t.Errorf("location = %q/%q, want São Paulo/SP", s.Data.City, s.Data.StateCode)
	}
}

func TestUpdateFieldWhatsAppUnknownAreaCodeKeepsLocation(t *testing.T) {
	s := NewSession()
	s.Data.City = "Manaus"
	s.Data.State = "Amazonas"
	s.Data.StateCode = "AM"

	if err := s.UpdateField("whatsapp", "2099"); err != nil {
		t.Fatalf("UpdateField: %v", err)
	}
	if s.Data.City != "Manaus" {
		t.Errorf("City = %q, unknown area code must not clear location", s.Data.City)
	}
}

func TestUpdateFieldRevenue(t *testing.T) {
	s := NewSession()

	if err := s.UpdateField("revenue", "20-50k"); err != nil {
		t.Fatalf("UpdateField: %v", err)
	}
	if s.Data.Revenue != "20-50k" {
		t.Errorf("Revenue = %q", s.Data.Revenue)
	}

	if err := s.UpdateField("revenue", "1M+"); err == nil {
		t.Error("unknown bracket should be rejected")
	}
}

func TestUpdateFieldUnknownField(t *testing.T) {
	s := NewSession()
	if err := s.UpdateField("cpf", "123"); err == nil {
		t.Error("unknown field should be rejected")
	}
}
