package diagnostic

import (
	"strings"
	"testing"
)

func TestPhaseFor(t *testing.T) {
	tests := []struct {
		revenue string
		want    string
	}{
		{"0-5k", "Fase de Crescimento"},
		{"5-10k", "Fase de Crescimento"},
		{"10-20k", "Fase de Crescimento"},
		{"20-50k", "Fase de Escala"},
		{"50-100k", "Fase de Escala"},
		{"100k+", "Fase de Otimização"},
		{"", "Fase de Otimização"},
		{"garbage", "Fase de Otimização"},
	}

	for _, tt := range tests {
		if got := PhaseFor(tt.revenue); got != tt.want {
			t.Errorf("PhaseFor(%q) = %q, want %q", tt.revenue, got, tt.want)
		}
	}
}

func TestRuleBasedGrowthPhase(t *testing.T) {
	got := RuleBased(Input{FullName: "João Silva", Revenue: "5-10k"})

	if got.Source != SourceRules {
		t.Errorf("Source = %q, want %q", got.Source, SourceRules)
	}
	if got.Phase != "Fase de Crescimento" {
		t.Errorf("Phase = %q, want Fase de Crescimento", got.Phase)
	}
	if len(got.Insights) != 3 {
		t.Fatalf("len(Insights) = %d, want 3", len(got.Insights))
	}
	if !strings.HasPrefix(got.PersonalizedMessage, "João, ") {
		t.Errorf("PersonalizedMessage = %q, want first-name salutation", got.PersonalizedMessage)
	}
}

func TestRuleBasedPhases(t *testing.T) {
	tests := []struct {
		revenue string
		phase   string
		savings string
	}{
		{"0-5k", "Fase de Crescimento", "R$10.000+/mês"},
		{"20-50k", "Fase de Escala", "R$15.000+/mês"},
		{"100k+", "Fase de Otimização", "R$20.000+/mês"},
	}

	for _, tt := range tests {
		got := RuleBased(Input{FullName: "Maria Souza", Revenue: tt.revenue})
		if got.Phase != tt.phase {
			t.Errorf("revenue %q: Phase = %q, want %q", tt.revenue, got.Phase, tt.phase)
		}
		if got.PotentialSavings != tt.savings {
			t.Errorf("revenue %q: PotentialSavings = %q, want %q", tt.revenue, got.PotentialSavings, tt.savings)
		}
	}
}

func TestFirstName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"João Silva", "João"},
		{"  Maria  ", "Maria"},
		{"", "Advogado"},
		{"   ", "Advogado"},
	}

	for _, tt := range tests {
		if got := (Input{FullName: tt.name}).FirstName(); got != tt.want {
			t.Errorf("FirstName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGenericAIKeepsPhaseFromRevenue(t *testing.T) {
	got := GenericAI(Input{FullName: "Ana Lima", Revenue: "20-50k"})

	if got.Source != SourceAI {
		t.Errorf("Source = %q, want %q", got.Source, SourceAI)
	}
	if got.Phase != "Fase de Escala" {
		t.Errorf("Phase = %q, want Fase de Escala", got.Phase)
	}
	if !strings.HasPrefix(got.PersonalizedMessage, "Ana, ") {
		t.Errorf("PersonalizedMessage = %q, want first-name salutation", got.PersonalizedMessage)
	}
}
