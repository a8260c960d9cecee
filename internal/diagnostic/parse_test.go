package diagnostic

import "testing"

const validPayload = `{
	"nicho_identificado": "Direito Trabalhista",
	"problema_principal": "Baixa geração de demanda qualificada",
	"potencial_contratos": "10-15 contratos/mês",
	"investimento_sugerido": "R$1.500/mês",
	"economia_potencial": "R$12.000/mês",
	"insights": ["um", "dois", "três"],
	"mensagem_personalizada": "João, seu escritório tem muito potencial."
}`

func TestParseDiagnostic(t *testing.T) {
	got, err := parseDiagnostic(validPayload, Input{FullName: "João Silva", Revenue: "5-10k"})
	if err != nil {
		t.Fatalf("parseDiagnostic: %v", err)
	}

	if got.Source != SourceAI {
		t.Errorf("Source = %q, want %q", got.Source, SourceAI)
	}
	if got.Phase != "Fase de Crescimento" {
		t.Errorf("Phase = %q, want Fase de Crescimento", got.Phase)
	}
	if got.Niche != "Direito Trabalhista" {
		t.Errorf("Niche = %q", got.Niche)
	}
	if len(got.Insights) != 3 {
		t.Errorf("len(Insights) = %d, want 3", len(got.Insights))
	}
}

func TestParseDiagnosticStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validPayload + "\n```"

	got, err := parseDiagnostic(fenced, Input{Revenue: "0-5k"})
	if err != nil {
		t.Fatalf("parseDiagnostic: %v", err)
	}
	if got.Niche != "Direito Trabalhista" {
		t.Errorf("Niche = %q", got.Niche)
	}
}

func TestParseDiagnosticRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "desculpe, não consigo responder em JSON"},
		{"missing niche", `{"problema_principal": "x", "insights": ["a"]}`},
		{"empty insights", `{"nicho_identificado": "x", "problema_principal": "y", "insights": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseDiagnostic(tt.content, Input{}); err == nil {
				t.Error("expected parse error, got nil")
			}
		})
	}
}
