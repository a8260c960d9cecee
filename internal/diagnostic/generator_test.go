package diagnostic

import (
	"context"
	"errors"
	"testing"
	"time"

	"advanx_funnel_backend/platform/logger"
	"advanx_funnel_backend/platform/metrics"
)

type stubClient struct {
	content string
	err     error
}

func (s *stubClient) Complete(_ context.Context, _, _ string) (string, error) {
	return s.content, s.err
}

func newTestGenerator(client CompletionClient) *AIGenerator {
	return NewAIGenerator(client, time.Second, logger.New("development"), metrics.New())
}

func TestAIGeneratorSuccess(t *testing.T) {
	gen := newTestGenerator(&stubClient{content: validPayload})

	got := gen.Generate(context.Background(), Input{FullName: "João Silva", Revenue: "5-10k"})

	if got.Source != SourceAI {
		t.Errorf("Source = %q, want %q", got.Source, SourceAI)
	}
	if got.Niche != "Direito Trabalhista" {
		t.Errorf("Niche = %q", got.Niche)
	}
}

func TestAIGeneratorTransportFailureFallsBackToRules(t *testing.T) {
	gen := newTestGenerator(&stubClient{err: errors.New("connection refused")})

	got := gen.Generate(context.Background(), Input{FullName: "João Silva", Revenue: "5-10k"})

	if got.Source != SourceRules {
		t.Errorf("Source = %q, want %q", got.Source, SourceRules)
	}
	if got.Phase != "Fase de Crescimento" {
		t.Errorf("Phase = %q, want Fase de Crescimento", got.Phase)
	}
}

func TestAIGeneratorUnparseablePayloadUsesGenericResult(t *testing.T) {
	gen := newTestGenerator(&stubClient{content: "não consigo gerar JSON"})

	got := gen.Generate(context.Background(), Input{FullName: "Ana Lima", Revenue: "20-50k"})

	if got.Source != SourceAI {
		t.Errorf("Source = %q, want %q", got.Source, SourceAI)
	}
	if got.PrimaryProblem != "Precisamos analisar melhor seu perfil para um diagnóstico completo" {
		t.Errorf("PrimaryProblem = %q, want generic fallback", got.PrimaryProblem)
	}
	if got.Phase != "Fase de Escala" {
		t.Errorf("Phase = %q, want Fase de Escala", got.Phase)
	}
}

func TestAIGeneratorNilClientFallsBackToRules(t *testing.T) {
	gen := newTestGenerator(nil)

	got := gen.Generate(context.Background(), Input{Revenue: "100k+"})

	if got.Source != SourceRules {
		t.Errorf("Source = %q, want %q", got.Source, SourceRules)
	}
	if got.Phase != "Fase de Otimização" {
		t.Errorf("Phase = %q, want Fase de Otimização", got.Phase)
	}
}

func TestRuleBasedGeneratorAlwaysRules(t *testing.T) {
	gen := NewRuleBasedGenerator(metrics.New())

	got := gen.Generate(context.Background(), Input{FullName: "João Silva", Revenue: "0-5k"})

	if got.Source != SourceRules {
		t.Errorf("Source = %q, want %q", got.Source, SourceRules)
	}
}
