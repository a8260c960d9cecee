package diagnostic

import (
	"context"
	"time"

	"advanx_funnel_backend/platform/logger"
	"advanx_funnel_backend/platform/metrics"
)

// CompletionClient abstracts the AI provider behind a single call.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// AIGenerator asks a completion service for the diagnostic and falls back
// to the rule-based result on any transport failure or timeout. A payload
// that arrives but cannot be parsed is replaced by the fixed generic
// diagnostic. The caller never sees an error either way.
type AIGenerator struct {
	client  CompletionClient
	timeout time.Duration
	log     *logger.Logger
	met     *metrics.Metrics
}

// NewAIGenerator creates a generator backed by the given provider.
func NewAIGenerator(client CompletionClient, timeout time.Duration, log *logger.Logger, met *metrics.Metrics) *AIGenerator {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &AIGenerator{client: client, timeout: timeout, log: log, met: met}
}

// Generate implements Generator.
func (g *AIGenerator) Generate(ctx context.Context, in Input) Result {
	if g.client == nil {
		return g.fallback(in, "provider not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	content, err := g.client.Complete(ctx, systemPrompt, buildUserPrompt(in))
	if err != nil {
		return g.fallback(in, err.Error())
	}

	result, err := parseDiagnostic(content, in)
	if err != nil {
		g.log.DiagnosticFallback("unparseable payload", in.Revenue)
		g.met.Diagnostics.WithLabelValues(string(SourceAI)).Inc()
		return GenericAI(in)
	}

	g.met.Diagnostics.WithLabelValues(string(SourceAI)).Inc()
	return result
}

func (g *AIGenerator) fallback(in Input, reason string) Result {
	g.log.DiagnosticFallback(reason, in.Revenue)
	g.met.Diagnostics.WithLabelValues(string(SourceRules)).Inc()
	return RuleBased(in)
}

// RuleBasedGenerator always returns the deterministic diagnostic. Used
// when no AI provider is configured.
type RuleBasedGenerator struct {
	met *metrics.Metrics
}

// NewRuleBasedGenerator creates the deterministic generator.
func NewRuleBasedGenerator(met *metrics.Metrics) *RuleBasedGenerator {
	return &RuleBasedGenerator{met: met}
}

// Generate implements Generator.
func (g *RuleBasedGenerator) Generate(_ context.Context, in Input) Result {
	if g.met != nil {
		g.met.Diagnostics.WithLabelValues(string(SourceRules)).Inc()
	}
	return RuleBased(in)
}
