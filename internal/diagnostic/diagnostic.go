// Package diagnostic produces the personalized marketing diagnostic shown
// at the funnel's final step. The primary path asks an AI completion
// service; every failure mode degrades to a deterministic result so the
// funnel is never blocked.
package diagnostic

import (
	"context"
	"strings"
)

// Source tells which branch produced a Result. Rendering code must handle
// both variants.
type Source string

const (
	// SourceAI marks a result parsed from the completion service.
	SourceAI Source = "ai"
	// SourceRules marks a result built from the revenue-bracket rules.
	SourceRules Source = "rules"
)

// Input is the profile slice the generator needs.
type Input struct {
	FullName            string
	City                string
	BusinessDescription string
	Revenue             string
}

// FirstName returns the first word of the full name, or a generic
// salutation when empty.
func (in Input) FirstName() string {
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return "Advogado"
	}
	return strings.Fields(name)[0]
}

// Result is the diagnostic shown on the final step.
type Result struct {
	Source              Source   `json:"source"`
	Phase               string   `json:"phase"`
	Niche               string   `json:"niche"`
	PrimaryProblem      string   `json:"primaryProblem"`
	ContractPotential   string   `json:"contractPotential"`
	SuggestedInvestment string   `json:"suggestedInvestment"`
	PotentialSavings    string   `json:"potentialSavings"`
	Insights            []string `json:"insights"`
	PersonalizedMessage string   `json:"personalizedMessage"`
}

// Generator produces a diagnostic for a submitted profile. Implementations
// never return an error and never return a zero Result: external failures
// resolve to the rule-based fallback.
type Generator interface {
	Generate(ctx context.Context, in Input) Result
}
