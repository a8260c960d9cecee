package diagnostic

import (
	"encoding/json"
	"fmt"
	"strings"
)

// wireDiagnostic is the shape the completion service is instructed to
// return. Anything that does not fit is treated as a parse failure.
type wireDiagnostic struct {
	Niche               string   `json:"nicho_identificado"`
	PrimaryProblem      string   `json:"problema_principal"`
	ContractPotential   string   `json:"potencial_contratos"`
	SuggestedInvestment string   `json:"investimento_sugerido"`
	PotentialSavings    string   `json:"economia_potencial"`
	Insights            []string `json:"insights"`
	PersonalizedMessage string   `json:"mensagem_personalizada"`
}

// parseDiagnostic parses the model output into a Result. Markdown code
// fences around the JSON are tolerated and stripped first.
func parseDiagnostic(content string, in Input) (Result, error) {
	clean := stripCodeFences(content)

	var wire wireDiagnostic
	if err := json.Unmarshal([]byte(clean), &wire); err != nil {
		return Result{}, fmt.Errorf("diagnostic: decode payload: %w", err)
	}

	if wire.Niche == "" || wire.PrimaryProblem == "" || len(wire.Insights) == 0 {
		return Result{}, fmt.Errorf("diagnostic: payload missing required fields")
	}

	return Result{
		Source:              SourceAI,
		Phase:               PhaseFor(in.Revenue),
		Niche:               wire.Niche,
		PrimaryProblem:      wire.PrimaryProblem,
		ContractPotential:   wire.ContractPotential,
		SuggestedInvestment: wire.SuggestedInvestment,
		PotentialSavings:    wire.PotentialSavings,
		Insights:            wire.Insights,
		PersonalizedMessage: wire.PersonalizedMessage,
	}, nil
}

func stripCodeFences(content string) string {
	clean := strings.ReplaceAll(content, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}
