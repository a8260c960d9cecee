package diagnostic

import "fmt"

// Narrative phases keyed by revenue bracket. The mapping is total: any
// unrecognized or unset bracket lands in the optimization phase.
const (
	phaseGrowth       = "Fase de Crescimento"
	phaseScale        = "Fase de Escala"
	phaseOptimization = "Fase de Otimização"
)

// PhaseFor maps a revenue bracket to its narrative phase.
func PhaseFor(revenue string) string {
	switch revenue {
	case "0-5k", "5-10k", "10-20k":
		return phaseGrowth
	case "20-50k", "50-100k":
		return phaseScale
	default:
		return phaseOptimization
	}
}

// RuleBased builds the deterministic diagnostic for a profile, keyed only
// by the revenue bracket. Used whenever the AI service is disabled,
// unreachable, or times out.
func RuleBased(in Input) Result {
	firstName := in.FirstName()

	switch PhaseFor(in.Revenue) {
	case phaseGrowth:
		return Result{
			Source:              SourceRules,
			Phase:               phaseGrowth,
			Niche:               "Advocacia Geral",
			PrimaryProblem:      "Foco em gerar demanda qualificada",
			ContractPotential:   "8-12 contratos/mês",
			SuggestedInvestment: "R$1.200/mês",
			PotentialSavings:    "R$10.000+/mês",
			Insights: []string{
				"Gerar Demanda Qualificada: atraia clientes que realmente precisam dos seus serviços jurídicos. Marketing direcionado é essencial.",
				"Fechar Mais Negócios: com a demanda certa, você precisa de um processo de vendas eficiente. Nossa IA pode qualificar leads 24/7.",
				"Potencial de Crescimento: escritórios nessa faixa costumam dobrar o faturamento em 6-12 meses.",
			},
			PersonalizedMessage: fmt.Sprintf("%s, você pode estar deixando de faturar R$10.000+ por mês em clientes que não chegam até você.", firstName),
		}
	case phaseScale:
		return Result{
			Source:              SourceRules,
			Phase:               phaseScale,
			Niche:               "Advocacia Geral",
			PrimaryProblem:      "Momento de automatizar e diversificar",
			ContractPotential:   "8-12 contratos/mês",
			SuggestedInvestment: "R$1.500/mês",
			PotentialSavings:    "R$15.000+/mês",
			Insights: []string{
				"Contratação Inteligente: antes de contratar mais pessoas, automatize. Nossa IA pode fazer o trabalho de 2-3 pessoas na qualificação de leads.",
				"Automatizar Processos: tarefas repetitivas como agendamento, follow-up e qualificação podem ser 100% automatizadas.",
				"Diversificar Canais: você não pode depender de uma única fonte de clientes. Vamos criar múltiplos canais de aquisição.",
			},
			PersonalizedMessage: fmt.Sprintf("%s, escritórios nessa faixa costumam economizar R$15.000+ por mês com automação inteligente.", firstName),
		}
	default:
		return Result{
			Source:              SourceRules,
			Phase:               phaseOptimization,
			Niche:               "Advocacia Geral",
			PrimaryProblem:      "Operacionalização e eficiência máxima",
			ContractPotential:   "8-12 contratos/mês",
			SuggestedInvestment: "R$1.500/mês",
			PotentialSavings:    "R$20.000+/mês",
			Insights: []string{
				"Operacionalizar Processos: com múltiplos canais de aquisição, você precisa de um sistema que gerencie tudo de forma integrada.",
				"Múltiplos Canais de Aquisição: conecte todos os seus canais (orgânico, pago, indicações) em um único funil com IA.",
				"Economia de 20% em Custos Fixos: automatizando trabalho manual, você pode economizar pelo menos 20% dos seus custos fixos atuais.",
			},
			PersonalizedMessage: fmt.Sprintf("%s, você pode estar perdendo mais de R$20.000/mês em ineficiências operacionais.", firstName),
		}
	}
}

// GenericAI is the fixed diagnostic substituted when the AI service
// responds but the payload cannot be parsed into the expected shape.
func GenericAI(in Input) Result {
	return Result{
		Source:              SourceAI,
		Phase:               PhaseFor(in.Revenue),
		Niche:               "Advocacia Geral",
		PrimaryProblem:      "Precisamos analisar melhor seu perfil para um diagnóstico completo",
		ContractPotential:   "8-12 contratos/mês",
		SuggestedInvestment: "R$1.200/mês",
		PotentialSavings:    "Até R$10.000/mês em novos contratos",
		Insights: []string{
			"Seu escritório tem potencial de crescimento com as estratégias certas",
			"Marketing digital especializado para advogados gera resultados em até 41 dias",
			"Automação de atendimento pode triplicar sua capacidade de fechamento",
		},
		PersonalizedMessage: fmt.Sprintf("%s, você está no caminho certo! Vamos acelerar seus resultados.", in.FirstName()),
	}
}
