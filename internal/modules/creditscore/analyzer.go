package creditscore

import (
	"github.com/nileshkr/creditsense/internal/domain"
	"github.com/nileshkr/creditsense/pkg/formulas"
)

// Factor weights, mirroring standard bureau scoring models:
// payment history 35%, utilization 30%, credit mix 15%,
// new credit 10%, history length 10%.
const (
	weightPaymentHistory = 0.35
	weightUtilization    = 0.30
	weightCreditMix      = 0.15
	weightNewCredit      = 0.10
	weightHistoryLength  = 0.10
)

// Neutral sub-score used when a factor has no data to judge (no loans on
// file). Sits above the action threshold so thin-but-clean profiles do not
// generate noise recommendations.
const neutralSubScore = 75

// Analyzer decomposes a credit profile into weighted factor sub-scores.
// It is a pure calculator: no I/O, no shared state, identical input always
// yields an identical Analysis.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer with the given thresholds.
func NewAnalyzer(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Analyze produces the factor breakdown, overall banding, and improvement
// recommendations for a profile. The profile is assumed validated.
func (a *Analyzer) Analyze(profile domain.Profile) Analysis {
	factors := []Factor{
		a.paymentHistoryFactor(profile),
		a.utilizationFactor(profile),
		a.creditMixFactor(profile),
		a.newCreditFactor(profile),
		a.historyLengthFactor(profile),
	}

	recommendations := make([]string, 0, len(factors))
	for _, f := range factors {
		if f.SubScore < a.cfg.ActionThreshold {
			recommendations = append(recommendations, recommendationFor(f.Name))
		}
	}

	return Analysis{
		Score:           profile.CreditScore,
		Band:            Band(profile.CreditScore),
		Factors:         factors,
		Recommendations: recommendations,
	}
}

// Band maps a credit score to its qualitative band.
func Band(score int) string {
	switch {
	case score >= 750:
		return BandExcellent
	case score >= 700:
		return BandGood
	case score >= 650:
		return BandFair
	case score >= 600:
		return BandPoor
	default:
		return BandVeryPoor
	}
}

// paymentHistoryFactor penalizes proportionally to the fraction of late
// periods in the payment history. An empty history is treated as clean.
func (a *Analyzer) paymentHistoryFactor(profile domain.Profile) Factor {
	lateFraction := profile.LateFraction()

	f := Factor{
		Name:     FactorPaymentHistory,
		Weight:   weightPaymentHistory,
		SubScore: formulas.Round2(100 * (1 - lateFraction)),
	}
	if lateFraction > 0 {
		f.Flag = FlagLatePayments
	}
	return f
}

// utilizationFactor scores aggregated utilization across all cards.
// 0% utilization scores 100; the sub-score falls one point per percent.
func (a *Analyzer) utilizationFactor(profile domain.Profile) Factor {
	utilization := profile.AggregateUtilization()

	f := Factor{
		Name:     FactorUtilization,
		Weight:   weightUtilization,
		SubScore: formulas.Round2(formulas.Clamp(100-utilization, 0, 100)),
	}
	switch {
	case utilization > a.cfg.CriticalUtilizationPct:
		f.Flag = FlagCriticalUtilization
	case utilization > a.cfg.HighUtilizationPct:
		f.Flag = FlagHighUtilization
	}
	return f
}

// creditMixFactor is a proxy built from loan type diversity (60%) and
// average remaining tenure (40%). Profiles with no loans get the neutral
// sub-score: there is nothing to judge, not something to penalize.
func (a *Analyzer) creditMixFactor(profile domain.Profile) Factor {
	f := Factor{Name: FactorCreditMix, Weight: weightCreditMix}

	if len(profile.Loans) == 0 {
		f.SubScore = neutralSubScore
		return f
	}

	types := make(map[string]struct{}, len(profile.Loans))
	remaining := make([]float64, 0, len(profile.Loans))
	for _, loan := range profile.Loans {
		types[loan.Type] = struct{}{}
		remaining = append(remaining, float64(loan.RemainingTenure))
	}

	// Three distinct loan types count as full diversity; five years of
	// average remaining tenure counts as a full tenure proxy.
	diversity := formulas.Clamp(float64(len(types))/3, 0, 1)
	tenureProxy := formulas.Clamp(formulas.Mean(remaining)/60, 0, 1)

	f.SubScore = formulas.Round2(100 * (diversity*0.6 + tenureProxy*0.4))
	return f
}

// newCreditFactor penalizes recent hard inquiries, 15 points each.
func (a *Analyzer) newCreditFactor(profile domain.Profile) Factor {
	f := Factor{
		Name:     FactorNewCredit,
		Weight:   weightNewCredit,
		SubScore: formulas.Round2(formulas.Clamp(100-15*float64(profile.Inquiries), 0, 100)),
	}
	if profile.Inquiries > a.cfg.InquiryWarningCount {
		f.Flag = FlagManyInquiries
	}
	return f
}

// historyLengthFactor uses the longest loan tenure on file as a proxy for
// credit history length. Ten years saturates the factor.
func (a *Analyzer) historyLengthFactor(profile domain.Profile) Factor {
	f := Factor{Name: FactorHistoryLength, Weight: weightHistoryLength}

	if len(profile.Loans) == 0 {
		f.SubScore = neutralSubScore
		return f
	}

	longest := 0
	for _, loan := range profile.Loans {
		if loan.TenureMonths > longest {
			longest = loan.TenureMonths
		}
	}

	f.SubScore = formulas.Round2(100 * formulas.Clamp(float64(longest)/120, 0, 1))
	return f
}

// recommendationFor returns the actionable guidance for a weak factor.
func recommendationFor(factor string) string {
	switch factor {
	case FactorPaymentHistory:
		return "Pay every EMI and card bill on or before the due date; payment history carries the largest weight in your score."
	case FactorUtilization:
		return "Bring total card utilization below 30% of your combined limit by paying down balances or requesting a limit increase."
	case FactorCreditMix:
		return "Maintain a mix of secured and unsecured credit; a long-running secured loan strengthens this factor."
	case FactorNewCredit:
		return "Avoid new credit applications for the next few months; each hard inquiry temporarily lowers your score."
	case FactorHistoryLength:
		return "Keep your oldest credit accounts open; a longer track record improves this factor over time."
	default:
		return "Review this factor with your lender."
	}
}
