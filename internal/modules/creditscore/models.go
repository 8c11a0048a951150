// Package creditscore decomposes a credit score into weighted factor
// contributions, mirroring the standard bureau scoring-model weightings,
// and produces improvement guidance for weak factors.
package creditscore

// Factor names, in the fixed order they appear in every analysis.
const (
	FactorPaymentHistory = "payment_history"
	FactorUtilization    = "credit_utilization"
	FactorCreditMix      = "credit_mix"
	FactorNewCredit      = "new_credit"
	FactorHistoryLength  = "history_length"
)

// Qualitative flags attached to factors.
const (
	FlagHighUtilization     = "high_utilization"
	FlagCriticalUtilization = "critical_utilization"
	FlagLatePayments        = "late_payments"
	FlagManyInquiries       = "many_inquiries"
)

// Score bands.
const (
	BandExcellent = "Excellent"
	BandGood      = "Good"
	BandFair      = "Fair"
	BandPoor      = "Poor"
	BandVeryPoor  = "Very Poor"
)

// Factor is one weighted component of the score decomposition.
type Factor struct {
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`    // Contribution weight (fractions summing to 1)
	SubScore float64 `json:"sub_score"` // Normalized sub-score, 0-100
	Flag     string  `json:"flag,omitempty"`
}

// Analysis is the full credit score decomposition. Factors keep a fixed
// order so that identical input always serializes to identical output.
type Analysis struct {
	Score           int      `json:"score"`
	Band            string   `json:"band"`
	Factors         []Factor `json:"factors"`
	Recommendations []string `json:"recommendations"`
}

// Factor returns the named factor, or a zero Factor if absent.
func (a Analysis) Factor(name string) Factor {
	for _, f := range a.Factors {
		if f.Name == name {
			return f
		}
	}
	return Factor{}
}

// Config holds the tunable thresholds of the analyzer. The documented
// bands are stable; exact threshold values are configuration, so callers
// may adjust them without code changes.
type Config struct {
	HighUtilizationPct     float64 // Utilization above this flags "high" (percent)
	CriticalUtilizationPct float64 // Utilization above this flags "critical" (percent)
	InquiryWarningCount    int     // More inquiries than this triggers a warning
	ActionThreshold        float64 // Sub-scores below this emit a recommendation
}

// DefaultConfig returns the standard analyzer thresholds.
func DefaultConfig() Config {
	return Config{
		HighUtilizationPct:     30,
		CriticalUtilizationPct: 50,
		InquiryWarningCount:    3,
		ActionThreshold:        70,
	}
}
