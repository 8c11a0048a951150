// Package affordability combines a profile's existing obligations with a
// proposed new loan to determine safe borrowing capacity, the projected
// debt burden, and the full amortization of the candidate loan.
package affordability

import "github.com/nileshkr/creditsense/pkg/formulas"

// Affordability bands derived from the projected debt-to-income ratio.
const (
	BandExcellent    = "Excellent"
	BandGood         = "Good"
	BandCaution      = "Caution"
	BandRisk         = "Risk"
	BandUndetermined = "Undetermined"
)

// Proposal describes the candidate loan being assessed.
type Proposal struct {
	Principal    float64 `json:"principal"`
	AnnualRate   float64 `json:"annual_rate"`
	TenureMonths int     `json:"tenure_months"`
}

// Result is the full affordability assessment.
type Result struct {
	CurrentDTI         float64                    `json:"current_dti"`
	ProposedEMI        float64                    `json:"proposed_emi"`
	ProjectedDTI       float64                    `json:"projected_dti"`
	Band               string                     `json:"band"`
	SafeEMICeiling     float64                    `json:"safe_emi_ceiling"`
	TotalExistingEMI   float64                    `json:"total_existing_emi"`
	CardMinimumDues    float64                    `json:"card_minimum_dues"`
	MonthlyObligations float64                    `json:"monthly_obligations"`
	Budget             formulas.BudgetAllocation  `json:"budget"`
	Schedule           []formulas.AmortizationRow `json:"schedule"`
	Warnings           []string                   `json:"warnings,omitempty"`
}

// Config holds the tunable DTI band edges and the overall debt cap used
// for the safe EMI ceiling. The documented bands are stable; the exact
// edges are configuration rather than hard-coded literals.
type Config struct {
	ExcellentMaxDTI float64 // DTI below this is Excellent (percent)
	GoodMaxDTI      float64 // DTI below this is Good (percent)
	CautionMaxDTI   float64 // DTI at or below this is Caution; above is Risk
	SafeDTICap      float64 // Fraction of income the total debt burden may reach
}

// DefaultConfig returns the standard affordability thresholds.
func DefaultConfig() Config {
	return Config{
		ExcellentMaxDTI: 30,
		GoodMaxDTI:      40,
		CautionMaxDTI:   50,
		SafeDTICap:      0.40,
	}
}
