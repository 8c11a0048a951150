package affordability

import (
	"github.com/nileshkr/creditsense/internal/domain"
	"github.com/nileshkr/creditsense/pkg/formulas"
)

// Service assesses loan affordability against a credit profile. It is a
// pure calculator: no I/O, no shared state, deterministic output.
type Service struct {
	cfg Config
}

// NewService creates an affordability service with the given band edges.
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// Assess evaluates whether the proposed loan fits the profile's budget.
//
// Steps:
//  1. Sum existing EMIs and card minimum dues.
//  2. Compute the current DTI.
//  3. Compute the EMI of the proposed loan.
//  4. Compute the projected DTI with the proposed EMI added.
//  5. Band the projected DTI.
//  6. Compute the safe EMI ceiling: income × cap − existing obligations,
//     clamped at 0.
//  7. Attach the full amortization schedule of the proposal.
//
// A zero income is a degenerate-but-valid state: the result carries the
// Undetermined band and a zero ceiling instead of an error, and the
// caller surfaces it as a data-quality issue. A structurally invalid
// proposal (non-positive principal or tenure) returns an error wrapping
// formulas.ErrInvalidInput and no partial result.
func (s *Service) Assess(profile domain.Profile, proposal Proposal) (*Result, error) {
	proposedEMI, err := formulas.CalculateEMI(proposal.Principal, proposal.AnnualRate, proposal.TenureMonths)
	if err != nil {
		return nil, err
	}

	schedule, err := formulas.GenerateAmortizationSchedule(proposal.Principal, proposal.AnnualRate, proposal.TenureMonths)
	if err != nil {
		return nil, err
	}

	totalEMI := profile.TotalEMI()
	minDues := profile.TotalMinimumDues()

	result := &Result{
		CurrentDTI:         formulas.CalculateDTI(totalEMI, minDues, profile.Income),
		ProposedEMI:        proposedEMI,
		ProjectedDTI:       formulas.CalculateDTI(totalEMI+proposedEMI, minDues, profile.Income),
		TotalExistingEMI:   totalEMI,
		CardMinimumDues:    minDues,
		MonthlyObligations: totalEMI + minDues,
		Budget:             formulas.ApplyBudgetRule(profile.Income),
		Schedule:           schedule,
	}

	if profile.Income <= 0 {
		result.Band = BandUndetermined
		result.SafeEMICeiling = 0
		result.Warnings = append(result.Warnings,
			"income is not set; affordability cannot be determined until the profile has a positive monthly income")
		return result, nil
	}

	result.Band = s.band(result.ProjectedDTI)
	result.SafeEMICeiling = max0(profile.Income*s.cfg.SafeDTICap - totalEMI - minDues)

	if proposal.AnnualRate == 0 {
		result.Warnings = append(result.Warnings,
			"zero interest rate: repayment projected as straight-line principal")
	}

	return result, nil
}

// band maps a projected DTI percentage onto the configured bands.
func (s *Service) band(dti float64) string {
	switch {
	case dti < s.cfg.ExcellentMaxDTI:
		return BandExcellent
	case dti < s.cfg.GoodMaxDTI:
		return BandGood
	case dti <= s.cfg.CautionMaxDTI:
		return BandCaution
	default:
		return BandRisk
	}
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
