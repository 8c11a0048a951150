// Package domain provides the validated in-memory representation of a
// user's credit report. A Profile is the single input type consumed by
// every analysis engine: credit score analysis, affordability assessment,
// and card recommendations all operate on the same immutable value.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/nileshkr/creditsense/pkg/formulas"
)

// Credit score bounds for the Indian bureau scale (CIBIL).
const (
	MinCreditScore = 300
	MaxCreditScore = 900
)

// Loan is one active loan on the credit report.
type Loan struct {
	Type            string  `json:"type"`             // Category label (home, auto, personal, ...)
	Lender          string  `json:"lender"`           // Lending institution
	Amount          float64 `json:"amount"`           // Original principal
	CurrentBalance  float64 `json:"current_balance"`  // Outstanding balance
	EMI             float64 `json:"emi"`              // Current monthly installment
	InterestRate    float64 `json:"interest_rate"`    // Annual percentage rate
	TenureMonths    int     `json:"tenure"`           // Total tenure in months
	RemainingTenure int     `json:"remaining_tenure"` // Months left to repay
}

// CreditCard is one active credit card on the credit report.
// Outstanding may exceed the limit for over-limit accounts.
type CreditCard struct {
	Issuer      string  `json:"issuer"`
	Limit       float64 `json:"limit"`
	Outstanding float64 `json:"outstanding"`
	MinimumDue  float64 `json:"minimum_due"`
}

// Profile is a structured financial profile: the input boundary of the
// analysis engines. Payment history entries are one flag per recent
// period, 0 = on time, anything greater = late.
type Profile struct {
	CreditScore    int          `json:"credit_score"`
	Income         float64      `json:"income"` // Monthly gross income
	Loans          []Loan       `json:"loans"`
	CreditCards    []CreditCard `json:"credit_cards"`
	PaymentHistory []int        `json:"payment_history"`
	Inquiries      int          `json:"inquiries"` // Recent hard inquiries
}

// Normalize replaces nil slices with empty ones so that absent optional
// arrays in the input document behave as empty sequences everywhere.
func (p *Profile) Normalize() {
	if p.Loans == nil {
		p.Loans = []Loan{}
	}
	if p.CreditCards == nil {
		p.CreditCards = []CreditCard{}
	}
	if p.PaymentHistory == nil {
		p.PaymentHistory = []int{}
	}
}

// Validate checks the structural invariants of the profile. All
// violations are reported as errors wrapping formulas.ErrInvalidInput;
// callers must not run any analysis on a profile that fails validation.
func (p *Profile) Validate() error {
	if p.CreditScore < MinCreditScore || p.CreditScore > MaxCreditScore {
		return fmt.Errorf("%w: credit score %d outside [%d, %d]",
			formulas.ErrInvalidInput, p.CreditScore, MinCreditScore, MaxCreditScore)
	}
	if p.Income < 0 {
		return fmt.Errorf("%w: income must not be negative, got %.2f", formulas.ErrInvalidInput, p.Income)
	}
	if p.Inquiries < 0 {
		return fmt.Errorf("%w: inquiries must not be negative, got %d", formulas.ErrInvalidInput, p.Inquiries)
	}

	for i, loan := range p.Loans {
		if loan.Amount <= 0 {
			return fmt.Errorf("%w: loan %d: amount must be positive, got %.2f",
				formulas.ErrInvalidInput, i, loan.Amount)
		}
		if loan.CurrentBalance < 0 || loan.CurrentBalance > loan.Amount {
			return fmt.Errorf("%w: loan %d: balance %.2f outside [0, %.2f]",
				formulas.ErrInvalidInput, i, loan.CurrentBalance, loan.Amount)
		}
		if loan.EMI < 0 {
			return fmt.Errorf("%w: loan %d: EMI must not be negative", formulas.ErrInvalidInput, i)
		}
		if loan.InterestRate < 0 {
			return fmt.Errorf("%w: loan %d: interest rate must not be negative", formulas.ErrInvalidInput, i)
		}
		if loan.TenureMonths <= 0 {
			return fmt.Errorf("%w: loan %d: tenure must be positive, got %d",
				formulas.ErrInvalidInput, i, loan.TenureMonths)
		}
		if loan.RemainingTenure < 0 || loan.RemainingTenure > loan.TenureMonths {
			return fmt.Errorf("%w: loan %d: remaining tenure %d outside [0, %d]",
				formulas.ErrInvalidInput, i, loan.RemainingTenure, loan.TenureMonths)
		}
	}

	for i, card := range p.CreditCards {
		if card.Limit <= 0 {
			return fmt.Errorf("%w: card %d: limit must be positive, got %.2f",
				formulas.ErrInvalidInput, i, card.Limit)
		}
		if card.Outstanding < 0 {
			return fmt.Errorf("%w: card %d: outstanding must not be negative", formulas.ErrInvalidInput, i)
		}
		if card.MinimumDue < 0 {
			return fmt.Errorf("%w: card %d: minimum due must not be negative", formulas.ErrInvalidInput, i)
		}
	}

	for i, flag := range p.PaymentHistory {
		if flag < 0 {
			return fmt.Errorf("%w: payment history %d: flag must not be negative", formulas.ErrInvalidInput, i)
		}
	}

	return nil
}

// TotalEMI sums the monthly installments across all loans.
func (p *Profile) TotalEMI() float64 {
	var total float64
	for _, loan := range p.Loans {
		total += loan.EMI
	}
	return total
}

// TotalMinimumDues sums the minimum dues across all credit cards.
func (p *Profile) TotalMinimumDues() float64 {
	var total float64
	for _, card := range p.CreditCards {
		total += card.MinimumDue
	}
	return total
}

// TotalOutstanding sums the outstanding balances across all credit cards.
func (p *Profile) TotalOutstanding() float64 {
	var total float64
	for _, card := range p.CreditCards {
		total += card.Outstanding
	}
	return total
}

// TotalLimit sums the credit limits across all credit cards.
func (p *Profile) TotalLimit() float64 {
	var total float64
	for _, card := range p.CreditCards {
		total += card.Limit
	}
	return total
}

// AggregateUtilization is the utilization across all cards combined:
// sum(outstanding) / sum(limit) as a percentage. 0 when there are no cards.
func (p *Profile) AggregateUtilization() float64 {
	return formulas.CalculateUtilization(p.TotalOutstanding(), p.TotalLimit())
}

// LateFraction is the fraction of payment history periods that were late.
// 0 when no history is recorded.
func (p *Profile) LateFraction() float64 {
	if len(p.PaymentHistory) == 0 {
		return 0
	}
	late := 0
	for _, flag := range p.PaymentHistory {
		if flag > 0 {
			late++
		}
	}
	return float64(late) / float64(len(p.PaymentHistory))
}

// Fingerprint returns a stable hex digest of the profile's canonical JSON
// form, used to correlate stored analysis snapshots with their input.
func (p *Profile) Fingerprint() string {
	normalized := *p
	normalized.Normalize()

	data, err := json.Marshal(normalized)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
