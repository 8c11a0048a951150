package formulas

import (
	"fmt"
	"math"
)

// CalculateEMI calculates the Equated Monthly Installment for a loan.
//
// EMI Formula:
//
//	r = annual rate / 12 / 100 (monthly rate as decimal)
//	n = tenure in months
//	EMI = P·r·(1+r)^n / ((1+r)^n − 1)
//
// The closed form divides by zero at r=0, so a zero interest rate
// degrades to straight-line repayment: EMI = P / n.
//
// Args:
//
//	principal: Loan principal (must be > 0)
//	annualRate: Annual interest rate as a percentage (must be >= 0)
//	tenureMonths: Total repayment period in months (must be > 0)
//
// Returns:
//
//	The monthly installment, or ErrInvalidInput for non-positive
//	principal or tenure, or a negative rate.
func CalculateEMI(principal, annualRate float64, tenureMonths int) (float64, error) {
	if principal <= 0 {
		return 0, fmt.Errorf("%w: principal must be positive, got %.2f", ErrInvalidInput, principal)
	}
	if tenureMonths <= 0 {
		return 0, fmt.Errorf("%w: tenure must be positive, got %d months", ErrInvalidInput, tenureMonths)
	}
	if annualRate < 0 {
		return 0, fmt.Errorf("%w: interest rate must not be negative, got %.2f", ErrInvalidInput, annualRate)
	}

	n := float64(tenureMonths)

	if annualRate == 0 {
		return principal / n, nil
	}

	r := annualRate / 1200
	factor := math.Pow(1+r, n)

	return principal * r * factor / (factor - 1), nil
}
