package formulas

// AmortizationRow is one month of a loan repayment schedule.
type AmortizationRow struct {
	Period    int     `json:"period"`              // 1-based month index
	Payment   float64 `json:"payment"`             // EMI paid this period
	Principal float64 `json:"principal_component"` // Portion reducing the balance
	Interest  float64 `json:"interest_component"`  // Portion paid as interest
	Balance   float64 `json:"remaining_balance"`   // Balance after this payment
}

// GenerateAmortizationSchedule produces the full month-by-month repayment
// schedule for a loan. Each period's interest component is the remaining
// balance times the monthly rate; the principal component is the EMI minus
// that interest.
//
// The schedule always has exactly tenureMonths rows. The final row's
// remaining balance is clamped to exactly 0 to absorb floating-point
// drift accumulated over the simulation.
//
// Returns ErrInvalidInput under the same conditions as CalculateEMI.
func GenerateAmortizationSchedule(principal, annualRate float64, tenureMonths int) ([]AmortizationRow, error) {
	emi, err := CalculateEMI(principal, annualRate, tenureMonths)
	if err != nil {
		return nil, err
	}

	monthlyRate := annualRate / 1200
	balance := principal

	schedule := make([]AmortizationRow, 0, tenureMonths)
	for period := 1; period <= tenureMonths; period++ {
		interest := balance * monthlyRate
		principalPart := emi - interest
		balance -= principalPart

		if period == tenureMonths {
			// Absorb rounding drift on the terminal row
			principalPart += balance
			balance = 0
		}

		schedule = append(schedule, AmortizationRow{
			Period:    period,
			Payment:   emi,
			Principal: principalPart,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return schedule, nil
}
