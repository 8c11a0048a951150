package formulas

// CalculateDTI calculates the debt-to-income ratio as a percentage.
//
// DTI Formula:
//
//	DTI = (total EMI + card minimum dues) / monthly income × 100
//
// A zero or negative income returns 0 rather than an error: callers may
// legitimately explore hypothetical profiles before income is known.
func CalculateDTI(totalEMI, cardMinimumDues, income float64) float64 {
	if income <= 0 {
		return 0
	}
	return (totalEMI + cardMinimumDues) / income * 100
}

// CalculateUtilization calculates credit utilization as a percentage of
// the credit limit. A zero or negative limit returns 0.
func CalculateUtilization(outstanding, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return outstanding / limit * 100
}
