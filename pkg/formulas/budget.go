package formulas

// BudgetAllocation is the recommended split of monthly income under the
// 50/30/20 budgeting rule.
type BudgetAllocation struct {
	Essentials float64 `json:"essentials"` // 50% - rent, food, utilities, EMIs
	Wants      float64 `json:"wants"`      // 30% - discretionary spending
	Savings    float64 `json:"savings"`    // 20% - savings and investments
}

// ApplyBudgetRule splits monthly income using the 50/30/20 rule.
// The savings bucket is derived by subtraction so the three allocations
// always sum to the income exactly, with no floating-point loss.
func ApplyBudgetRule(income float64) BudgetAllocation {
	essentials := income * 0.5
	wants := income * 0.3

	return BudgetAllocation{
		Essentials: essentials,
		Wants:      wants,
		Savings:    income - essentials - wants,
	}
}

// Total returns the sum of all three allocations.
func (b BudgetAllocation) Total() float64 {
	return b.Essentials + b.Wants + b.Savings
}
