package budget

import "github.com/shopspring/decimal"

// UsageSummary is a read-only snapshot of a budget's utilisation.
type UsageSummary struct {
	BudgetID     string
	BudgetName   string
	CategoryName string
	Allocated    decimal.Decimal
	Spent        decimal.Decimal
}

// Remaining returns the unspent allocation, floored at zero.
func (s UsageSummary) Remaining() decimal.Decimal {
	return decimal.Max(s.Allocated.Sub(s.Spent), decimal.Zero)
}

// UtilizationPercentage returns spent as a percentage of the allocation,
// capped at 100. Non-positive allocations report zero.
func (s UsageSummary) UtilizationPercentage() decimal.Decimal {
	if !s.Allocated.IsPositive() {
		return decimal.Zero
	}
	return decimal.Min(s.Spent.Div(s.Allocated).Mul(hundred), hundred)
}
