package budget

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/spendwise/internal/domain/expense"
)

// Budget is a spending limit for one category over a recurring period.
type Budget struct {
	Name      string
	Category  expense.Category
	Limit     decimal.Decimal
	Frequency Frequency
	StartDate time.Time

	expenses []expense.Record
}

// New creates a Budget without expenses.
func New(name string, category expense.Category, limit decimal.Decimal, freq Frequency, start time.Time) *Budget {
	return &Budget{
		Name:      name,
		Category:  category,
		Limit:     limit,
		Frequency: freq,
		StartDate: start,
	}
}

// AddExpense records spending against the budget.
func (b *Budget) AddExpense(r expense.Record) {
	b.expenses = append(b.expenses, r)
}

// Expenses returns a copy of the recorded expenses.
func (b *Budget) Expenses() []expense.Record {
	return append([]expense.Record(nil), b.expenses...)
}

// TotalSpent sums every recorded expense.
func (b *Budget) TotalSpent() decimal.Decimal {
	sum := decimal.Zero
	for _, r := range b.expenses {
		sum = sum.Add(r.Amount)
	}
	return sum
}

// Remaining returns Limit - TotalSpent. It goes negative once overspent.
func (b *Budget) Remaining() decimal.Decimal {
	return b.Limit.Sub(b.TotalSpent())
}

// SpentInPeriod sums the expenses of the budget's category dated inside
// the current period of now.
func (b *Budget) SpentInPeriod(now time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range b.expenses {
		if r.Category != b.Category || !b.Frequency.Contains(now, r.Date) {
			continue
		}
		sum = sum.Add(r.Amount)
	}
	return sum
}

// AlertName is the budget name used in alert messages, e.g. "Food (Weekly)".
func (b *Budget) AlertName() string {
	return fmt.Sprintf("%s (%s)", b.Category.DisplayName(), b.Frequency)
}

// AlertKey identifies the budget for alert deduplication, e.g. "Weekly-Food".
func (b *Budget) AlertKey() string {
	return fmt.Sprintf("%s-%s", b.Frequency, b.Category.DisplayName())
}

// Summary returns the usage snapshot of the budget for the period of now.
func (b *Budget) Summary(id string, now time.Time) UsageSummary {
	return UsageSummary{
		BudgetID:     id,
		BudgetName:   b.Name,
		CategoryName: b.Category.DisplayName(),
		Allocated:    b.Limit,
		Spent:        b.SpentInPeriod(now),
	}
}
