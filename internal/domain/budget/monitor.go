package budget

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Monitor raises each budget alert once. A budget that has alerted stays
// silent until Reset, even if its status changes.
type Monitor struct {
	threshold decimal.Decimal

	mu      sync.Mutex
	alerted map[string]struct{}
}

// NewMonitor creates a Monitor using threshold for near-limit checks.
// A zero threshold selects DefaultThreshold.
func NewMonitor(threshold decimal.Decimal) *Monitor {
	if threshold.IsZero() {
		threshold = DefaultThreshold
	}
	return &Monitor{
		threshold: threshold,
		alerted:   make(map[string]struct{}),
	}
}

// Threshold returns the near-limit fraction in use.
func (m *Monitor) Threshold() decimal.Decimal { return m.threshold }

// Check evaluates budgets against spending in the period of now and
// returns new alerts in input order. Budgets sharing an AlertKey are
// judged together: their limits add up and each expense counts once.
// Budgets whose StartDate is outside the period of now are ignored.
func (m *Monitor) Check(now time.Time, budgets ...*Budget) []Alert {
	m.mu.Lock()
	defer m.mu.Unlock()

	var alerts []Alert
	for _, g := range groupByKey(now, budgets) {
		if _, ok := m.alerted[g.key]; ok {
			continue
		}
		a := Evaluate(g.name, g.spent, g.limit, m.threshold)
		if a.Status == StatusOK {
			continue
		}
		a.Key = g.key
		m.alerted[g.key] = struct{}{}
		alerts = append(alerts, a)
	}
	return alerts
}

type budgetGroup struct {
	key   string
	name  string
	limit decimal.Decimal
	spent decimal.Decimal
	seen  map[string]struct{}
}

// groupByKey merges active budgets by AlertKey, keeping first-seen order.
func groupByKey(now time.Time, budgets []*Budget) []*budgetGroup {
	var (
		groups []*budgetGroup
		byKey  = make(map[string]*budgetGroup)
	)
	for _, b := range budgets {
		if !b.Frequency.Contains(now, b.StartDate) {
			continue
		}
		key := b.AlertKey()
		g, ok := byKey[key]
		if !ok {
			g = &budgetGroup{
				key:   key,
				name:  b.AlertName(),
				limit: decimal.Zero,
				spent: decimal.Zero,
				seen:  make(map[string]struct{}),
			}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.limit = g.limit.Add(b.Limit)
		for _, r := range b.expenses {
			if r.Category != b.Category || !b.Frequency.Contains(now, r.Date) {
				continue
			}
			if r.ID != "" {
				if _, dup := g.seen[r.ID]; dup {
					continue
				}
				g.seen[r.ID] = struct{}{}
			}
			g.spent = g.spent.Add(r.Amount)
		}
	}
	return groups
}

// Reset forgets all raised alerts.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.alerted = make(map[string]struct{})
}
