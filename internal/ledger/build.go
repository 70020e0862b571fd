package ledger

import (
	"strings"

	"github.com/go-faster/errors"

	"github.com/xenking/spendwise/internal/domain/budget"
	"github.com/xenking/spendwise/internal/domain/discount"
	"github.com/xenking/spendwise/internal/domain/expense"
	"github.com/xenking/spendwise/internal/domain/order"
)

// ErrUnknownItemKind is returned for order lines with an unsupported kind.
var ErrUnknownItemKind = errors.New("unknown item kind")

// BuildOptions control how ledger entries become domain objects.
type BuildOptions struct {
	// Policy prices every order. Nil selects order.DefaultPolicy.
	Policy  *order.Policy
	TaxMode order.TaxMode
}

// Ledger is a materialized Document.
type Ledger struct {
	Orders  []*order.Order
	Budgets []*budget.Budget
}

// Build converts doc into orders and budgets. Every expense is attached
// to each budget of its category.
func Build(doc *Document, opts BuildOptions) (*Ledger, error) {
	policy := order.DefaultPolicy()
	if opts.Policy != nil {
		policy = *opts.Policy
	}

	l := &Ledger{
		Orders:  make([]*order.Order, 0, len(doc.Orders)),
		Budgets: make([]*budget.Budget, 0, len(doc.Budgets)),
	}

	for i, o := range doc.Orders {
		items := make([]order.Item, 0, len(o.Items))
		for j, it := range o.Items {
			item, err := buildItem(it, opts.TaxMode)
			if err != nil {
				return nil, errors.Wrapf(err, "order %d item %d", i+1, j+1)
			}
			items = append(items, item)
		}
		l.Orders = append(l.Orders, order.NewWithPolicy(policy, o.Customer, o.Email, items...))
	}

	for i, b := range doc.Budgets {
		freq, err := budget.ParseFrequency(b.Frequency)
		if err != nil {
			return nil, errors.Wrapf(err, "budget %d", i+1)
		}
		l.Budgets = append(l.Budgets, budget.New(
			b.Name,
			expense.ParseCategory(b.Category),
			b.Limit.Decimal,
			freq,
			b.StartDate.Time,
		))
	}

	for _, e := range doc.Expenses {
		r := expense.NewRecord(e.Name, e.Amount.Decimal, expense.ParseCategory(e.Category), e.Date.Time, e.Notes)
		for _, b := range l.Budgets {
			if b.Category == r.Category {
				b.AddExpense(r)
			}
		}
	}

	return l, nil
}

func buildItem(it Item, mode order.TaxMode) (order.Item, error) {
	name := strings.TrimSpace(it.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	qty := 1
	if it.Quantity != nil {
		qty = *it.Quantity
	}

	disc := discount.None()
	if it.Discount != nil {
		d, err := discount.Parse(it.Discount.Kind, it.Discount.Value.Decimal)
		if err != nil {
			return nil, err
		}
		disc = d
	}

	price := it.Price.Decimal
	switch strings.ToLower(strings.TrimSpace(it.Kind)) {
	case "", "item":
		return order.NewItem(name, price, qty, disc), nil
	case "gift_card", "giftcard":
		return order.NewGiftCardItem(name, price, qty, disc), nil
	case "taxable":
		ti := order.NewTaxableItem(name, price, qty, disc)
		ti.SetTaxMode(mode)
		if it.TaxRate != nil && !ti.SetTaxRate(it.TaxRate.Decimal) {
			return nil, errors.Errorf("tax rate %s must not be negative", it.TaxRate.Decimal)
		}
		return ti, nil
	default:
		return nil, errors.Wrapf(ErrUnknownItemKind, "%q", it.Kind)
	}
}
