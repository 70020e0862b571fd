// Package order prices customer orders: items with per-unit discounts,
// taxable and gift card variants, and the order-level gift card and bulk
// discount rules.
package order

import (
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Policy holds the order-level pricing rules.
type Policy struct {
	// GiftCardDiscount is subtracted once when the order has any gift card line.
	GiftCardDiscount decimal.Decimal
	// BulkThreshold is the subtotal above which BulkRate applies.
	BulkThreshold decimal.Decimal
	// BulkRate multiplies the whole subtotal, e.g. 0.9 for ten percent off.
	BulkRate decimal.Decimal
}

// DefaultPolicy returns a $10 gift card discount and 10% off subtotals
// above $100.
func DefaultPolicy() Policy {
	return Policy{
		GiftCardDiscount: decimal.NewFromInt(10),
		BulkThreshold:    decimal.NewFromInt(100),
		BulkRate:         decimal.RequireFromString("0.9"),
	}
}

// Validate reports configuration mistakes. Pricing itself never fails.
func (p Policy) Validate() error {
	if p.GiftCardDiscount.IsNegative() {
		return errors.New("gift card discount must not be negative")
	}
	if p.BulkThreshold.IsNegative() {
		return errors.New("bulk threshold must not be negative")
	}
	if p.BulkRate.IsNegative() || p.BulkRate.GreaterThan(decimal.NewFromInt(1)) {
		return errors.Errorf("bulk rate %s must be within [0, 1]", p.BulkRate)
	}
	return nil
}

// Breakdown holds the intermediate values of an order total.
type Breakdown struct {
	ItemsTotal       decimal.Decimal
	GiftCardDiscount decimal.Decimal
	Subtotal         decimal.Decimal
	BulkDiscount     decimal.Decimal
	Total            decimal.Decimal
}

// Order is a customer's list of items. Totals are derived from the
// current items on every call.
type Order struct {
	ID            string
	CustomerName  string
	CustomerEmail string

	items  []Item
	policy Policy
}

// New creates an order priced with DefaultPolicy.
func New(customerName, customerEmail string, items ...Item) *Order {
	return NewWithPolicy(DefaultPolicy(), customerName, customerEmail, items...)
}

// NewWithPolicy creates an order priced with the given policy.
func NewWithPolicy(p Policy, customerName, customerEmail string, items ...Item) *Order {
	return &Order{
		ID:            uuid.New().String(),
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		items:         append([]Item(nil), items...),
		policy:        p,
	}
}

// Policy returns the pricing rules of the order.
func (o *Order) Policy() Policy { return o.policy }

// Items returns a copy of the order lines in insertion order.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Len returns the number of order lines.
func (o *Order) Len() int { return len(o.items) }

// AddItem appends an order line.
func (o *Order) AddItem(item Item) {
	o.items = append(o.items, item)
}

// RemoveItem removes the first occurrence of item. It reports whether
// anything was removed; removing an absent item is a no-op.
func (o *Order) RemoveItem(item Item) bool {
	for i, it := range o.items {
		if it == item {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return true
		}
	}
	return false
}

// AddItemsFromAnotherOrder appends all lines of other. The other order is
// left unchanged and duplicates are kept.
func (o *Order) AddItemsFromAnotherOrder(other *Order) {
	if other == nil {
		return
	}
	o.items = append(o.items, other.items...)
}

// HasGiftCard reports whether any line is a gift card.
func (o *Order) HasGiftCard() bool {
	for _, it := range o.items {
		if it.IsGiftCard() {
			return true
		}
	}
	return false
}

// TotalPrice returns the amount payable. The result is not floored, so
// heavily discounted orders may come out negative.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.Breakdown().Total
}

// Breakdown computes the order total step by step: item totals, minus
// the gift card discount (at most once), then the bulk rate on the whole
// subtotal when it exceeds the threshold.
func (o *Order) Breakdown() Breakdown {
	var b Breakdown

	b.ItemsTotal = decimal.Zero
	for _, it := range o.items {
		b.ItemsTotal = b.ItemsTotal.Add(it.FinalPrice())
	}

	b.GiftCardDiscount = decimal.Zero
	if o.HasGiftCard() {
		b.GiftCardDiscount = o.policy.GiftCardDiscount
	}
	b.Subtotal = b.ItemsTotal.Sub(b.GiftCardDiscount)

	b.Total = b.Subtotal
	if b.Subtotal.GreaterThan(o.policy.BulkThreshold) {
		b.Total = b.Subtotal.Mul(o.policy.BulkRate)
	}
	b.BulkDiscount = b.Subtotal.Sub(b.Total)

	return b
}
