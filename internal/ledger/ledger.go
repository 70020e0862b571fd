// Package ledger loads orders, budgets and expenses from YAML files.
package ledger

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DateLayout is the layout of dates in ledger files.
const DateLayout = "2006-01-02"

// Document is the on-disk ledger.
type Document struct {
	Orders   []Order   `yaml:"orders"`
	Budgets  []Budget  `yaml:"budgets"`
	Expenses []Expense `yaml:"expenses"`
}

// Order is a customer order entry.
type Order struct {
	Customer string `yaml:"customer"`
	Email    string `yaml:"email"`
	Items    []Item `yaml:"items"`
}

// Item is an order line entry. Kind is one of "item" (default),
// "taxable" or "gift_card".
type Item struct {
	Name     string    `yaml:"name"`
	Kind     string    `yaml:"kind"`
	Price    Amount    `yaml:"price"`
	Quantity *int      `yaml:"quantity"`
	TaxRate  *Amount   `yaml:"tax_rate"`
	Discount *Discount `yaml:"discount"`
}

// Discount is a per-unit discount entry.
type Discount struct {
	Kind  string `yaml:"kind"`
	Value Amount `yaml:"value"`
}

// Budget is a budget entry.
type Budget struct {
	Name      string `yaml:"name"`
	Category  string `yaml:"category"`
	Limit     Amount `yaml:"limit"`
	Frequency string `yaml:"frequency"`
	StartDate Date   `yaml:"start_date"`
}

// Expense is a spending entry.
type Expense struct {
	Name     string `yaml:"name"`
	Amount   Amount `yaml:"amount"`
	Category string `yaml:"category"`
	Date     Date   `yaml:"date"`
	Notes    string `yaml:"notes"`
}

// Amount is a decimal scalar. Both quoted and bare numbers are accepted.
type Amount struct {
	decimal.Decimal
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Amount) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: amount must be a scalar", n.Line)
	}
	v, err := decimal.NewFromString(n.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d: parse amount %q", n.Line, n.Value)
	}
	a.Decimal = v
	return nil
}

// Date is a calendar date in DateLayout, interpreted in UTC.
type Date struct {
	time.Time
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: date must be a scalar", n.Line)
	}
	t, err := time.Parse(DateLayout, n.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d: parse date %q", n.Line, n.Value)
	}
	d.Time = t
	return nil
}
