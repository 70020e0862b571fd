// Package discount implements unit-price discount strategies.
package discount

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrUnknownKind is returned by Parse for an unsupported discount kind.
var ErrUnknownKind = errors.New("unknown discount kind")

// Discount maps a unit price to a discounted unit price.
//
// Results are not clamped: a discount larger than the price yields a
// negative unit price and callers decide what to do with it.
type Discount interface {
	Apply(price decimal.Decimal) decimal.Decimal
}

// FlatAmount subtracts a fixed amount from the unit price.
type FlatAmount struct {
	Amount decimal.Decimal
}

// Apply returns price - Amount.
func (d FlatAmount) Apply(price decimal.Decimal) decimal.Decimal {
	return price.Sub(d.Amount)
}

// Percentage takes a fraction of the unit price off. Rate is expected in
// [0, 1], e.g. 0.1 for ten percent.
type Percentage struct {
	Rate decimal.Decimal
}

// Apply returns price * (1 - Rate).
func (d Percentage) Apply(price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(1).Sub(d.Rate))
}

// None returns a discount that leaves the price unchanged.
func None() Discount {
	return FlatAmount{Amount: decimal.Zero}
}

// Parse builds a discount from its textual kind, as found in ledger files.
func Parse(kind string, value decimal.Decimal) (Discount, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "none":
		return None(), nil
	case "flat", "amount":
		return FlatAmount{Amount: value}, nil
	case "percentage", "percent":
		return Percentage{Rate: value}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
}
