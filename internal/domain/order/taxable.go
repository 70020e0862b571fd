package order

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/spendwise/internal/domain/discount"
)

// DefaultTaxRate is the tax percentage of a new TaxableItem.
var DefaultTaxRate = decimal.NewFromInt(7)

// TaxMode selects how TaxableItem combines tax with quantity.
type TaxMode string

const (
	// TaxCompat adds the per-unit tax to the already quantified line total
	// and multiplies by the quantity again, so the discounted part grows
	// with quantity squared. Existing totals depend on it.
	TaxCompat TaxMode = "compat"
	// TaxPerLine adds per-unit tax times quantity to the line total.
	TaxPerLine TaxMode = "per_line"
)

// ErrUnknownTaxMode is returned by ParseTaxMode.
var ErrUnknownTaxMode = errors.New("unknown tax mode")

// ParseTaxMode parses a TaxMode, defaulting to TaxCompat for empty input.
func ParseTaxMode(s string) (TaxMode, error) {
	switch TaxMode(s) {
	case "", TaxCompat:
		return TaxCompat, nil
	case TaxPerLine:
		return TaxPerLine, nil
	default:
		return "", errors.Wrapf(ErrUnknownTaxMode, "%q", s)
	}
}

var hundred = decimal.NewFromInt(100)

// TaxableItem is an order line that carries a tax percentage. Tax is
// computed on the original unit price, before discount.
type TaxableItem struct {
	LineItem
	taxRate decimal.Decimal
	mode    TaxMode
}

// NewTaxableItem creates a TaxableItem with DefaultTaxRate in TaxCompat mode.
func NewTaxableItem(name string, unitPrice decimal.Decimal, quantity int, d discount.Discount) *TaxableItem {
	return &TaxableItem{
		LineItem: *NewItem(name, unitPrice, quantity, d),
		taxRate:  DefaultTaxRate,
		mode:     TaxCompat,
	}
}

// TaxRate returns the tax percentage, e.g. 7 for seven percent.
func (i *TaxableItem) TaxRate() decimal.Decimal { return i.taxRate }

// SetTaxRate sets the tax percentage. Negative rates are ignored and
// reported by returning false; the previous rate is kept.
func (i *TaxableItem) SetTaxRate(rate decimal.Decimal) bool {
	if rate.IsNegative() {
		return false
	}
	i.taxRate = rate
	return true
}

// TaxMode returns the item's tax mode.
func (i *TaxableItem) TaxMode() TaxMode { return i.mode }

// SetTaxMode switches the tax mode. Unknown modes fall back to TaxCompat.
func (i *TaxableItem) SetTaxMode(mode TaxMode) {
	if mode != TaxPerLine {
		mode = TaxCompat
	}
	i.mode = mode
}

// Tax returns the tax on a single unit at the original price.
func (i *TaxableItem) Tax() decimal.Decimal {
	return i.unitPrice.Mul(i.taxRate.Div(hundred))
}

// FinalPrice returns the line total including tax according to the
// item's TaxMode.
func (i *TaxableItem) FinalPrice() decimal.Decimal {
	base := i.LineItem.FinalPrice()
	qty := decimal.NewFromInt(int64(i.quantity))

	if i.mode == TaxPerLine {
		return base.Add(i.Tax().Mul(qty))
	}
	return base.Add(i.Tax()).Mul(qty)
}
