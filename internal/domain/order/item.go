package order

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/spendwise/internal/domain/discount"
)

// Item is a priced order line.
//
// Callers price items through FinalPrice only. IsGiftCard is the one
// variant check the order aggregate relies on.
type Item interface {
	Name() string
	UnitPrice() decimal.Decimal
	Quantity() int
	FinalPrice() decimal.Decimal
	IsGiftCard() bool
}

var (
	_ Item = (*LineItem)(nil)
	_ Item = (*TaxableItem)(nil)
	_ Item = (*GiftCardItem)(nil)
)

// LineItem is a plain order line: a unit price, a quantity and the
// discount applied to each unit.
type LineItem struct {
	name      string
	unitPrice decimal.Decimal
	quantity  int
	discount  discount.Discount
}

// NewItem creates a LineItem. A nil discount is treated as no discount.
func NewItem(name string, unitPrice decimal.Decimal, quantity int, d discount.Discount) *LineItem {
	if d == nil {
		d = discount.None()
	}
	return &LineItem{
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		discount:  d,
	}
}

func (i *LineItem) Name() string                { return i.name }
func (i *LineItem) UnitPrice() decimal.Decimal  { return i.unitPrice }
func (i *LineItem) Quantity() int               { return i.quantity }
func (i *LineItem) Discount() discount.Discount { return i.discount }
func (i *LineItem) IsGiftCard() bool            { return false }

// FinalPrice returns the discounted unit price times the quantity.
func (i *LineItem) FinalPrice() decimal.Decimal {
	return i.discount.Apply(i.unitPrice).Mul(decimal.NewFromInt(int64(i.quantity)))
}

// GiftCardItem is priced like a LineItem. Its presence in an order
// triggers the order-level gift card discount.
type GiftCardItem struct {
	LineItem
}

// NewGiftCardItem creates a gift card line.
func NewGiftCardItem(name string, unitPrice decimal.Decimal, quantity int, d discount.Discount) *GiftCardItem {
	return &GiftCardItem{LineItem: *NewItem(name, unitPrice, quantity, d)}
}

func (i *GiftCardItem) IsGiftCard() bool { return true }
