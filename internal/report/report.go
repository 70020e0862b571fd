// Package report renders pricing and budget alert results as JSON.
package report

import (
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/xenking/spendwise/internal/domain/budget"
	"github.com/xenking/spendwise/internal/domain/order"
)

// Report is the result of one pricing and alerting run.
type Report struct {
	Orders []Order
	Alerts []budget.Alert
}

// Order is the priced summary of one order.
type Order struct {
	ID        string
	Customer  string
	Email     string
	Lines     int
	Breakdown order.Breakdown
}

// NewOrder summarizes o.
func NewOrder(o *order.Order) Order {
	return Order{
		ID:        o.ID,
		Customer:  o.CustomerName,
		Email:     o.CustomerEmail,
		Lines:     o.Len(),
		Breakdown: o.Breakdown(),
	}
}

// Encode writes r to e. Amounts are strings with two decimals.
func (r Report) Encode(e *jx.Encoder) {
	e.ObjStart()

	e.FieldStart("orders")
	e.ArrStart()
	for _, o := range r.Orders {
		o.Encode(e)
	}
	e.ArrEnd()

	e.FieldStart("alerts")
	e.ArrStart()
	for _, a := range r.Alerts {
		encodeAlert(e, a)
	}
	e.ArrEnd()

	e.ObjEnd()
}

// Encode writes o to e.
func (o Order) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(o.ID)
	e.FieldStart("customer")
	e.Str(o.Customer)
	e.FieldStart("email")
	e.Str(o.Email)
	e.FieldStart("lines")
	e.Int(o.Lines)
	encodeAmount(e, "items_total", o.Breakdown.ItemsTotal)
	encodeAmount(e, "gift_card_discount", o.Breakdown.GiftCardDiscount)
	encodeAmount(e, "subtotal", o.Breakdown.Subtotal)
	encodeAmount(e, "bulk_discount", o.Breakdown.BulkDiscount)
	encodeAmount(e, "total", o.Breakdown.Total)
	e.ObjEnd()
}

func encodeAlert(e *jx.Encoder, a budget.Alert) {
	e.ObjStart()
	e.FieldStart("key")
	e.Str(a.Key)
	e.FieldStart("budget")
	e.Str(a.Budget)
	e.FieldStart("status")
	e.Str(a.Status.String())
	e.FieldStart("message")
	e.Str(a.Message)
	e.ObjEnd()
}

func encodeAmount(e *jx.Encoder, field string, v decimal.Decimal) {
	e.FieldStart(field)
	e.Str(v.StringFixed(2))
}

// Write encodes r as indented JSON followed by a newline.
func Write(w io.Writer, r Report) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	e.SetIdent(2)

	r.Encode(e)
	out := append(e.Bytes(), '\n')

	if _, err := w.Write(out); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}
