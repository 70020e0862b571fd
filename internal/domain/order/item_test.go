package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/spendwise/internal/domain/discount"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func flat(v string) discount.Discount    { return discount.FlatAmount{Amount: d(v)} }
func percent(v string) discount.Discount { return discount.Percentage{Rate: d(v)} }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "expected %s, got %s", want, got)
}

func TestLineItem_FinalPrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
		qty   int
		disc  discount.Discount
		want  string
	}{
		{name: "book with $5 off", price: "20", qty: 1, disc: flat("5"), want: "15"},
		{name: "quantity multiplies discounted price", price: "20", qty: 3, disc: flat("5"), want: "45"},
		{name: "percentage", price: "19.99", qty: 2, disc: percent("0.5"), want: "19.99"},
		{name: "nil discount", price: "3.50", qty: 4, disc: nil, want: "14"},
		{name: "negative unit price propagates", price: "5", qty: 2, disc: flat("8"), want: "-6"},
		{name: "zero quantity", price: "5", qty: 0, disc: flat("1"), want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := NewItem("x", d(tt.price), tt.qty, tt.disc)
			assertDecimal(t, tt.want, it.FinalPrice())
			assert.False(t, it.IsGiftCard())
		})
	}
}

func TestLineItem_MatchesDiscountTimesQuantity(t *testing.T) {
	discounts := []discount.Discount{flat("0"), flat("2.5"), flat("100"), percent("0"), percent("0.15"), percent("1")}
	prices := []string{"0", "0.01", "9.99", "20", "1234.56"}

	for _, disc := range discounts {
		for _, p := range prices {
			for qty := 1; qty <= 5; qty++ {
				it := NewItem("x", d(p), qty, disc)
				want := disc.Apply(d(p)).Mul(decimal.NewFromInt(int64(qty)))
				assert.True(t, want.Equal(it.FinalPrice()), "price %s qty %d", p, qty)
			}
		}
	}
}

func TestLineItem_Accessors(t *testing.T) {
	disc := flat("1")
	it := NewItem("Pen", d("2.25"), 4, disc)

	assert.Equal(t, "Pen", it.Name())
	assertDecimal(t, "2.25", it.UnitPrice())
	assert.Equal(t, 4, it.Quantity())
	assert.Equal(t, disc, it.Discount())
}

func TestTaxableItem_FinalPrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
		qty   int
		disc  discount.Discount
		rate  string
		mode  TaxMode
		want  string
	}{
		{
			name: "laptop 10% off with 7% tax", price: "1000", qty: 1, disc: percent("0.1"),
			// 900 + 70
			want: "970",
		},
		{
			name: "compat mode squares the discounted part", price: "10", qty: 2, disc: flat("0"),
			// (10*2 + 0.7) * 2
			want: "41.4",
		},
		{
			name: "compat mode with three units", price: "100", qty: 3, disc: flat("10"),
			// (90*3 + 7) * 3
			want: "831",
		},
		{
			name: "per line mode", price: "10", qty: 2, disc: flat("0"), mode: TaxPerLine,
			// 10*2 + 0.7*2
			want: "21.4",
		},
		{
			name: "zero tax rate equals base price when qty is one", price: "50", qty: 1, disc: flat("5"), rate: "0",
			want: "45",
		},
		{
			name: "tax uses the undiscounted price", price: "100", qty: 1, disc: percent("1"), rate: "10",
			want: "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := NewTaxableItem("x", d(tt.price), tt.qty, tt.disc)
			if tt.rate != "" {
				require.True(t, it.SetTaxRate(d(tt.rate)))
			}
			if tt.mode != "" {
				it.SetTaxMode(tt.mode)
			}
			assertDecimal(t, tt.want, it.FinalPrice())
			assert.False(t, it.IsGiftCard())
		})
	}
}

func TestTaxableItem_SetTaxRate(t *testing.T) {
	it := NewTaxableItem("Laptop", d("1000"), 1, nil)
	assertDecimal(t, "7", it.TaxRate())

	assert.True(t, it.SetTaxRate(d("8.25")))
	assertDecimal(t, "8.25", it.TaxRate())

	assert.False(t, it.SetTaxRate(d("-1")))
	assertDecimal(t, "8.25", it.TaxRate())

	assert.True(t, it.SetTaxRate(decimal.Zero))
	assertDecimal(t, "0", it.TaxRate())
}

func TestTaxableItem_SetTaxMode(t *testing.T) {
	it := NewTaxableItem("x", d("1"), 1, nil)
	assert.Equal(t, TaxCompat, it.TaxMode())

	it.SetTaxMode(TaxPerLine)
	assert.Equal(t, TaxPerLine, it.TaxMode())

	it.SetTaxMode(TaxMode("bogus"))
	assert.Equal(t, TaxCompat, it.TaxMode())
}

func TestParseTaxMode(t *testing.T) {
	m, err := ParseTaxMode("")
	require.NoError(t, err)
	assert.Equal(t, TaxCompat, m)

	m, err = ParseTaxMode("per_line")
	require.NoError(t, err)
	assert.Equal(t, TaxPerLine, m)

	_, err = ParseTaxMode("exclusive")
	require.ErrorIs(t, err, ErrUnknownTaxMode)
}

func TestGiftCardItem(t *testing.T) {
	it := NewGiftCardItem("Gift Card", d("10"), 2, flat("1"))

	assert.True(t, it.IsGiftCard())
	assertDecimal(t, "18", it.FinalPrice())
	assert.Equal(t, "Gift Card", it.Name())
}
