package ledger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/spendwise/internal/domain/budget"
	"github.com/xenking/spendwise/internal/domain/expense"
	"github.com/xenking/spendwise/internal/domain/order"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestLoad_Demo(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)
	require.Len(t, doc.Orders, 2)
	require.Len(t, doc.Budgets, 2)
	require.Len(t, doc.Expenses, 3)
	assert.Equal(t, time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC), doc.Budgets[0].StartDate.Time)

	l, err := Build(doc, BuildOptions{})
	require.NoError(t, err)
	require.Len(t, l.Orders, 2)

	first := l.Orders[0]
	assert.Equal(t, "John Doe", first.CustomerName)
	assert.Equal(t, "johndoe@example.com", first.CustomerEmail)
	assert.True(t, d("886.5").Equal(first.TotalPrice()), "got %s", first.TotalPrice())
	assert.True(t, first.HasGiftCard())

	items := first.Items()
	require.Len(t, items, 3)
	laptop, ok := items[1].(*order.TaxableItem)
	require.True(t, ok)
	assert.True(t, order.DefaultTaxRate.Equal(laptop.TaxRate()))
	assert.Equal(t, 1, laptop.Quantity())

	assert.True(t, d("10").Equal(l.Orders[1].TotalPrice()))

	require.Len(t, l.Budgets, 2)
	food, bills := l.Budgets[0], l.Budgets[1]
	assert.Equal(t, expense.Food, food.Category)
	assert.Equal(t, budget.Weekly, food.Frequency)
	assert.True(t, d("90").Equal(food.TotalSpent()))
	assert.Equal(t, expense.Bills, bills.Category)
	assert.Equal(t, budget.Monthly, bills.Frequency)
	require.Len(t, bills.Expenses(), 1)
	assert.Equal(t, "October bill", bills.Expenses()[0].Notes)
}

func TestLoad_Gzip(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "demo.yaml"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "demo.yaml.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := pgzip.NewWriter(f)
	_, err = gz.Write(raw)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Orders, 2)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_Empty(t *testing.T) {
	doc, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Orders)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "unknown field", in: "orders:\n  - customer: x\n    vip: true\n", want: "vip"},
		{name: "bad amount", in: "orders:\n  - items:\n      - name: x\n        price: ten\n", want: "parse amount"},
		{name: "bad date", in: "expenses:\n  - name: x\n    date: 21/10/2025\n", want: "parse date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
		want    string
	}{
		{
			name:    "unknown item kind",
			in:      "orders:\n  - items:\n      - name: x\n        kind: voucher\n",
			wantErr: ErrUnknownItemKind,
			want:    "order 1 item 1",
		},
		{
			name: "missing name",
			in:   "orders:\n  - items:\n      - price: 1\n",
			want: "name is required",
		},
		{
			name: "negative tax rate",
			in:   "orders:\n  - items:\n      - name: x\n        kind: taxable\n        tax_rate: -1\n",
			want: "must not be negative",
		},
		{
			name:    "unknown frequency",
			in:      "budgets:\n  - name: x\n    frequency: hourly\n",
			wantErr: budget.ErrUnknownFrequency,
			want:    "budget 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode(strings.NewReader(tt.in))
			require.NoError(t, err)

			_, err = Build(doc, BuildOptions{})
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuild_Options(t *testing.T) {
	in := `orders:
  - items:
      - name: Widget
        kind: taxable
        price: 10
        quantity: 2
        tax_rate: 10
`
	doc, err := Decode(strings.NewReader(in))
	require.NoError(t, err)

	l, err := Build(doc, BuildOptions{})
	require.NoError(t, err)
	// (20 + 1) * 2
	assert.True(t, d("42").Equal(l.Orders[0].TotalPrice()))

	policy := order.DefaultPolicy()
	policy.BulkThreshold = d("10")
	l, err = Build(doc, BuildOptions{Policy: &policy, TaxMode: order.TaxPerLine})
	require.NoError(t, err)
	// (20 + 2) * 0.9
	assert.True(t, d("19.8").Equal(l.Orders[0].TotalPrice()), "got %s", l.Orders[0].TotalPrice())
}
