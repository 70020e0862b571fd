package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is a single spending entry.
type Record struct {
	ID       string
	Name     string
	Amount   decimal.Decimal
	Category Category
	Date     time.Time
	Notes    string
}

// NewRecord creates a Record with a fresh ID.
func NewRecord(name string, amount decimal.Decimal, category Category, date time.Time, notes string) Record {
	return Record{
		ID:       uuid.New().String(),
		Name:     name,
		Amount:   amount,
		Category: category,
		Date:     date,
		Notes:    notes,
	}
}
