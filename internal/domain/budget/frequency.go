package budget

import (
	"strings"
	"time"

	"github.com/go-faster/errors"
)

// ErrUnknownFrequency is returned by ParseFrequency.
var ErrUnknownFrequency = errors.New("unknown budget frequency")

// Frequency is the period a budget limit resets over.
type Frequency string

const (
	Daily   Frequency = "Daily"
	Weekly  Frequency = "Weekly"
	Monthly Frequency = "Monthly"
	Yearly  Frequency = "Yearly"
)

// ParseFrequency parses a frequency name, ignoring case.
func ParseFrequency(s string) (Frequency, error) {
	for _, f := range []Frequency{Daily, Weekly, Monthly, Yearly} {
		if strings.EqualFold(strings.TrimSpace(s), string(f)) {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFrequency, "%q", s)
}

// Period returns the half-open interval [start, end) of the period that
// contains now. Weeks start on Sunday.
func (f Frequency) Period(now time.Time) (start, end time.Time) {
	y, m, d := now.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch f {
	case Daily:
		return day, day.AddDate(0, 0, 1)
	case Weekly:
		start = day.AddDate(0, 0, -int(day.Weekday()))
		return start, start.AddDate(0, 0, 7)
	case Monthly:
		start = time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0)
	case Yearly:
		start = time.Date(y, time.January, 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(1, 0, 0)
	default:
		return time.Time{}, time.Time{}
	}
}

// Contains reports whether t falls in the period containing now.
// Unknown frequencies contain nothing.
func (f Frequency) Contains(now, t time.Time) bool {
	start, end := f.Period(now)
	if start.IsZero() {
		return false
	}
	t = t.In(now.Location())
	return !t.Before(start) && t.Before(end)
}
