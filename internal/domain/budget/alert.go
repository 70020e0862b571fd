// Package budget classifies spending against budget limits and produces
// the alerts shown to the user.
package budget

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	hundred  = decimal.NewFromInt(100)
	maxInt32 = decimal.NewFromInt(math.MaxInt32)
	minInt32 = decimal.NewFromInt(math.MinInt32)
)

// DefaultThreshold is the fraction of a limit at which spending counts as
// near the limit.
var DefaultThreshold = decimal.RequireFromString("0.85")

// Status is the classification of spending against a limit.
type Status int

const (
	StatusOK Status = iota
	StatusNearLimit
	StatusExceeded
)

func (s Status) String() string {
	switch s {
	case StatusNearLimit:
		return "near_limit"
	case StatusExceeded:
		return "exceeded"
	default:
		return "ok"
	}
}

// IsNearLimit reports whether spent has reached threshold*limit while
// staying strictly below limit. A non-positive limit is never near.
func IsNearLimit(spent, limit, threshold decimal.Decimal) bool {
	if !limit.IsPositive() {
		return false
	}
	return spent.GreaterThanOrEqual(limit.Mul(threshold)) && spent.LessThan(limit)
}

// IsExceeded reports whether spent has reached limit. With a non-positive
// limit any positive spending counts as exceeded.
func IsExceeded(spent, limit decimal.Decimal) bool {
	if !limit.IsPositive() {
		return spent.IsPositive()
	}
	return spent.GreaterThanOrEqual(limit)
}

// Classify returns StatusExceeded, StatusNearLimit or StatusOK, checking
// in that order. The two non-OK states never overlap.
func Classify(spent, limit, threshold decimal.Decimal) Status {
	switch {
	case IsExceeded(spent, limit):
		return StatusExceeded
	case IsNearLimit(spent, limit, threshold):
		return StatusNearLimit
	default:
		return StatusOK
	}
}

// NearLimitMessage formats the warning for a budget close to its limit.
// The percentage is truncated, not rounded.
func NearLimitMessage(name string, spent, limit decimal.Decimal) string {
	return fmt.Sprintf("You've reached %d%% of your %s budget ($%s / $%s)",
		percentOf(spent, limit), name, spent.StringFixed(2), limit.StringFixed(2))
}

// ExceededMessage formats the warning for a budget over its limit.
func ExceededMessage(name string, spent, limit decimal.Decimal) string {
	return fmt.Sprintf("You've exceeded your %s budget! ($%s / $%s)",
		name, spent.StringFixed(2), limit.StringFixed(2))
}

// percentOf returns spent/limit*100 truncated toward zero and saturated
// to the int32 range. A zero limit saturates by the sign of spent.
func percentOf(spent, limit decimal.Decimal) int64 {
	if limit.IsZero() {
		switch spent.Sign() {
		case 1:
			return math.MaxInt32
		case -1:
			return math.MinInt32
		default:
			return 0
		}
	}
	// QuoRem truncates toward zero without intermediate rounding.
	pct, _ := spent.Mul(hundred).QuoRem(limit, 0)
	switch {
	case pct.GreaterThan(maxInt32):
		return math.MaxInt32
	case pct.LessThan(minInt32):
		return math.MinInt32
	}
	return pct.IntPart()
}

// Alert is a budget warning ready for display.
type Alert struct {
	Key     string
	Budget  string
	Status  Status
	Message string
}

// Evaluate classifies spending for the named budget and renders the
// matching message. OK results carry an empty message.
func Evaluate(name string, spent, limit, threshold decimal.Decimal) Alert {
	a := Alert{
		Key:    name,
		Budget: name,
		Status: Classify(spent, limit, threshold),
	}
	switch a.Status {
	case StatusExceeded:
		a.Message = ExceededMessage(name, spent, limit)
	case StatusNearLimit:
		a.Message = NearLimitMessage(name, spent, limit)
	}
	return a
}
