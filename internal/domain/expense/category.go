// Package expense defines spending records and their categories.
package expense

import "strings"

// Category is a closed set of spending categories.
type Category string

const (
	Food          Category = "FOOD"
	Transport     Category = "TRANSPORT"
	Entertainment Category = "ENTERTAINMENT"
	Bills         Category = "BILLS"
	Shopping      Category = "SHOPPING"
	Health        Category = "HEALTH"
	Other         Category = "OTHER"
)

var displayNames = map[Category]string{
	Food:          "Food",
	Transport:     "Transport",
	Entertainment: "Entertainment",
	Bills:         "Bills",
	Shopping:      "Shopping",
	Health:        "Health",
	Other:         "Other",
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{Food, Transport, Entertainment, Bills, Shopping, Health, Other}
}

// DisplayName returns the human readable name, or "Other" for values
// outside the set.
func (c Category) DisplayName() string {
	if n, ok := displayNames[c]; ok {
		return n
	}
	return displayNames[Other]
}

// ParseCategory matches s against category constants and display names,
// ignoring case. Anything unrecognized becomes Other.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, displayNames[c]) {
			return c
		}
	}
	return Other
}
