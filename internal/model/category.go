package model

import (
	"errors"
	"fmt"
)

// Category classifies an expense.
type Category int

const (
	CategoryHousing Category = iota + 1
	CategoryFood
	CategoryTransportation
	CategoryUtilities
	CategoryEntertainment
	CategoryHealthcare
	CategorySavings
	CategoryDebt
	CategoryOther
)

// ErrUnknownCategory is returned when a label does not name a category.
var ErrUnknownCategory = errors.New("unknown category")

var categoryLabels = map[Category]string{
	CategoryHousing:        "Housing",
	CategoryFood:           "Food",
	CategoryTransportation: "Transportation",
	CategoryUtilities:      "Utilities",
	CategoryEntertainment:  "Entertainment",
	CategoryHealthcare:     "Healthcare",
	CategorySavings:        "Savings",
	CategoryDebt:           "Debt Payment",
	CategoryOther:          "Other",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryHousing,
		CategoryFood,
		CategoryTransportation,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryHealthcare,
		CategorySavings,
		CategoryDebt,
		CategoryOther,
	}
}

// Label returns the human-readable name stored in budget files.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

func (c Category) String() string { return c.Label() }

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory maps a label such as "Debt Payment" back to its Category.
// Matching is exact.
func ParseCategory(label string) (Category, error) {
	for c, l := range categoryLabels {
		if l == label {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, label)
}
