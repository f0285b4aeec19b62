package model

import "strings"

// Category is one of the fixed set of transaction categories. The extraction
// prompt enumerates exactly this set, so any value outside it means the model
// went off-script and must be coerced.
type Category string

const (
	// CategoryFood covers meals, groceries, and drinks.
	CategoryFood Category = "Food"
	// CategoryTransport covers rides, fuel, parking, and transit.
	CategoryTransport Category = "Transport"
	// CategoryShopping covers retail purchases.
	CategoryShopping Category = "Shopping"
	// CategoryBills covers recurring charges and one-off invoices.
	CategoryBills Category = "Bills"
	// CategoryUtility covers electricity, water, and telco services.
	CategoryUtility Category = "Utility"
	// CategoryIncome represents money in; the only category with a positive sign.
	CategoryIncome Category = "Income"
	// CategoryOther is the catch-all for anything unrecognized.
	CategoryOther Category = "Other"
)

// Categories returns every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryBills,
		CategoryUtility,
		CategoryIncome,
		CategoryOther,
	}
}

// ParseCategory coerces an arbitrary string to a valid category. Unknown
// values map to CategoryOther; the second return reports whether the input
// matched the enumeration. Matching is case-insensitive because models are
// inconsistent about casing even when told not to be.
func ParseCategory(s string) (Category, bool) {
	trimmed := strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(trimmed, string(c)) {
			return c, true
		}
	}
	return CategoryOther, false
}

// IsIncome reports whether the category carries a positive amount sign.
func (c Category) IsIncome() bool {
	return c == CategoryIncome
}
