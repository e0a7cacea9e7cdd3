package models

import "strings"

// Category is the expense category recorded on submission. Values outside the
// fixed enumeration are kept verbatim so that legacy data round-trips.
type Category string

// The fixed category enumeration.
const (
	CategoryRestaurant    Category = "Restaurant"
	CategoryHotel         Category = "Hotel"
	CategoryTransport     Category = "Transport"
	CategorySupplies      Category = "Supplies"
	CategoryMiscellaneous Category = "Miscellaneous"
	CategoryFuel          Category = "Fuel"
	CategoryParking       Category = "Parking"
	CategoryMileage       Category = "Mileage"
)

var knownCategories = []Category{
	CategoryRestaurant,
	CategoryHotel,
	CategoryTransport,
	CategorySupplies,
	CategoryMiscellaneous,
	CategoryFuel,
	CategoryParking,
	CategoryMileage,
}

// Categories returns the fixed category enumeration in declaration order.
func Categories() []Category {
	out := make([]Category, len(knownCategories))
	copy(out, knownCategories)
	return out
}

// ParseCategory matches s case-insensitively against the enumeration. Unknown
// values are returned trimmed but otherwise unchanged.
func ParseCategory(s string) Category {
	trimmed := strings.TrimSpace(s)
	for _, c := range knownCategories {
		if strings.EqualFold(trimmed, string(c)) {
			return c
		}
	}
	return Category(trimmed)
}

// Known reports whether c belongs to the fixed enumeration.
func (c Category) Known() bool {
	for _, k := range knownCategories {
		if c == k {
			return true
		}
	}
	return false
}
