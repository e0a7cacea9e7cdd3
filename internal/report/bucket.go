// Package report implements the report compilation engine: it selects a
// subject's expenses for one month, projects them into an editable grid of
// column-bucketed rows, keeps row and aggregate totals consistent under edits,
// and assembles the fixed-layout ledger document used for spreadsheet export.
package report

import "trackexpense/internal/models"

// Column names one values column of the ledger layout.
type Column string

// Ledger columns. ColumnNone means a category funds no column directly.
const (
	ColumnNone      Column = ""
	ColumnFuel      Column = "fuel"
	ColumnParking   Column = "parking"
	ColumnMeals     Column = "meals"
	ColumnHotels    Column = "hotels"
	ColumnTransport Column = "transport"
	ColumnMisc      Column = "misc"
)

var categoryBuckets = map[models.Category]Column{
	models.CategoryRestaurant:    ColumnMeals,
	models.CategoryHotel:         ColumnHotels,
	models.CategoryTransport:     ColumnTransport,
	models.CategorySupplies:      ColumnMisc,
	models.CategoryMiscellaneous: ColumnMisc,
	models.CategoryFuel:          ColumnFuel,
	models.CategoryParking:       ColumnParking,
	models.CategoryMileage:       ColumnNone,
}

// BucketFor returns the column a category contributes to. Categories outside
// the enumeration land in ColumnMisc.
func BucketFor(category models.Category) Column {
	if col, ok := categoryBuckets[category]; ok {
		return col
	}
	return ColumnMisc
}
