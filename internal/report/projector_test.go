package report

import (
	"testing"
	"time"

	"trackexpense/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjector_Project(t *testing.T) {
	p := NewProjector(nil)

	tests := []struct {
		name     string
		expense  models.Expense
		column   Column
		distance string
	}{
		{"restaurant", expense("r1", "u4", 3, models.CategoryRestaurant, "43.69"), ColumnMeals, "0"},
		{"parking", expense("r2", "u4", 4, models.CategoryParking, "3.45"), ColumnParking, "0"},
		{"supplies", expense("r3", "u4", 5, models.CategorySupplies, "12.10"), ColumnMisc, "0"},
		{"unknown category", expense("r4", "u4", 6, models.Category("Gifts"), "9.99"), ColumnMisc, "0"},
		{"mileage", mileage("r5", "u4", 7, "120"), ColumnNone, "120"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := p.Project(tt.expense)

			assert.Equal(t, tt.expense.ID, row.ID)
			assert.Equal(t, tt.expense.Merchant, row.Destination)
			assert.Equal(t, tt.expense.Date.Format(models.DateLayout), row.Date)
			assert.False(t, row.Manual)
			assertDecimal(t, tt.distance, row.Distance)
			assertDecimal(t, tt.expense.Total.String(), row.Total)

			for _, col := range []Column{ColumnFuel, ColumnParking, ColumnMeals, ColumnHotels, ColumnTransport, ColumnMisc} {
				if col == tt.column {
					assertDecimal(t, tt.expense.Total.String(), *row.cell(col), "column %s", col)
				} else {
					assert.True(t, row.cell(col).IsZero(), "column %s should be zero", col)
				}
			}
		})
	}
}

func TestProjector_DistanceIgnoredOutsideMileage(t *testing.T) {
	e := expense("f1", "u4", 2, models.CategoryFuel, "50")
	d := dec("300")
	e.Distance = &d

	row := NewProjector(nil).Project(e)
	assert.True(t, row.Distance.IsZero())
	assertDecimal(t, "50", row.Fuel)
}

func TestProjector_DateFormatter(t *testing.T) {
	p := NewProjector(func(t time.Time) string { return t.Format("02/01/2006") })
	row := p.Project(expense("r1", "u4", 9, models.CategoryHotel, "80"))
	assert.Equal(t, "09/04/2025", row.Date)
}

func TestProjector_ProjectAll(t *testing.T) {
	rows := NewProjector(nil).ProjectAll([]models.Expense{
		expense("a", "u4", 1, models.CategoryRestaurant, "1"),
		expense("b", "u4", 2, models.CategoryHotel, "2"),
	})
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].ID)
	assert.Equal(t, "b", rows[1].ID)

	assert.Empty(t, NewProjector(nil).ProjectAll(nil))
}
