package report

import (
	"testing"

	"trackexpense/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_EndToEndSums(t *testing.T) {
	rows := NewProjector(nil).ProjectAll([]models.Expense{
		expense("r1", "u4", 3, models.CategoryRestaurant, "43.69"),
		expense("r2", "u4", 4, models.CategoryParking, "3.45"),
		expense("r3", "u4", 9, models.CategoryHotel, "64.58"),
	})

	totals := Compute(rows, dec("0.427"))
	assertDecimal(t, "111.72", totals.Total)
	assertDecimal(t, "43.69", totals.Meals)
	assertDecimal(t, "3.45", totals.Parking)
	assertDecimal(t, "64.58", totals.Hotels)
	assertDecimal(t, "0", totals.MileageCost)
	assertDecimal(t, "111.72", totals.GrandTotal)
	assertDecimal(t, "111.72", totals.Balance)
	assert.Equal(t, "111.72", totals.Total.StringFixed(2))
}

func TestCompute_MileageCost(t *testing.T) {
	rows := NewProjector(nil).ProjectAll([]models.Expense{mileage("m1", "u4", 2, "120")})

	totals := Compute(rows, dec("0.427"))
	assertDecimal(t, "120", totals.Distance)
	assertDecimal(t, "51.24", totals.MileageCost)
	assertDecimal(t, "0", totals.Total)
	assertDecimal(t, "51.24", totals.GrandTotal)
	assertDecimal(t, "51.24", totals.Balance)
}

func TestCompute_Invariants(t *testing.T) {
	g, _ := seededGrid(t)
	require.NoError(t, g.EditCell(0, "fuel", "20.10"))
	require.NoError(t, g.EditCell(2, "distance", "87.5"))
	g.InsertRow("01/04/2025")
	require.NoError(t, g.EditCell(3, "misc", "0.3"))

	for _, rate := range []string{"0", "0.19", "0.427", "1"} {
		t.Run(rate, func(t *testing.T) {
			rows := g.Rows()
			totals := Compute(rows, dec(rate))

			total, distance := decimal.Zero, decimal.Zero
			for _, r := range rows {
				total = total.Add(r.Total)
				distance = distance.Add(r.Distance)
			}
			assert.True(t, totals.Total.Equal(total))
			assert.True(t, totals.Distance.Equal(distance))
			assert.True(t, totals.MileageCost.Equal(distance.Mul(dec(rate))))
			assert.True(t, totals.GrandTotal.Equal(total.Add(totals.MileageCost)))
			assert.True(t, totals.Advance.IsZero())
			assert.True(t, totals.Balance.Equal(totals.GrandTotal))
		})
	}
}

func TestCompute_Empty(t *testing.T) {
	totals := Compute(nil, dec("0.427"))
	assert.True(t, totals.Total.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
	assert.True(t, totals.Balance.IsZero())
}

func TestCompute_FollowsEdits(t *testing.T) {
	g, _ := seededGrid(t)
	before := Compute(g.Rows(), dec("0.427"))

	require.NoError(t, g.EditCell(1, "parking", "abc"))
	after := Compute(g.Rows(), dec("0.427"))

	assertDecimal(t, "3.45", before.Total.Sub(after.Total))
	assertDecimal(t, "0", after.Parking)
}
