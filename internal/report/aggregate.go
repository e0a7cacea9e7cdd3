package report

import "github.com/shopspring/decimal"

// Totals holds the column sums and the derived footer amounts of a grid.
type Totals struct {
	Distance    decimal.Decimal
	Fuel        decimal.Decimal
	Parking     decimal.Decimal
	Meals       decimal.Decimal
	Hotels      decimal.Decimal
	Transport   decimal.Decimal
	Misc        decimal.Decimal
	Total       decimal.Decimal
	MileageCost decimal.Decimal
	GrandTotal  decimal.Decimal
	Advance     decimal.Decimal
	Balance     decimal.Decimal
}

// Compute folds rows into Totals. It keeps no state, so callers recompute after
// every grid change instead of updating totals incrementally.
func Compute(rows []Row, mileageRate decimal.Decimal) Totals {
	var t Totals
	for _, r := range rows {
		t.Distance = t.Distance.Add(r.Distance)
		t.Fuel = t.Fuel.Add(r.Fuel)
		t.Parking = t.Parking.Add(r.Parking)
		t.Meals = t.Meals.Add(r.Meals)
		t.Hotels = t.Hotels.Add(r.Hotels)
		t.Transport = t.Transport.Add(r.Transport)
		t.Misc = t.Misc.Add(r.Misc)
		t.Total = t.Total.Add(r.Total)
	}
	t.MileageCost = t.Distance.Mul(mileageRate)
	t.GrandTotal = t.Total.Add(t.MileageCost)
	t.Advance = decimal.Zero
	t.Balance = t.GrandTotal.Sub(t.Advance)
	return t
}
