package report

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"trackexpense/internal/dateutils"
	"trackexpense/internal/models"

	"github.com/shopspring/decimal"
)

// Filter selects the subject and period of a report and carries the values the
// footer needs.
type Filter struct {
	SubjectID   string
	Month       int // 0-11
	Year        int
	MileageRate decimal.Decimal
	CardLabel   string
}

// Validate checks the month range, the rate sign and that a subject is set.
func (f Filter) Validate() error {
	if strings.TrimSpace(f.SubjectID) == "" {
		return errors.New("subject id is required")
	}
	if !dateutils.ValidMonth(f.Month) {
		return fmt.Errorf("month must be between 0 and 11, got: %d", f.Month)
	}
	if f.MileageRate.IsNegative() {
		return fmt.Errorf("mileage rate must not be negative, got: %s", f.MileageRate)
	}
	return nil
}

// Equal compares filters field by field, rates by numeric value.
func (f Filter) Equal(other Filter) bool {
	return f.SubjectID == other.SubjectID &&
		f.Month == other.Month &&
		f.Year == other.Year &&
		f.MileageRate.Equal(other.MileageRate) &&
		f.CardLabel == other.CardLabel
}

// Period renders the filter period as YYYY-MM for logging.
func (f Filter) Period() string {
	return fmt.Sprintf("%04d-%02d", f.Year, f.Month+1)
}

// Select returns the subject's records dated in the filter period, ordered by
// date ascending. Records on the same date keep their collection order.
func Select(expenses []models.Expense, f Filter) []models.Expense {
	var selected []models.Expense
	for _, e := range expenses {
		if e.SubjectID == f.SubjectID && e.Date.InPeriod(f.Month, f.Year) {
			selected = append(selected, e)
		}
	}
	slices.SortStableFunc(selected, func(a, b models.Expense) int {
		return a.Date.Compare(b.Date.Time)
	})
	return selected
}
