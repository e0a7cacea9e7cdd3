package report

import (
	"testing"
	"time"

	"trackexpense/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), append([]interface{}{"expected %s, got %s", expected, actual.String()}, msgAndArgs...)...)
}

func expense(id, subject string, day int, category models.Category, total string) models.Expense {
	return models.Expense{
		ID:        id,
		SubjectID: subject,
		Merchant:  "Merchant " + id,
		Date:      models.NewDate(2025, time.April, day),
		Total:     dec(total),
		Category:  category,
		Status:    models.StatusSubmitted,
	}
}

func mileage(id, subject string, day int, distance string) models.Expense {
	e := expense(id, subject, day, models.CategoryMileage, "0")
	d := dec(distance)
	e.Distance = &d
	return e
}

func aprilFilter(subject string) Filter {
	return Filter{
		SubjectID:   subject,
		Month:       3,
		Year:        2025,
		MileageRate: dec("0.427"),
		CardLabel:   "CMO Valves",
	}
}
