package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryHotel, ParseCategory("hotel"))
	assert.Equal(t, CategoryMiscellaneous, ParseCategory(" MISCELLANEOUS "))
	assert.Equal(t, Category("Gifts"), ParseCategory("Gifts"))
	assert.True(t, CategoryMileage.Known())
	assert.False(t, Category("Gifts").Known())
	assert.Len(t, Categories(), 8)
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2025-04-03")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.April, d.Month())
	assert.Equal(t, "2025-04-03", d.String())

	d, err = ParseDate("2025-03-31T09:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-31", d.String())

	_, err = ParseDate("31/03/2025")
	assert.Error(t, err)

	assert.Equal(t, "", Date{}.String())
}

func TestDate_InPeriod(t *testing.T) {
	d := NewDate(2025, time.April, 9)
	assert.True(t, d.InPeriod(3, 2025))
	assert.False(t, d.InPeriod(4, 2025))
	assert.False(t, d.InPeriod(3, 2024))
}

func TestExpense_YAMLRoundTrip(t *testing.T) {
	distance := decimal.NewFromInt(120)
	in := Expense{
		ID:        "r8",
		SubjectID: "u4",
		Merchant:  "VISITA CLIENTE",
		Date:      NewDate(2025, time.April, 10),
		Total:     decimal.Zero,
		Category:  CategoryMileage,
		Status:    StatusApproved,
		Distance:  &distance,
	}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2025-04-10")

	var out Expense
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in.Date, out.Date)
	assert.True(t, out.DistanceOrZero().Equal(distance))
	assert.Equal(t, CategoryMileage, out.Category)
}

func TestExpense_Validate(t *testing.T) {
	valid := Expense{SubjectID: "u1", Date: NewDate(2023, time.October, 15), Category: CategoryRestaurant}
	assert.NoError(t, valid.Validate())

	noSubject := valid
	noSubject.SubjectID = ""
	assert.ErrorIs(t, noSubject.Validate(), ErrEmptySubject)

	noDate := valid
	noDate.Date = Date{}
	assert.ErrorIs(t, noDate.Validate(), ErrZeroDate)

	badStatus := valid
	badStatus.Status = "archived"
	assert.ErrorIs(t, badStatus.Validate(), ErrInvalidStatus)
}
