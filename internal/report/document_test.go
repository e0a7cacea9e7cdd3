package report

import (
	"testing"

	"trackexpense/internal/i18n"
	"trackexpense/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assembleApril(t *testing.T, lang i18n.Language, expenses ...models.Expense) (Document, []Row, Totals) {
	t.Helper()
	locale := i18n.NewLocale(lang)
	rows := NewProjector(locale.FormatDate).ProjectAll(Select(expenses, aprilFilter("u4")))
	totals := Compute(rows, dec("0.427"))
	meta := Metadata{
		SubjectName: "Aritz Fernandez Cortes",
		Month:       3,
		Year:        2025,
		MileageRate: dec("0.427"),
		CardLabel:   "CMO Valves",
	}
	return NewAssembler(locale).Assemble(meta, rows, totals), rows, totals
}

func texts(cells []Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.String()
	}
	return out
}

func TestAssemble_Layout(t *testing.T) {
	doc, rows, _ := assembleApril(t, i18n.English,
		expense("r3", "u4", 9, models.CategoryHotel, "64.58"),
		expense("r1", "u4", 3, models.CategoryRestaurant, "43.69"),
		expense("r2", "u4", 4, models.CategoryParking, "3.45"),
		mileage("m1", "u4", 10, "120"),
	)
	require.Len(t, rows, 4)
	require.Len(t, doc.Rows, 4+len(rows)+6)

	assert.Equal(t, []string{"EXPENSES BY :", "ARITZ FERNANDEZ CORTES", "", "", "O, SUMINISTRO :", "CMO VALVES"}, texts(doc.Rows[0]))
	assert.Equal(t, []string{"MONTH OF :", "APRIL", "", "", "YEAR :", "2025", "CARD :", "CMO Valves"}, texts(doc.Rows[1]))
	assert.True(t, doc.Rows[1][5].IsNumber())
	assert.Empty(t, doc.Rows[2])
	assert.Equal(t, []string{"Day", "Destination", "KM", "Fuel", "Parking", "Meals", "Hotels", "Transport", "Misc", "Total"}, texts(doc.Rows[3]))

	assert.Equal(t, 4, doc.DataStart)
	assert.Equal(t, 8, doc.TotalsRow)
	assert.Equal(t, []string{"03/04/2025", "Merchant r1", "", "", "", "43.69", "", "", "", "43.69"}, texts(doc.Rows[4]))
	assert.Equal(t, []string{"04/04/2025", "Merchant r2", "", "", "3.45", "", "", "", "", "3.45"}, texts(doc.Rows[5]))
	assert.Equal(t, []string{"09/04/2025", "Merchant r3", "", "", "", "", "64.58", "", "", "64.58"}, texts(doc.Rows[6]))
	assert.Equal(t, []string{"10/04/2025", "Merchant m1", "120", "", "", "", "", "", "", "0"}, texts(doc.Rows[7]))

	total := doc.Rows[7][9]
	assert.True(t, total.IsNumber())
	assert.Equal(t, StyleCurrency, total.Style)
	assert.Equal(t, StylePlain, doc.Rows[7][2].Style)

	assert.Equal(t, []string{"TOTALS", "", "120", "", "3.45", "43.69", "64.58", "0", "0", "111.72"}, texts(doc.Rows[8]))
	assert.True(t, doc.Rows[8][7].IsNumber())
	assert.Empty(t, doc.Rows[9])
	assert.Equal(t, []string{"", "", "120", "Km. a 0.427 € ==>", "51.24", "", "", "", "+", "111.72"}, texts(doc.Rows[10]))
	assert.Equal(t, []string{"", "", "", "", "", "", "", "TOTAL EXPENSES :", "", "162.96"}, texts(doc.Rows[11]))
	assert.Equal(t, []string{"", "", "", "", "", "", "", "ADVANCE :", "", "0"}, texts(doc.Rows[12]))
	assert.Equal(t, []string{"", "", "", "", "", "", "", "BALANCE :", "", "162.96"}, texts(doc.Rows[13]))

	assert.Equal(t, []float64{12, 40, 8, 10, 10, 10, 10, 12, 10, 12}, doc.ColumnWidths)
	assert.Equal(t, "Expense Report", doc.SheetName)
}

func TestAssemble_ZeroCellsAreBlankText(t *testing.T) {
	doc, _, _ := assembleApril(t, i18n.English, expense("r1", "u4", 3, models.CategoryRestaurant, "10"))

	data := doc.Rows[doc.DataStart]
	for _, i := range []int{2, 3, 4, 6, 7, 8} {
		assert.False(t, data[i].IsNumber(), "column %d", i)
		assert.Equal(t, "", data[i].Text)
	}

	totals := doc.Rows[doc.TotalsRow]
	for _, i := range []int{2, 3, 4} {
		assert.False(t, totals[i].IsNumber(), "column %d", i)
	}
	for _, i := range []int{5, 6, 7, 8, 9} {
		assert.True(t, totals[i].IsNumber(), "column %d", i)
	}
}

func TestAssemble_EmptyGrid(t *testing.T) {
	doc, _, _ := assembleApril(t, i18n.English)
	require.Len(t, doc.Rows, 10)
	assert.Equal(t, doc.DataStart, doc.TotalsRow)
	assert.Equal(t, "0", doc.Rows[doc.TotalsRow][9].String())
	assert.Equal(t, "0", doc.Rows[len(doc.Rows)-1][9].String())
}

func TestAssemble_Localized(t *testing.T) {
	doc, _, _ := assembleApril(t, i18n.Spanish, expense("r1", "u4", 3, models.CategoryRestaurant, "10"))

	assert.Equal(t, "ABRIL", doc.Rows[1][1].Text)
	assert.Equal(t, "3/4/2025", doc.Rows[doc.DataStart][0].Text)
	assert.Equal(t, "Día", doc.Rows[3][0].Text)
}

func TestAssemble_Deterministic(t *testing.T) {
	expenses := []models.Expense{
		expense("r1", "u4", 3, models.CategoryRestaurant, "43.69"),
		mileage("m1", "u4", 3, "12"),
	}
	first, _, _ := assembleApril(t, i18n.French, expenses...)
	second, _, _ := assembleApril(t, i18n.French, expenses...)
	assert.Equal(t, first, second)
}

func TestMileageLabel(t *testing.T) {
	assert.Equal(t, "Km. a 0.427 € ==>", MileageLabel(dec("0.427")))
	assert.Equal(t, "Km. a 0.19 € ==>", MileageLabel(dec("0.190")))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Expense_Report_Aritz_Fernandez_Cortes_April_2025.xlsx",
		FileName("Aritz Fernandez  Cortes", "April", 2025, "xlsx"))
	assert.Equal(t, "Expense_Report_Unknown_abril_2024.csv", FileName("Unknown", "abril", 2024, ".csv"))
}
