package report

import (
	"fmt"
	"regexp"
	"strings"

	"trackexpense/internal/i18n"

	"github.com/shopspring/decimal"
)

// CellKind tells whether a cell holds text or a number.
type CellKind int

// Cell kinds
const (
	CellText CellKind = iota
	CellNumber
)

// CellStyle hints how a numeric cell is rendered.
type CellStyle int

// Cell styles
const (
	StylePlain CellStyle = iota
	StyleCurrency
)

// Cell is one position of a document row.
type Cell struct {
	Kind  CellKind
	Style CellStyle
	Text  string
	Value decimal.Decimal
}

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: CellText, Text: s} }

// Blank returns an empty text cell.
func Blank() Cell { return Text("") }

// Number returns a plain numeric cell, used for distances and the year.
func Number(v decimal.Decimal) Cell { return Cell{Kind: CellNumber, Style: StylePlain, Value: v} }

// Amount returns a currency cell.
func Amount(v decimal.Decimal) Cell { return Cell{Kind: CellNumber, Style: StyleCurrency, Value: v} }

// IsNumber reports whether the cell holds a number.
func (c Cell) IsNumber() bool { return c.Kind == CellNumber }

// String renders the raw cell content without locale formatting.
func (c Cell) String() string {
	if c.IsNumber() {
		return c.Value.String()
	}
	return c.Text
}

func orBlank(v decimal.Decimal, cell func(decimal.Decimal) Cell) Cell {
	if v.IsZero() {
		return Blank()
	}
	return cell(v)
}

// Fixed layout constants of the exported ledger.
const (
	SheetName      = "Expense Report"
	SupplierLabel  = "O, SUMINISTRO :"
	SupplierName   = "CMO VALVES"
	LedgerColumns  = 10
	HeaderRowCount = 4
)

// ColumnWidths are the ledger column widths in character units.
var ColumnWidths = []float64{12, 40, 8, 10, 10, 10, 10, 12, 10, 12}

// Metadata describes the report a document is assembled for.
type Metadata struct {
	SubjectName string
	Month       int // 0-11
	Year        int
	MileageRate decimal.Decimal
	CardLabel   string
}

// Document is the assembled ledger. Each row is positional; short rows are not
// padded to the ledger width.
type Document struct {
	Rows         [][]Cell
	ColumnWidths []float64
	SheetName    string
	// DataStart is the index of the first data row and TotalsRow the index of
	// the column totals row.
	DataStart int
	TotalsRow int
}

// MonthNamer resolves a zero-based month to its localized name.
type MonthNamer interface {
	MonthName(month int) string
}

// Assembler renders grids into documents with an injected formatter.
type Assembler struct {
	formatter i18n.Formatter
}

// NewAssembler creates an Assembler that takes labels from formatter.
func NewAssembler(formatter i18n.Formatter) *Assembler {
	return &Assembler{formatter: formatter}
}

func (a *Assembler) monthName(month int) string {
	if namer, ok := a.formatter.(MonthNamer); ok {
		return namer.MonthName(month)
	}
	return a.formatter.Translate(fmt.Sprintf("month.%d", month))
}

// Assemble builds the document for rows and their totals. The same inputs always
// produce the same document and nothing passed in is modified.
func (a *Assembler) Assemble(meta Metadata, rows []Row, totals Totals) Document {
	t := a.formatter.Translate
	out := make([][]Cell, 0, len(rows)+HeaderRowCount+6)

	out = append(out,
		[]Cell{
			Text(t("excel.expensesBy")), Text(strings.ToUpper(meta.SubjectName)), Blank(), Blank(),
			Text(SupplierLabel), Text(SupplierName),
		},
		[]Cell{
			Text(t("excel.monthOf")), Text(strings.ToUpper(a.monthName(meta.Month))), Blank(), Blank(),
			Text(t("excel.year")), Number(decimal.NewFromInt(int64(meta.Year))),
			Text(t("excel.card")), Text(meta.CardLabel),
		},
		[]Cell{},
		[]Cell{
			Text(t("col.day")), Text(t("col.destination")), Text(t("col.km")), Text(t("col.fuel")),
			Text(t("col.parking")), Text(t("col.meals")), Text(t("col.hotels")), Text(t("col.transport")),
			Text(t("col.misc")), Text(t("col.total")),
		},
	)

	dataStart := len(out)
	for _, r := range rows {
		out = append(out, []Cell{
			Text(r.Date),
			Text(r.Destination),
			orBlank(r.Distance, Number),
			orBlank(r.Fuel, Amount),
			orBlank(r.Parking, Amount),
			orBlank(r.Meals, Amount),
			orBlank(r.Hotels, Amount),
			orBlank(r.Transport, Amount),
			orBlank(r.Misc, Amount),
			Amount(r.Total),
		})
	}

	totalsRow := len(out)
	out = append(out,
		[]Cell{
			Text(t("excel.totals")), Blank(),
			orBlank(totals.Distance, Number),
			orBlank(totals.Fuel, Amount),
			orBlank(totals.Parking, Amount),
			Amount(totals.Meals),
			Amount(totals.Hotels),
			Amount(totals.Transport),
			Amount(totals.Misc),
			Amount(totals.Total),
		},
		[]Cell{},
		[]Cell{
			Blank(), Blank(), Number(totals.Distance), Text(MileageLabel(meta.MileageRate)),
			Amount(totals.MileageCost), Blank(), Blank(), Blank(), Text("+"), Amount(totals.Total),
		},
		footerLine(t("excel.totalExpenses"), totals.GrandTotal),
		footerLine(t("excel.advance"), totals.Advance),
		footerLine(t("excel.balance"), totals.Balance),
	)

	widths := make([]float64, len(ColumnWidths))
	copy(widths, ColumnWidths)
	return Document{
		Rows:         out,
		ColumnWidths: widths,
		SheetName:    SheetName,
		DataStart:    dataStart,
		TotalsRow:    totalsRow,
	}
}

func footerLine(label string, value decimal.Decimal) []Cell {
	return []Cell{
		Blank(), Blank(), Blank(), Blank(), Blank(), Blank(), Blank(),
		Text(label), Blank(), Amount(value),
	}
}

// MileageLabel renders the rate caption of the mileage footer line.
func MileageLabel(rate decimal.Decimal) string {
	return fmt.Sprintf("Km. a %s € ==>", rate.String())
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// FileName returns the export file name for a subject and period, for example
// Expense_Report_Aritz_Fernandez_April_2025.xlsx.
func FileName(subjectName, monthName string, year int, ext string) string {
	return fmt.Sprintf("Expense_Report_%s_%s_%d.%s",
		whitespaceRun.ReplaceAllString(subjectName, "_"), monthName, year, strings.TrimPrefix(ext, "."))
}
