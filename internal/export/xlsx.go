package export

import (
	"fmt"
	"io"

	"trackexpense/internal/report"

	"github.com/xuri/excelize/v2"
)

// currencyNumFmt is the built-in "#,##0.00" number format.
const currencyNumFmt = 4

// XLSXWriter renders a document as a single-sheet workbook.
type XLSXWriter struct{}

// NewXLSXWriter creates an XLSXWriter.
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

// Extension returns "xlsx".
func (x *XLSXWriter) Extension() string { return "xlsx" }

// Write encodes doc as a workbook. Numeric cells are stored as numbers, with
// currency cells using a two decimal number format.
func (x *XLSXWriter) Write(w io.Writer, doc report.Document) error {
	f, err := x.Build(doc)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Build creates the in-memory workbook for doc. The caller closes it.
func (x *XLSXWriter) Build(doc report.Document) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := doc.SheetName
	if sheet == "" {
		sheet = report.SheetName
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	currency, err := f.NewStyle(&excelize.Style{NumFmt: currencyNumFmt})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create currency style: %w", err)
	}

	for i, row := range doc.Rows {
		if err := writeRow(f, sheet, i+1, row, currency); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	for i, width := range doc.ColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to set width of column %s: %w", col, err)
		}
	}
	return f, nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, row []report.Cell, currency int) error {
	if len(row) == 0 {
		return nil
	}
	values := make([]interface{}, len(row))
	for i, c := range row {
		if c.IsNumber() {
			values[i] = c.Value.InexactFloat64()
		} else {
			values[i] = c.Text
		}
	}

	start, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, start, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}

	for i, c := range row {
		if !c.IsNumber() || c.Style != report.StyleCurrency {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, currency); err != nil {
			return fmt.Errorf("failed to style cell %s: %w", cell, err)
		}
	}
	return nil
}
