package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"trackexpense/internal/report"

	"github.com/gocarina/gocsv"
)

// CSVWriter renders a document as delimited text, one record per row. Rows keep
// their natural width and numbers are written in plain decimal notation.
type CSVWriter struct {
	delimiter rune
}

// NewCSVWriter creates a CSVWriter. A zero delimiter means a comma.
func NewCSVWriter(delimiter rune) *CSVWriter {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVWriter{delimiter: delimiter}
}

// Extension returns "csv".
func (c *CSVWriter) Extension() string { return "csv" }

// Write encodes doc.
func (c *CSVWriter) Write(w io.Writer, doc report.Document) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = c.delimiter
	safe := gocsv.NewSafeCSVWriter(csvWriter)

	for i, row := range doc.Rows {
		record := make([]string, len(row))
		for j, cell := range row {
			record[j] = cell.String()
		}
		if err := safe.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	safe.Flush()
	if err := safe.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
