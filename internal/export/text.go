package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"trackexpense/internal/i18n"
	"trackexpense/internal/report"
)

// TextWriter renders a document as an aligned terminal preview with currency
// cells formatted for the locale.
type TextWriter struct {
	formatter i18n.Formatter
}

// NewTextWriter creates a TextWriter.
func NewTextWriter(formatter i18n.Formatter) *TextWriter {
	return &TextWriter{formatter: formatter}
}

// Extension returns "txt".
func (t *TextWriter) Extension() string { return "txt" }

// Write encodes doc.
func (t *TextWriter) Write(w io.Writer, doc report.Document) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, row := range doc.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = t.render(c)
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t"); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func (t *TextWriter) render(c report.Cell) string {
	if !c.IsNumber() {
		return c.Text
	}
	if c.Style == report.StyleCurrency {
		return t.formatter.FormatCurrency(c.Value)
	}
	return c.Value.String()
}
