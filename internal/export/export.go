// Package export writes assembled report documents to spreadsheet, CSV and
// terminal preview formats.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"trackexpense/internal/i18n"
	"trackexpense/internal/logging"
	"trackexpense/internal/models"
	"trackexpense/internal/report"
	"trackexpense/internal/reporterror"
)

// Format identifies an output format.
type Format string

// Supported formats
const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatText Format = "text"
)

// Formats returns the supported output formats.
func Formats() []Format {
	return []Format{FormatXLSX, FormatCSV, FormatText}
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatXLSX, FormatCSV, FormatText:
		return f, nil
	}
	return "", fmt.Errorf("%w: %s", reporterror.ErrUnsupportedFormat, name)
}

// Writer encodes a document to an output stream.
type Writer interface {
	Write(w io.Writer, doc report.Document) error
	Extension() string
}

// Options configures writer construction.
type Options struct {
	// Delimiter separates CSV fields. Zero means a comma.
	Delimiter rune
	// Formatter renders currency cells of the text preview. Nil means English.
	Formatter i18n.Formatter
}

// NewWriter returns the Writer for format.
func NewWriter(format Format, opts Options) (Writer, error) {
	switch format {
	case FormatXLSX:
		return NewXLSXWriter(), nil
	case FormatCSV:
		return NewCSVWriter(opts.Delimiter), nil
	case FormatText:
		formatter := opts.Formatter
		if formatter == nil {
			formatter = i18n.NewLocale(i18n.English)
		}
		return NewTextWriter(formatter), nil
	default:
		return nil, fmt.Errorf("%w: %s", reporterror.ErrUnsupportedFormat, format)
	}
}

// WriteFile writes doc to path with writer, creating parent directories.
func WriteFile(writer Writer, doc report.Document, path string, logger logging.Logger) (err error) {
	if logger == nil {
		logger = logging.Nop()
	}
	format := strings.TrimPrefix(writer.Extension(), ".")

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return &reporterror.ExportError{Format: format, Path: path, Err: err}
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionReportFile) // #nosec G304 -- output path is chosen by the operator
	if err != nil {
		return &reporterror.ExportError{Format: format, Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &reporterror.ExportError{Format: format, Path: path, Err: cerr}
		}
	}()

	if err := writer.Write(file, doc); err != nil {
		return &reporterror.ExportError{Format: format, Path: path, Err: err}
	}

	logger.Info("Report exported",
		logging.F(logging.FieldFormat, format),
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldCount, len(doc.Rows)))
	return nil
}
