package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"trackexpense/internal/currencyutils"
	"trackexpense/internal/logging"
	"trackexpense/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// csvExpense is one line of an import file. Fields are read as text and
// converted afterwards so that errors can name the offending line.
type csvExpense struct {
	ID          string `csv:"id"`
	SubjectID   string `csv:"subject_id"`
	SubjectName string `csv:"subject_name"`
	Merchant    string `csv:"merchant"`
	Date        string `csv:"date"`
	Subtotal    string `csv:"subtotal"`
	Tax         string `csv:"tax"`
	Total       string `csv:"total"`
	Category    string `csv:"category"`
	Status      string `csv:"status"`
	Notes       string `csv:"notes"`
	Distance    string `csv:"distance"`
	ImageURL    string `csv:"image_url"`
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	d, err := currencyutils.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s '%s'", field, raw)
	}
	return d, nil
}

func (r csvExpense) toExpense() (models.Expense, error) {
	e := models.Expense{
		ID:          strings.TrimSpace(r.ID),
		SubjectID:   strings.TrimSpace(r.SubjectID),
		SubjectName: strings.TrimSpace(r.SubjectName),
		Merchant:    strings.TrimSpace(r.Merchant),
		Category:    models.ParseCategory(r.Category),
		Status:      models.Status(strings.ToLower(strings.TrimSpace(r.Status))),
		Notes:       r.Notes,
		ImageURL:    strings.TrimSpace(r.ImageURL),
	}

	date, err := models.ParseDate(strings.TrimSpace(r.Date))
	if err != nil {
		return models.Expense{}, err
	}
	e.Date = date

	if e.Subtotal, err = parseAmount("subtotal", r.Subtotal); err != nil {
		return models.Expense{}, err
	}
	if e.Tax, err = parseAmount("tax", r.Tax); err != nil {
		return models.Expense{}, err
	}
	if e.Total, err = parseAmount("total", r.Total); err != nil {
		return models.Expense{}, err
	}
	if strings.TrimSpace(r.Distance) != "" {
		d, err := parseAmount("distance", r.Distance)
		if err != nil {
			return models.Expense{}, err
		}
		e.Distance = &d
	}
	return e, nil
}

// ReadCSV decodes expense records from delimited text with a header line.
func ReadCSV(r io.Reader, delimiter rune) ([]models.Expense, error) {
	reader := csv.NewReader(r)
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.TrimLeadingSpace = true

	var lines []csvExpense
	if err := gocsv.UnmarshalCSV(reader, &lines); err != nil {
		return nil, fmt.Errorf("error parsing CSV: %w", err)
	}

	out := make([]models.Expense, 0, len(lines))
	for i, line := range lines {
		e, err := line.toExpense()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// ImportCSV reads the file at path and adds every record to s in file order.
// It returns the number of stored records; a failing record stops the import.
func ImportCSV(ctx context.Context, s ExpenseStore, path string, delimiter rune, logger logging.Logger) (int, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	logger.Info("Importing expenses", logging.F(logging.FieldInputFile, path))

	file, err := os.Open(path) // #nosec G304 -- import path is chosen by the operator
	if err != nil {
		return 0, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	expenses, err := ReadCSV(file, delimiter)
	if err != nil {
		return 0, err
	}
	for i, e := range expenses {
		if _, err := s.Add(ctx, e); err != nil {
			return i, fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	logger.Info("Expenses imported", logging.F(logging.FieldCount, len(expenses)))
	return len(expenses), nil
}
