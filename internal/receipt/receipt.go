// Package receipt extracts initial expense values from receipt images. Its
// results only prefill new expense records; they never touch a report grid.
package receipt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"trackexpense/internal/dateutils"
	"trackexpense/internal/logging"
	"trackexpense/internal/models"

	"github.com/shopspring/decimal"
)

// ErrEmptyResponse is returned when the model produced no usable text.
var ErrEmptyResponse = errors.New("no response from receipt analyzer")

// Analysis holds the values read from a receipt.
type Analysis struct {
	Merchant string          `json:"merchant"`
	Date     string          `json:"date"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	Category string          `json:"category"`
}

// Analyzer reads a receipt image.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType string) (Analysis, error)
}

// Fallback is the analysis used when a receipt cannot be read: no merchant,
// today's date, zero amounts and the Miscellaneous category.
func Fallback(now time.Time) Analysis {
	return Analysis{
		Date:     now.UTC().Format(models.DateLayout),
		Subtotal: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.Zero,
		Category: string(models.CategoryMiscellaneous),
	}
}

// AnalyzeOrDefault runs a and returns Fallback on any failure, so prefilling
// never blocks creating an expense. A nil analyzer also yields the fallback.
func AnalyzeOrDefault(ctx context.Context, a Analyzer, image []byte, mimeType string, now time.Time, logger logging.Logger) Analysis {
	if logger == nil {
		logger = logging.Nop()
	}
	if a == nil {
		return Fallback(now)
	}
	result, err := a.Analyze(ctx, image, mimeType)
	if err != nil {
		logger.WithError(err).Warn("Receipt analysis failed, using defaults")
		return Fallback(now)
	}
	return result
}

// ParseResponse decodes the JSON object in a model reply. Markdown code fences
// and text around the object are ignored.
func ParseResponse(text string) (Analysis, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return Analysis{}, fmt.Errorf("%w: no JSON object in reply", ErrEmptyResponse)
	}

	var a Analysis
	if err := json.Unmarshal([]byte(text[start:end+1]), &a); err != nil {
		return Analysis{}, fmt.Errorf("failed to decode receipt analysis: %w", err)
	}
	a.Merchant = strings.TrimSpace(a.Merchant)
	a.Date = strings.TrimSpace(a.Date)
	if a.Category == "" {
		a.Category = string(models.CategoryMiscellaneous)
	}
	return a, nil
}

// Expense builds a new record for subjectID from the analysis. Dates in other
// common layouts are accepted; an unreadable date falls back to now.
func (a Analysis) Expense(subjectID string, now time.Time) models.Expense {
	date, err := models.ParseDate(a.Date)
	if err != nil {
		date = models.NewDate(now.Year(), now.Month(), now.Day())
		if t, _, perr := dateutils.ParseDate(a.Date); perr == nil {
			date = models.NewDate(t.Year(), t.Month(), t.Day())
		}
	}
	return models.Expense{
		SubjectID: subjectID,
		Merchant:  a.Merchant,
		Date:      date,
		Subtotal:  a.Subtotal,
		Tax:       a.Tax,
		Total:     a.Total,
		Category:  models.ParseCategory(a.Category),
	}
}

// DetectMIMEType guesses an image type from the file name, then the content.
func DetectMIMEType(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".heic":
		return "image/heic"
	}
	return http.DetectContentType(data)
}
