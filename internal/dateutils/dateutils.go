// Package dateutils provides the date parsing and period helpers used by the
// expense stores, the receipt analyzer and the report engine.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date layouts
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutDayFirst = "02/01/2006"
	DateLayoutShort    = "2/1/2006"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// CommonFormats lists the layouts tried by ParseDate, in order. Day-first
// layouts win over month-first ones since reports are kept in European form.
var CommonFormats = []string{
	DateLayoutISO,
	time.RFC3339,
	DateLayoutFull,
	DateLayoutDayFirst,
	DateLayoutShort,
	DateLayoutEuropean,
	"2.1.2006",
	"02-01-2006",
	"2006/01/02",
	"2 January 2006",
	"January 2, 2006",
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using CommonFormats.
// Returns the parsed time and the detected format.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString trims and collapses whitespace.
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// PeriodDefaultDate returns the first day of a report period as DD/MM/YYYY.
// month is zero based.
func PeriodDefaultDate(month, year int) string {
	return fmt.Sprintf("01/%02d/%d", month+1, year)
}

// ValidMonth reports whether month is a zero-based calendar month.
func ValidMonth(month int) bool {
	return month >= 0 && month <= 11
}
