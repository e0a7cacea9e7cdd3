// Package currencyutils parses the amount notations found in imported files and
// command-line input.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"trackexpense/internal/models"

	"github.com/shopspring/decimal"
)

var noise = regexp.MustCompile(`[€$£'\s\x{00A0}\x{202F}]|EUR`)

// ParseAmount parses an amount written as "1234.56", "1.234,56", "1,234.56",
// "1 234,56 €" or "€1,234.56". An empty string is zero.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	if !models.InFloatRange(standardized, amount) {
		return decimal.Zero, fmt.Errorf("amount '%s' is out of range", amountStr)
	}
	return amount, nil
}

// StandardizeAmount strips currency marks and grouping so the result can be
// read by decimal.NewFromString.
func StandardizeAmount(amountStr string) string {
	s := noise.ReplaceAllString(strings.TrimSpace(amountStr), "")

	comma := strings.LastIndex(s, ",")
	dot := strings.LastIndex(s, ".")
	switch {
	case comma >= 0 && dot >= 0 && dot < comma:
		// 1.234,56
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case comma >= 0 && dot >= 0:
		// 1,234.56
		s = strings.ReplaceAll(s, ",", "")
	case comma >= 0:
		parts := strings.Split(s, ",")
		if len(parts) == 2 && len(parts[1]) != 3 {
			s = parts[0] + "." + parts[1]
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	return s
}
