package models

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?`)

// ParseLenientAmount reads the longest numeric prefix of raw after leading
// whitespace, the way interactive number fields are read. Input without a
// numeric prefix, or one outside the float64 range, yields zero. exact is
// false whenever any part of the trimmed input was discarded.
func ParseLenientAmount(raw string) (value decimal.Decimal, exact bool) {
	trimmed := strings.TrimSpace(raw)
	match := leadingNumber.FindString(trimmed)
	if match == "" {
		return decimal.Zero, false
	}
	dec, err := decimal.NewFromString(strings.TrimPrefix(match, "+"))
	if err != nil || !InFloatRange(match, dec) {
		return decimal.Zero, false
	}
	return dec, match == trimmed
}

// InFloatRange reports whether the number text s, parsed as d, is representable
// as a non-overflowing float64 that does not underflow to zero. Values outside
// that range would render as strings with an unbounded number of digits.
func InFloatRange(s string, d decimal.Decimal) bool {
	f, err := strconv.ParseFloat(strings.TrimPrefix(s, "+"), 64)
	if err != nil || math.IsInf(f, 0) {
		return false
	}
	return f != 0 || d.IsZero()
}

// Sum adds all values.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
