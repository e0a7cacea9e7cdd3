package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseLenientAmount(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		expected  string
		wantExact bool
	}{
		{name: "plain decimal", raw: "12.50", expected: "12.5", wantExact: true},
		{name: "surrounding spaces", raw: "  7.4 ", expected: "7.4", wantExact: true},
		{name: "negative", raw: "-3.45", expected: "-3.45", wantExact: true},
		{name: "explicit plus", raw: "+2", expected: "2", wantExact: true},
		{name: "leading dot", raw: ".5", expected: "0.5", wantExact: true},
		{name: "exponent", raw: "1e3", expected: "1000", wantExact: true},
		{name: "letters", raw: "abc", expected: "0", wantExact: false},
		{name: "empty mid typing", raw: "", expected: "0", wantExact: false},
		{name: "numeric prefix kept", raw: "12abc", expected: "12", wantExact: false},
		{name: "comma decimal truncated", raw: "12,50", expected: "12", wantExact: false},
		{name: "trailing dot", raw: "5.", expected: "5", wantExact: false},
		{name: "largest float exponent", raw: "1e308", expected: "1e308", wantExact: true},
		{name: "overflowing exponent", raw: "1e20000000", expected: "0", wantExact: false},
		{name: "overflowing negative exponent", raw: "-1e2000000000", expected: "0", wantExact: false},
		{name: "underflowing exponent", raw: "1e-400", expected: "0", wantExact: false},
		{name: "zero with large exponent", raw: "0e-400", expected: "0", wantExact: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, exact := ParseLenientAmount(tt.raw)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(value), "got %s", value)
			assert.Equal(t, tt.wantExact, exact)
		})
	}
}

func TestInFloatRange(t *testing.T) {
	assert.True(t, InFloatRange("51.24", decimal.RequireFromString("51.24")))
	assert.True(t, InFloatRange("+2", decimal.NewFromInt(2)))
	assert.False(t, InFloatRange("1e309", decimal.RequireFromString("1e309")))
	assert.False(t, InFloatRange("1e-400", decimal.RequireFromString("1e-400")))
}

func TestSum(t *testing.T) {
	total := Sum(
		decimal.RequireFromString("43.69"),
		decimal.RequireFromString("3.45"),
		decimal.RequireFromString("64.58"),
	)
	assert.Equal(t, "111.72", total.String())
	assert.True(t, Sum().IsZero())
}
