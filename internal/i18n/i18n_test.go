package i18n

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		lang     Language
		key      string
		expected string
	}{
		{English, "excel.expensesBy", "EXPENSES BY :"},
		{Spanish, "excel.expensesBy", "GASTOS REALIZADOS POR :"},
		{French, "excel.balance", "SOLDE :"},
		{Spanish, "col.misc", "Varios"},
		{English, "missing.key", "missing.key"},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang)+"/"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewLocale(tt.lang).Translate(tt.key))
		})
	}
}

func TestCatalogsCoverSameKeys(t *testing.T) {
	en := catalogs[English].Messages
	for _, lang := range []Language{Spanish, French} {
		for key := range en {
			_, ok := catalogs[lang].Messages[key]
			assert.True(t, ok, "%s missing %s", lang, key)
		}
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "April", NewLocale(English).MonthName(3))
	assert.Equal(t, "abril", NewLocale(Spanish).MonthName(3))
	assert.Equal(t, "avril", NewLocale(French).MonthName(3))
	assert.Equal(t, "month.12", NewLocale(English).MonthName(12))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "03/04/2025", NewLocale(English).FormatDate(d))
	assert.Equal(t, "3/4/2025", NewLocale(Spanish).FormatDate(d))
	assert.Equal(t, "03/04/2025", NewLocale(French).FormatDate(d))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		lang     Language
		value    string
		expected string
	}{
		{"en small", English, "3.45", "€3.45"},
		{"en grouped", English, "1213.85", "€1,213.85"},
		{"en negative", English, "-51.24", "-€51.24"},
		{"en rounding", English, "0.005", "€0.01"},
		{"es four digits ungrouped", Spanish, "1213.85", "1213,85\u00a0€"},
		{"es five digits grouped", Spanish, "12345.6", "12.345,60\u00a0€"},
		{"fr grouped", French, "1213.85", "1\u202f213,85\u00a0€"},
		{"fr millions", French, "1234567", "1\u202f234\u202f567,00\u00a0€"},
		{"negative zero", English, "-0.001", "€0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewLocale(tt.lang).FormatCurrency(decimal.RequireFromString(tt.value))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseLanguage(t *testing.T) {
	lang, err := ParseLanguage(" ES ")
	require.NoError(t, err)
	assert.Equal(t, Spanish, lang)

	_, err = ParseLanguage("de")
	assert.Error(t, err)

	assert.Equal(t, English, NewLocale("de").Language())
}

func TestLocaleImplementsFormatter(t *testing.T) {
	var _ Formatter = NewLocale(English)
}
