// Package i18n provides the translation and currency formatting capability
// injected into the report engine. Catalogs for English, Spanish and French are
// embedded in the binary.
package i18n

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Formatter is the capability the document assembler consumes.
type Formatter interface {
	Translate(key string) string
	FormatCurrency(value decimal.Decimal) string
}

// Language identifies a supported catalog.
type Language string

// Supported languages
const (
	English Language = "en"
	Spanish Language = "es"
	French  Language = "fr"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogEntry struct {
	DateLayout string            `yaml:"date_layout"`
	Messages   map[string]string `yaml:"messages"`
}

// currencyStyle mirrors the EUR rendering of each locale: en-IE, es-ES, fr-FR.
type currencyStyle struct {
	prefix      string
	suffix      string
	group       string
	decimal     string
	minGrouping int // integer digits required before grouping applies
}

var styles = map[Language]currencyStyle{
	English: {prefix: "€", group: ",", decimal: ".", minGrouping: 4},
	Spanish: {suffix: "\u00a0€", group: ".", decimal: ",", minGrouping: 5},
	French:  {suffix: "\u00a0€", group: "\u202f", decimal: ",", minGrouping: 4},
}

var catalogs map[Language]catalogEntry

func init() {
	if err := yaml.Unmarshal(catalogYAML, &catalogs); err != nil {
		panic(fmt.Sprintf("i18n: invalid embedded catalog: %v", err))
	}
}

// ParseLanguage validates a language code.
func ParseLanguage(code string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := catalogs[lang]; !ok {
		return "", fmt.Errorf("unsupported language: %s", code)
	}
	return lang, nil
}

// Languages returns the supported language codes.
func Languages() []Language {
	return []Language{English, Spanish, French}
}

// Locale implements Formatter for one language.
type Locale struct {
	lang  Language
	entry catalogEntry
	style currencyStyle
}

// NewLocale returns the Locale for lang. Unsupported languages fall back to English.
func NewLocale(lang Language) *Locale {
	entry, ok := catalogs[lang]
	if !ok {
		lang = English
		entry = catalogs[English]
	}
	return &Locale{lang: lang, entry: entry, style: styles[lang]}
}

// Language returns the locale's language code.
func (l *Locale) Language() Language {
	return l.lang
}

// Translate returns the message for key, or key itself when the catalog has none.
func (l *Locale) Translate(key string) string {
	if msg, ok := l.entry.Messages[key]; ok {
		return msg
	}
	return key
}

// MonthName returns the long month name for a zero-based month.
func (l *Locale) MonthName(month int) string {
	return l.Translate(fmt.Sprintf("month.%d", month))
}

// FormatDate renders a calendar date the way the locale writes short dates.
func (l *Locale) FormatDate(t time.Time) string {
	return t.Format(l.entry.DateLayout)
}

// FormatCurrency renders an EUR amount with two decimals.
func (l *Locale) FormatCurrency(value decimal.Decimal) string {
	fixed := value.StringFixed(2)
	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	if negative && strings.Trim(intPart+fracPart, "0") == "" {
		negative = false
	}

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString(l.style.prefix)
	b.WriteString(group(intPart, l.style.group, l.style.minGrouping))
	b.WriteString(l.style.decimal)
	b.WriteString(fracPart)
	b.WriteString(l.style.suffix)
	return b.String()
}

func group(digits, sep string, minGrouping int) string {
	if len(digits) < minGrouping {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
