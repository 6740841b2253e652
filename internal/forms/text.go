// Package forms holds the editable drafts behind every modal form. Drafts
// keep raw text as the source of truth; parsing happens only on submit.
package forms

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ValidationError lists every rule a draft failed.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string { return strings.Join(e.Messages, "; ") }

func validationErr(msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Messages: msgs}
}

func appendText(s string, r rune) string {
	if !unicode.IsPrint(r) {
		return s
	}
	return s + string(r)
}

// appendNumeric accepts digits and a single decimal point.
func appendNumeric(s string, r rune) string {
	switch {
	case r >= '0' && r <= '9':
		return s + string(r)
	case r == '.' && !strings.ContainsRune(s, '.'):
		return s + "."
	default:
		return s
	}
}

func backspace(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// parseNumber parses a required numeric field. Trailing or leading dots
// ("12." or ".5") are accepted since they are reachable while typing.
func parseNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "." {
		return decimal.Zero, false
	}
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// parseAmount is parseNumber with blanks treated as zero.
func parseAmount(s string) decimal.Decimal {
	d, _ := parseNumber(s)
	return d
}

// FormatAmount renders a stored amount for editing, e.g. 12 -> "12.00".
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// ParsePositiveAmount parses a payment amount typed by the user.
func ParsePositiveAmount(s string) (float64, bool) {
	d, ok := parseNumber(s)
	if !ok || !d.IsPositive() {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// AppendAmountRune is the numeric filter exported for one-field inputs.
func AppendAmountRune(s string, r rune) string { return appendNumeric(s, r) }

// Backspace removes the last rune of s.
func Backspace(s string) string { return backspace(s) }
