package carteira

import (
	"strings"

	"github.com/shopspring/decimal"
)

// This file implements the pt-BR currency input mask used by the contract
// forms: the user types a digit stream and sees a grouped value with two
// decimal places ("123456" -> "1.234,56").

// FormatCurrency masks a raw input string as a pt-BR currency amount. All
// non-digits are stripped, the last two digits become the decimal part.
// An input without any digit masks to the empty string.
func FormatCurrency(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	n, err := decimal.NewFromString(digits.String())
	if err != nil {
		return ""
	}
	return group(n.Shift(-2))
}

// ParseCurrency reads a pt-BR formatted amount back into a number. Grouping
// dots are dropped, the decimal comma becomes a dot; anything that still
// does not parse yields 0.
func ParseCurrency(value string) float64 {
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	normalized := strings.ReplaceAll(b.String(), ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	n, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0
	}
	return n.InexactFloat64()
}

// group renders a decimal with pt-BR separators: "." for thousands and ","
// before the two decimal digits.
func group(n decimal.Decimal) string {
	s := n.StringFixed(2) // like -1234.56
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
