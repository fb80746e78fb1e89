package format

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders amount with two fractional digits, grouping and the
// currency symbol, e.g. "R$ 1.234,56" or "-R$ 0,50".
func (l Locale) FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	intPart, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	if l.CurrencySymbol != "" {
		b.WriteString(l.CurrencySymbol)
		b.WriteByte(' ')
	}
	b.WriteString(groupDigits(intPart, l.GroupSeparator))
	b.WriteString(l.decimalSeparator())
	b.WriteString(frac)
	return b.String()
}

// ParseCurrency is the inverse of FormatCurrency. Everything except digits, the
// decimal separator and a leading minus is dropped. Without a decimal separator
// the digits are read as cents. Empty or unparseable input yields zero.
func (l Locale) ParseCurrency(s string) decimal.Decimal {
	sep := l.decimalSeparator()
	negative := false
	seenDigit := false
	lastSep := -1

	var digits strings.Builder
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], sep) {
			lastSep = digits.Len()
			i += len(sep)
			continue
		}
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits.WriteByte(c)
			seenDigit = true
		case c == '-' && !seenDigit:
			negative = true
		}
		i++
	}

	raw := digits.String()
	if raw == "" {
		return decimal.Zero
	}

	var value decimal.Decimal
	if lastSep < 0 {
		cents, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero
		}
		value = cents.Shift(-2)
	} else {
		intPart, frac := raw[:lastSep], raw[lastSep:]
		if intPart == "" {
			intPart = "0"
		}
		if frac == "" {
			frac = "0"
		}
		v, err := decimal.NewFromString(intPart + "." + frac)
		if err != nil {
			return decimal.Zero
		}
		value = v.Round(2)
	}

	if negative {
		return value.Neg()
	}
	return value
}

func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, s)
}
