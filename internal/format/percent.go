package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPercentage renders value (already in percent) with the given number of
// decimals, e.g. 10 -> "10,0%".
func (l Locale) FormatPercentage(value decimal.Decimal, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	s := value.StringFixed(int32(decimals))
	return strings.Replace(s, ".", l.decimalSeparator(), 1) + "%"
}

// FormatPercent1 is FormatPercentage with one decimal, the default display.
func (l Locale) FormatPercent1(value decimal.Decimal) string {
	return l.FormatPercentage(value, 1)
}
