package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

const maxInputDigits = 15

// CurrencyInput is the edit model of a money field. Typed digits are a cents
// integer: typing "1234" means 12,34. The display is re-rendered on each change.
// Focusing a field whose value is empty or zero clears the display.
type CurrencyInput struct {
	locale  Locale
	value   decimal.Decimal
	display string
	focused bool
}

func NewCurrencyInput(l Locale) *CurrencyInput {
	return &CurrencyInput{locale: l}
}

// SetValue loads a value coming from the model, not from typing.
func (c *CurrencyInput) SetValue(v decimal.Decimal) {
	c.value = v.Round(2)
	if c.focused && c.value.IsZero() {
		c.display = ""
		return
	}
	c.display = c.locale.FormatCurrency(c.value)
}

// Change applies the raw text of the field after a keystroke.
func (c *CurrencyInput) Change(raw string) {
	typed := onlyDigits(raw)
	if typed == "" {
		c.value = decimal.Zero
		c.display = ""
		return
	}
	digits := strings.TrimLeft(typed, "0")
	if digits == "" {
		digits = "0"
	}
	if len(digits) > maxInputDigits {
		digits = digits[:maxInputDigits]
	}
	cents, err := decimal.NewFromString(digits)
	if err != nil {
		cents = decimal.Zero
	}
	c.value = cents.Shift(-2)
	c.display = c.locale.FormatCurrency(c.value)
}

func (c *CurrencyInput) Focus() {
	c.focused = true
	if c.value.IsZero() {
		c.display = ""
	}
}

// Blur leaves an emptied field empty; otherwise the value is re-rendered.
func (c *CurrencyInput) Blur() {
	c.focused = false
	if c.value.IsZero() && c.display == "" {
		return
	}
	c.display = c.locale.FormatCurrency(c.value)
}

func (c *CurrencyInput) Display() string {
	return c.display
}

func (c *CurrencyInput) Value() decimal.Decimal {
	return c.value
}
