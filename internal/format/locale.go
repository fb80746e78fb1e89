// Package format renders and parses money, percentages and dates for display.
//
// Separators, currency symbol and date layout come from a Locale so the
// parse/format round trip holds for any configured convention.
package format

import "time"

const ISODateLayout = "2006-01-02"

type Locale struct {
	CurrencySymbol   string
	DecimalSeparator string
	GroupSeparator   string
	DateLayout       string
	Location         *time.Location
}

// PtBR is the Brazilian convention: R$ 1.234,56 and 31/12/2026.
func PtBR() Locale {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.UTC
	}
	return Locale{
		CurrencySymbol:   "R$",
		DecimalSeparator: ",",
		GroupSeparator:   ".",
		DateLayout:       "02/01/2006",
		Location:         loc,
	}
}

func (l Locale) location() *time.Location {
	if l.Location == nil {
		return time.UTC
	}
	return l.Location
}

func (l Locale) decimalSeparator() string {
	if l.DecimalSeparator == "" {
		return "."
	}
	return l.DecimalSeparator
}
