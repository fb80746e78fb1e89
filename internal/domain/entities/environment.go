package entities

import "github.com/shopspring/decimal"

// Environment (ambiente) is a priced line item of a budget, usually the
// furniture package of one room.
type Environment struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}
