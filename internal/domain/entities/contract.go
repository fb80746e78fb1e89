package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractStatus string

const (
	ContractStatusGerado    ContractStatus = "gerado"
	ContractStatusAssinado  ContractStatus = "assinado"
	ContractStatusCancelado ContractStatus = "cancelado"
)

// Contract is generated once the payment plan reconciles with the negotiated
// value. PaymentMethods is the agreed payment plan.
type Contract struct {
	ID                string          `json:"id"`
	Number            string          `json:"number"`
	BudgetID          string          `json:"budget_id,omitempty"`
	SessionID         string          `json:"session_id"`
	Client            ClientRef       `json:"client"`
	Environments      []Environment   `json:"environments"`
	PaymentMethods    []PaymentMethod `json:"payment_methods"`
	Total             decimal.Decimal `json:"total"`
	DiscountPercent   decimal.Decimal `json:"discount_percent"`
	Negotiated        decimal.Decimal `json:"negotiated"`
	PresentValueTotal decimal.Decimal `json:"present_value_total"`
	Status            ContractStatus  `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// PaymentMethod returns the plan entry with the given id.
func (c Contract) PaymentMethod(id string) (PaymentMethod, bool) {
	for _, m := range c.PaymentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return PaymentMethod{}, false
}
