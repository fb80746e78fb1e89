package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus represents the lifecycle of a quote (orçamento).
type BudgetStatus string

const (
	BudgetStatusPendente  BudgetStatus = "pendente"
	BudgetStatusAprovado  BudgetStatus = "aprovado"
	BudgetStatusRejeitado BudgetStatus = "rejeitado"
	BudgetStatusCancelado BudgetStatus = "cancelado"
)

// Budget is a quote generated from a simulation and persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// The totals are a frozen copy of the simulation aggregates at generation time.
type Budget struct {
	ID                string          `json:"id"`
	SessionID         string          `json:"session_id"`
	Client            ClientRef       `json:"client"`
	Environments      []Environment   `json:"environments"`
	PaymentMethods    []PaymentMethod `json:"payment_methods"`
	Total             decimal.Decimal `json:"total"`
	DiscountPercent   decimal.Decimal `json:"discount_percent"`
	Negotiated        decimal.Decimal `json:"negotiated"`
	PaymentsTotal     decimal.Decimal `json:"payments_total"`
	PresentValueTotal decimal.Decimal `json:"present_value_total"`
	Status            BudgetStatus    `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
