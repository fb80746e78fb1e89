package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethodType string

const (
	PaymentMethodPix        PaymentMethodType = "pix"
	PaymentMethodDinheiro   PaymentMethodType = "dinheiro"
	PaymentMethodCartao     PaymentMethodType = "cartao"
	PaymentMethodBoleto     PaymentMethodType = "boleto"
	PaymentMethodFinanceira PaymentMethodType = "financeira"
)

// PaymentMethod (forma de pagamento) is one instrument of the payment plan.
//
// Amount is the nominal value. PresentValue is the financing-adjusted value of a
// deferred payment; when it is not set the nominal amount counts as present value.
type PaymentMethod struct {
	ID           string              `json:"id"`
	Type         PaymentMethodType   `json:"type"`
	Description  string              `json:"description,omitempty"`
	Amount       decimal.Decimal     `json:"amount"`
	PresentValue decimal.NullDecimal `json:"present_value"`
	Installments int                 `json:"installments,omitempty"`
	MonthlyRate  decimal.Decimal     `json:"monthly_rate"`
	FirstDueDate time.Time           `json:"first_due_date,omitempty"`
}

// EffectivePresentValue returns PresentValue when set, else Amount.
func (p PaymentMethod) EffectivePresentValue() decimal.Decimal {
	if p.PresentValue.Valid {
		return p.PresentValue.Decimal
	}
	return p.Amount
}
