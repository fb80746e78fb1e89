package response

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/format"
)

type ContractPaymentResponse struct {
	PaymentID       string          `json:"payment_id"`
	ID              string          `json:"id"`
	ContractID      string          `json:"contract_id"`
	PaymentMethodID string          `json:"payment_method_id"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amount_formatted"`
	PaymentDate     time.Time       `json:"payment_date"`
	Date            time.Time       `json:"date"`
	DateFormatted   string          `json:"date_formatted"`
	Status          string          `json:"status"`

	MPPayloadRaw string         `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]any `json:"mp_payload,omitempty"`
}

func FromContractPayment(p entities.ContractPayment, l format.Locale) ContractPaymentResponse {
	return ContractPaymentResponse{
		PaymentID:       p.ID,
		ID:              p.ID,
		ContractID:      p.ContractID,
		PaymentMethodID: p.PaymentMethodID,
		Amount:          p.Amount,
		AmountFormatted: l.FormatCurrency(p.Amount),
		PaymentDate:     p.Date,
		Date:            p.Date,
		DateFormatted:   l.FormatDate(p.Date),
		Status:          string(p.Status),
		MPPayloadRaw:    string(p.ProviderPayloadRaw),
		MPPayload:       p.ProviderPayload,
	}
}

func FromContractPayments(list []entities.ContractPayment, l format.Locale) []ContractPaymentResponse {
	return lo.Map(list, func(p entities.ContractPayment, _ int) ContractPaymentResponse {
		return FromContractPayment(p, l)
	})
}
