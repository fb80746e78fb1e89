package response

import (
	"time"

	"github.com/shopspring/decimal"

	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/format"
)

type ContractResponse struct {
	ContractID     string                  `json:"contract_id"`
	ID             string                  `json:"id"`
	Number         string                  `json:"number"`
	BudgetID       string                  `json:"budget_id,omitempty"`
	SessionID      string                  `json:"session_id"`
	Client         ClientResponse          `json:"client"`
	Environments   []EnvironmentResponse   `json:"environments"`
	PaymentMethods []PaymentMethodResponse `json:"payment_methods"`

	Total                      decimal.Decimal `json:"total"`
	TotalFormatted             string          `json:"total_formatted"`
	DiscountPercent            decimal.Decimal `json:"discount_percent"`
	DiscountPercentFormatted   string          `json:"discount_percent_formatted"`
	Negotiated                 decimal.Decimal `json:"negotiated"`
	NegotiatedFormatted        string          `json:"negotiated_formatted"`
	PresentValueTotal          decimal.Decimal `json:"present_value_total"`
	PresentValueTotalFormatted string          `json:"present_value_total_formatted"`

	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	CreatedAtFormatted string    `json:"created_at_formatted"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromContract(c entities.Contract, l format.Locale) ContractResponse {
	return ContractResponse{
		ContractID:     c.ID,
		ID:             c.ID,
		Number:         c.Number,
		BudgetID:       c.BudgetID,
		SessionID:      c.SessionID,
		Client:         FromClient(&c.Client),
		Environments:   fromEnvironments(c.Environments, l),
		PaymentMethods: fromPaymentMethods(c.PaymentMethods, l),

		Total:                      c.Total,
		TotalFormatted:             l.FormatCurrency(c.Total),
		DiscountPercent:            c.DiscountPercent,
		DiscountPercentFormatted:   l.FormatPercent1(c.DiscountPercent),
		Negotiated:                 c.Negotiated,
		NegotiatedFormatted:        l.FormatCurrency(c.Negotiated),
		PresentValueTotal:          c.PresentValueTotal,
		PresentValueTotalFormatted: l.FormatCurrency(c.PresentValueTotal),

		Status:             string(c.Status),
		CreatedAt:          c.CreatedAt,
		CreatedAtFormatted: l.FormatDate(c.CreatedAt),
		UpdatedAt:          c.UpdatedAt,
	}
}
