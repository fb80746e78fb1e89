package response

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/format"
)

type BudgetResponse struct {
	BudgetID       string                  `json:"budget_id"`
	ID             string                  `json:"id"`
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
	PaymentsTotal              decimal.Decimal `json:"payments_total"`
	PaymentsTotalFormatted     string          `json:"payments_total_formatted"`
	PresentValueTotal          decimal.Decimal `json:"present_value_total"`
	PresentValueTotalFormatted string          `json:"present_value_total_formatted"`

	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	CreatedAtFormatted string    `json:"created_at_formatted"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromBudget(b entities.Budget, l format.Locale) BudgetResponse {
	return BudgetResponse{
		BudgetID:       b.ID,
		ID:             b.ID,
		SessionID:      b.SessionID,
		Client:         FromClient(&b.Client),
		Environments:   fromEnvironments(b.Environments, l),
		PaymentMethods: fromPaymentMethods(b.PaymentMethods, l),

		Total:                      b.Total,
		TotalFormatted:             l.FormatCurrency(b.Total),
		DiscountPercent:            b.DiscountPercent,
		DiscountPercentFormatted:   l.FormatPercent1(b.DiscountPercent),
		Negotiated:                 b.Negotiated,
		NegotiatedFormatted:        l.FormatCurrency(b.Negotiated),
		PaymentsTotal:              b.PaymentsTotal,
		PaymentsTotalFormatted:     l.FormatCurrency(b.PaymentsTotal),
		PresentValueTotal:          b.PresentValueTotal,
		PresentValueTotalFormatted: l.FormatCurrency(b.PresentValueTotal),

		Status:             string(b.Status),
		CreatedAt:          b.CreatedAt,
		CreatedAtFormatted: l.FormatDate(b.CreatedAt),
		UpdatedAt:          b.UpdatedAt,
	}
}

func FromBudgets(list []entities.Budget, l format.Locale) []BudgetResponse {
	return lo.Map(list, func(b entities.Budget, _ int) BudgetResponse {
		return FromBudget(b, l)
	})
}
