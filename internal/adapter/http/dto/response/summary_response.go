package response

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"comercial_moveis/internal/domain/budget"
	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/format"
)

var hundred = decimal.NewFromInt(100)

// ClientResponse shows the client with the display fallbacks applied.
type ClientResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func FromClient(c *entities.ClientRef) ClientResponse {
	r := ClientResponse{
		Name:     c.DisplayName(),
		Document: c.DisplayDocument(),
		Email:    c.DisplayEmail(),
		Phone:    c.DisplayPhone(),
		Address:  c.DisplayAddress(),
	}
	if c != nil {
		r.ID = c.ID
	}
	return r
}

type EnvironmentResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amount_formatted"`
}

type PaymentMethodResponse struct {
	ID                    string          `json:"id"`
	Type                  string          `json:"type"`
	Description           string          `json:"description,omitempty"`
	Amount                decimal.Decimal `json:"amount"`
	AmountFormatted       string          `json:"amount_formatted"`
	PresentValue          decimal.Decimal `json:"present_value"`
	PresentValueFormatted string          `json:"present_value_formatted"`
	Installments          int             `json:"installments,omitempty"`
	MonthlyRate           decimal.Decimal `json:"monthly_rate"`
	MonthlyRateFormatted  string          `json:"monthly_rate_formatted"`
	FirstDueDate          string          `json:"first_due_date,omitempty"`
	FirstDueDateFormatted string          `json:"first_due_date_formatted,omitempty"`
}

func fromEnvironments(list []entities.Environment, l format.Locale) []EnvironmentResponse {
	return lo.Map(list, func(e entities.Environment, _ int) EnvironmentResponse {
		return EnvironmentResponse{
			ID:              e.ID,
			Name:            e.Name,
			Description:     e.Description,
			Amount:          e.Amount,
			AmountFormatted: l.FormatCurrency(e.Amount),
		}
	})
}

func fromPaymentMethods(list []entities.PaymentMethod, l format.Locale) []PaymentMethodResponse {
	return lo.Map(list, func(p entities.PaymentMethod, _ int) PaymentMethodResponse {
		pv := p.EffectivePresentValue()
		return PaymentMethodResponse{
			ID:                    p.ID,
			Type:                  string(p.Type),
			Description:           p.Description,
			Amount:                p.Amount,
			AmountFormatted:       l.FormatCurrency(p.Amount),
			PresentValue:          pv,
			PresentValueFormatted: l.FormatCurrency(pv),
			Installments:          p.Installments,
			MonthlyRate:           p.MonthlyRate,
			MonthlyRateFormatted:  l.FormatPercentage(p.MonthlyRate.Mul(hundred), 2),
			FirstDueDate:          l.ToISODate(p.FirstDueDate),
			FirstDueDateFormatted: l.FormatDate(p.FirstDueDate),
		}
	})
}

// SummaryResponse is the JSON view of a simulation: raw decimals for clients
// that compute, formatted strings for clients that display.
type SummaryResponse struct {
	SessionID      string                  `json:"session_id,omitempty"`
	Client         *ClientResponse         `json:"client"`
	ClientName     string                  `json:"client_name"`
	Environments   []EnvironmentResponse   `json:"environments"`
	PaymentMethods []PaymentMethodResponse `json:"payment_methods"`

	Total                      decimal.Decimal `json:"total"`
	TotalFormatted             string          `json:"total_formatted"`
	PaymentsTotal              decimal.Decimal `json:"payments_total"`
	PaymentsTotalFormatted     string          `json:"payments_total_formatted"`
	PresentValueTotal          decimal.Decimal `json:"present_value_total"`
	PresentValueTotalFormatted string          `json:"present_value_total_formatted"`
	DiscountPercent            decimal.Decimal `json:"discount_percent"`
	DiscountPercentFormatted   string          `json:"discount_percent_formatted"`
	EffectiveDiscount          decimal.Decimal `json:"effective_discount"`
	EffectiveDiscountFormatted string          `json:"effective_discount_formatted"`
	DiscountAmount             decimal.Decimal `json:"discount_amount"`
	DiscountAmountFormatted    string          `json:"discount_amount_formatted"`
	Negotiated                 decimal.Decimal `json:"negotiated"`
	NegotiatedFormatted        string          `json:"negotiated_formatted"`
	Remaining                  decimal.Decimal `json:"remaining"`
	RemainingFormatted         string          `json:"remaining_formatted"`

	Reconciled          bool `json:"reconciled"`
	CanGenerateQuote    bool `json:"can_generate_quote"`
	CanGenerateContract bool `json:"can_generate_contract"`
}

func FromSummary(s budget.Summary, l format.Locale) SummaryResponse {
	r := SummaryResponse{
		ClientName:     s.Client.DisplayName(),
		Environments:   fromEnvironments(s.Environments, l),
		PaymentMethods: fromPaymentMethods(s.PaymentMethods, l),

		Total:                      s.Total,
		TotalFormatted:             l.FormatCurrency(s.Total),
		PaymentsTotal:              s.PaymentsTotal,
		PaymentsTotalFormatted:     l.FormatCurrency(s.PaymentsTotal),
		PresentValueTotal:          s.PresentValueTotal,
		PresentValueTotalFormatted: l.FormatCurrency(s.PresentValueTotal),
		DiscountPercent:            s.DiscountPercent,
		DiscountPercentFormatted:   l.FormatPercent1(s.DiscountPercent),
		EffectiveDiscount:          s.EffectiveDiscount,
		EffectiveDiscountFormatted: l.FormatPercentage(s.EffectiveDiscount, 2),
		DiscountAmount:             s.DiscountAmount,
		DiscountAmountFormatted:    l.FormatCurrency(s.DiscountAmount),
		Negotiated:                 s.Negotiated,
		NegotiatedFormatted:        l.FormatCurrency(s.Negotiated),
		Remaining:                  s.Remaining,
		RemainingFormatted:         l.FormatCurrency(s.Remaining),

		Reconciled:          s.Reconciled,
		CanGenerateQuote:    s.CanGenerateQuote,
		CanGenerateContract: s.CanGenerateContract,
	}
	if s.Client != nil {
		c := FromClient(s.Client)
		r.Client = &c
	}
	return r
}
