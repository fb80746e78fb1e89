package request

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/format"
)

// ClientRequest selects the client of a simulation. Contact fields are the
// optional enrichment from the client registry.
type ClientRequest struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (r ClientRequest) ToEntity() *entities.ClientRef {
	return &entities.ClientRef{
		ID:       strings.TrimSpace(r.ID),
		Name:     strings.TrimSpace(r.Name),
		Document: strings.TrimSpace(r.Document),
		Email:    strings.TrimSpace(r.Email),
		Phone:    strings.TrimSpace(r.Phone),
		Address:  strings.TrimSpace(r.Address),
	}
}

type EnvironmentRequest struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// EnvironmentsRequest replaces the whole environment list of a simulation.
type EnvironmentsRequest struct {
	Environments []EnvironmentRequest `json:"environments"`
}

func (r EnvironmentsRequest) ToEntities() []entities.Environment {
	return lo.Map(r.Environments, func(e EnvironmentRequest, _ int) entities.Environment {
		return entities.Environment{
			ID:          strings.TrimSpace(e.ID),
			Name:        strings.TrimSpace(e.Name),
			Description: strings.TrimSpace(e.Description),
			Amount:      e.Amount,
		}
	})
}

// PaymentMethodRequest is one entry of the payment plan. FirstDueDate accepts
// the configured date layout or ISO dates.
type PaymentMethodRequest struct {
	ID           string              `json:"id"`
	Type         string              `json:"type"`
	Description  string              `json:"description"`
	Amount       decimal.Decimal     `json:"amount"`
	PresentValue decimal.NullDecimal `json:"present_value"`
	Installments int                 `json:"installments"`
	MonthlyRate  decimal.Decimal     `json:"monthly_rate"`
	FirstDueDate string              `json:"first_due_date"`
}

type PaymentMethodsRequest struct {
	PaymentMethods []PaymentMethodRequest `json:"payment_methods"`
}

func (r PaymentMethodsRequest) ToEntities(l format.Locale) []entities.PaymentMethod {
	return lo.Map(r.PaymentMethods, func(p PaymentMethodRequest, _ int) entities.PaymentMethod {
		return entities.PaymentMethod{
			ID:           strings.TrimSpace(p.ID),
			Type:         entities.PaymentMethodType(strings.ToLower(strings.TrimSpace(p.Type))),
			Description:  strings.TrimSpace(p.Description),
			Amount:       p.Amount,
			PresentValue: p.PresentValue,
			Installments: p.Installments,
			MonthlyRate:  p.MonthlyRate,
			FirstDueDate: l.ParseDate(p.FirstDueDate),
		}
	})
}

type DiscountRequest struct {
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}
