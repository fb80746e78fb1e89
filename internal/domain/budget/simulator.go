// Package budget holds the aggregation state of a budget simulation: the selected
// client, the priced environments, the payment plan and the discount, plus every
// total derived from them.
package budget

import (
	"fmt"
	"slices"

	"comercial_moveis/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DefaultTolerance is the reconciliation tolerance between the payment plan and
// the negotiated value: one cent.
var DefaultTolerance = decimal.New(1, -2)

var hundred = decimal.NewFromInt(100)

// Simulator is the per-session aggregation state. Inputs are replaced wholesale by
// the setters; aggregates are recomputed on every read.
//
// A Simulator is not safe for concurrent use. Callers serialize access per session.
type Simulator struct {
	client         *entities.ClientRef
	environments   []entities.Environment
	paymentMethods []entities.PaymentMethod
	discount       decimal.Decimal
	tolerance      decimal.Decimal
}

type Option func(*Simulator)

// WithTolerance overrides the reconciliation tolerance. Non-positive values are ignored.
func WithTolerance(t decimal.Decimal) Option {
	return func(s *Simulator) {
		if t.IsPositive() {
			s.tolerance = t
		}
	}
}

func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetClient replaces the current client. nil clears the selection.
func (s *Simulator) SetClient(c *entities.ClientRef) {
	if c == nil {
		s.client = nil
		return
	}
	cp := *c
	s.client = &cp
}

func (s *Simulator) SetEnvironments(list []entities.Environment) error {
	if err := validateEnvironments(list); err != nil {
		return err
	}
	s.environments = slices.Clone(list)
	return nil
}

func (s *Simulator) SetPaymentMethods(list []entities.PaymentMethod) error {
	if err := validatePaymentMethods(list); err != nil {
		return err
	}
	s.paymentMethods = slices.Clone(list)
	return nil
}

// SetDiscount sets the discount driver as a percentage of the total.
func (s *Simulator) SetDiscount(percent decimal.Decimal) error {
	if err := validateDiscount(percent); err != nil {
		return err
	}
	s.discount = percent
	return nil
}

func (s *Simulator) Client() *entities.ClientRef {
	if s.client == nil {
		return nil
	}
	cp := *s.client
	return &cp
}

func (s *Simulator) Environments() []entities.Environment {
	return slices.Clone(s.environments)
}

func (s *Simulator) PaymentMethods() []entities.PaymentMethod {
	return slices.Clone(s.paymentMethods)
}

func (s *Simulator) Tolerance() decimal.Decimal {
	return s.tolerance
}

// Total is valorTotal: the sum of environment amounts.
func (s *Simulator) Total() decimal.Decimal {
	return lo.Reduce(s.environments, func(acc decimal.Decimal, e entities.Environment, _ int) decimal.Decimal {
		return acc.Add(e.Amount)
	}, decimal.Zero)
}

// PaymentsTotal is valorTotalFormas: the sum of nominal payment amounts.
func (s *Simulator) PaymentsTotal() decimal.Decimal {
	return lo.Reduce(s.paymentMethods, func(acc decimal.Decimal, p entities.PaymentMethod, _ int) decimal.Decimal {
		return acc.Add(p.Amount)
	}, decimal.Zero)
}

// PresentValueTotal is valorPresenteTotal.
func (s *Simulator) PresentValueTotal() decimal.Decimal {
	return lo.Reduce(s.paymentMethods, func(acc decimal.Decimal, p entities.PaymentMethod, _ int) decimal.Decimal {
		return acc.Add(p.EffectivePresentValue())
	}, decimal.Zero)
}

func (s *Simulator) DiscountPercent() decimal.Decimal {
	return s.discount
}

// Negotiated is valorNegociado, rounded to cents.
func (s *Simulator) Negotiated() decimal.Decimal {
	return s.Total().Mul(hundred.Sub(s.discount)).Div(hundred).Round(2)
}

func (s *Simulator) DiscountAmount() decimal.Decimal {
	return s.Total().Sub(s.Negotiated())
}

// EffectiveDiscount is the desconto real computed from the rounded values.
func (s *Simulator) EffectiveDiscount() decimal.Decimal {
	total := s.Total()
	if total.IsZero() {
		return decimal.Zero
	}
	return total.Sub(s.Negotiated()).Div(total).Mul(hundred).Round(2)
}

// Remaining is valorRestante: the part of the negotiated value not yet covered by
// the payment plan. Negative when the plan exceeds it.
func (s *Simulator) Remaining() decimal.Decimal {
	return s.Negotiated().Sub(s.PaymentsTotal())
}

func (s *Simulator) Reconciled() bool {
	if len(s.paymentMethods) == 0 {
		return false
	}
	return s.Remaining().Abs().LessThan(s.tolerance)
}

func (s *Simulator) CanGenerateQuote() bool {
	return s.client != nil && len(s.environments) > 0
}

func (s *Simulator) CanGenerateContract() bool {
	return s.CanGenerateQuote() && s.Reconciled()
}

func validateEnvironments(list []entities.Environment) error {
	for i, e := range list {
		if e.Amount.IsNegative() {
			return invalid(fmt.Sprintf("environments[%d].amount", i), ErrNegativeAmount)
		}
	}
	return nil
}

func validatePaymentMethods(list []entities.PaymentMethod) error {
	for i, p := range list {
		switch {
		case p.Amount.IsNegative():
			return invalid(fmt.Sprintf("payment_methods[%d].amount", i), ErrNegativeAmount)
		case p.PresentValue.Valid && p.PresentValue.Decimal.IsNegative():
			return invalid(fmt.Sprintf("payment_methods[%d].present_value", i), ErrNegativeAmount)
		case p.Installments < 0:
			return invalid(fmt.Sprintf("payment_methods[%d].installments", i), ErrInvalidInstallments)
		case p.MonthlyRate.IsNegative():
			return invalid(fmt.Sprintf("payment_methods[%d].monthly_rate", i), ErrNegativeRate)
		}
	}
	return nil
}

func validateDiscount(percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return invalid("discount_percent", ErrInvalidDiscount)
	}
	return nil
}
