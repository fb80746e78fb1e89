package budget

import (
	"comercial_moveis/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Summary is an immutable snapshot of the inputs and every derived value.
type Summary struct {
	Client              *entities.ClientRef
	Environments        []entities.Environment
	PaymentMethods      []entities.PaymentMethod
	Total               decimal.Decimal
	PaymentsTotal       decimal.Decimal
	PresentValueTotal   decimal.Decimal
	DiscountPercent     decimal.Decimal
	EffectiveDiscount   decimal.Decimal
	DiscountAmount      decimal.Decimal
	Negotiated          decimal.Decimal
	Remaining           decimal.Decimal
	Reconciled          bool
	CanGenerateQuote    bool
	CanGenerateContract bool
}

func (s *Simulator) Summary() Summary {
	return Summary{
		Client:              s.Client(),
		Environments:        s.Environments(),
		PaymentMethods:      s.PaymentMethods(),
		Total:               s.Total(),
		PaymentsTotal:       s.PaymentsTotal(),
		PresentValueTotal:   s.PresentValueTotal(),
		DiscountPercent:     s.DiscountPercent(),
		EffectiveDiscount:   s.EffectiveDiscount(),
		DiscountAmount:      s.DiscountAmount(),
		Negotiated:          s.Negotiated(),
		Remaining:           s.Remaining(),
		Reconciled:          s.Reconciled(),
		CanGenerateQuote:    s.CanGenerateQuote(),
		CanGenerateContract: s.CanGenerateContract(),
	}
}

// State is the serializable input of a Simulator. Aggregates are never stored.
type State struct {
	Client          *entities.ClientRef      `json:"client,omitempty"`
	Environments    []entities.Environment   `json:"environments"`
	PaymentMethods  []entities.PaymentMethod `json:"payment_methods"`
	DiscountPercent decimal.Decimal          `json:"discount_percent"`
}

func (s *Simulator) State() State {
	return State{
		Client:          s.Client(),
		Environments:    s.Environments(),
		PaymentMethods:  s.PaymentMethods(),
		DiscountPercent: s.discount,
	}
}

// Restore rebuilds a Simulator from a stored State, validating it again.
func Restore(st State, opts ...Option) (*Simulator, error) {
	s := NewSimulator(opts...)
	s.SetClient(st.Client)
	if err := s.SetEnvironments(st.Environments); err != nil {
		return nil, err
	}
	if err := s.SetPaymentMethods(st.PaymentMethods); err != nil {
		return nil, err
	}
	if err := s.SetDiscount(st.DiscountPercent); err != nil {
		return nil, err
	}
	return s, nil
}
