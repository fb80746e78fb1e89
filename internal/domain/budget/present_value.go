package budget

import (
	"comercial_moveis/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// PresentValue splits amount into equal monthly installments, the first one due
// one month ahead, and discounts each at the compound monthly rate.
// The result is rounded to cents. A zero rate returns the amount itself.
func PresentValue(amount decimal.Decimal, installments int, monthlyRate decimal.Decimal) decimal.Decimal {
	if !monthlyRate.IsPositive() {
		return amount.Round(2)
	}
	if installments < 1 {
		installments = 1
	}

	installment := amount.Div(decimal.NewFromInt(int64(installments)))
	factor := decimal.NewFromInt(1).Add(monthlyRate)
	discount := decimal.NewFromInt(1)
	pv := decimal.Zero
	for range installments {
		discount = discount.Mul(factor)
		pv = pv.Add(installment.Div(discount))
	}
	return pv.Round(2)
}

// FillPresentValues computes PresentValue for financed methods that arrive
// without one. Methods with an explicit present value are kept as is.
func FillPresentValues(methods []entities.PaymentMethod) []entities.PaymentMethod {
	return lo.Map(methods, func(m entities.PaymentMethod, _ int) entities.PaymentMethod {
		if m.PresentValue.Valid || !m.MonthlyRate.IsPositive() {
			return m
		}
		m.PresentValue = decimal.NewNullDecimal(PresentValue(m.Amount, m.Installments, m.MonthlyRate))
		return m
	})
}
