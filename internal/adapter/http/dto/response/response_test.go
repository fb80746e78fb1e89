package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"comercial_moveis/internal/domain/budget"
	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/format"
)

func testLocale() format.Locale {
	return format.Locale{CurrencySymbol: "R$", DecimalSeparator: ",", GroupSeparator: ".", DateLayout: "02/01/2006", Location: time.UTC}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestFromSummary(t *testing.T) {
	sim := budget.NewSimulator()
	sim.SetClient(&entities.ClientRef{ID: "c-1", Name: "Maria Souza"})
	if err := sim.SetEnvironments([]entities.Environment{{ID: "e1", Name: "Cozinha", Amount: dec("1234.56")}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sim.SetPaymentMethods([]entities.PaymentMethod{
		{ID: "p1", Type: entities.PaymentMethodFinanceira, Amount: dec("1000"), PresentValue: decimal.NewNullDecimal(dec("950.10")), MonthlyRate: dec("0.0199"), FirstDueDate: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sim.SetDiscount(dec("10")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := FromSummary(sim.Summary(), testLocale())

	if res.TotalFormatted != "R$ 1.234,56" {
		t.Fatalf("unexpected total: %s", res.TotalFormatted)
	}
	if res.NegotiatedFormatted != "R$ 1.111,10" || res.DiscountPercentFormatted != "10,0%" {
		t.Fatalf("unexpected negotiated/discount: %s %s", res.NegotiatedFormatted, res.DiscountPercentFormatted)
	}
	if res.RemainingFormatted != "R$ 111,10" || res.Reconciled {
		t.Fatalf("unexpected remaining: %s reconciled=%t", res.RemainingFormatted, res.Reconciled)
	}
	if res.Client == nil || res.Client.Email != entities.EmailNotInformed || res.ClientName != "Maria Souza" {
		t.Fatalf("unexpected client: %+v", res.Client)
	}

	pm := res.PaymentMethods[0]
	if pm.PresentValueFormatted != "R$ 950,10" || pm.MonthlyRateFormatted != "1,99%" {
		t.Fatalf("unexpected payment method: %+v", pm)
	}
	if pm.FirstDueDate != "2025-02-10" || pm.FirstDueDateFormatted != "10/02/2025" {
		t.Fatalf("unexpected due dates: %s %s", pm.FirstDueDate, pm.FirstDueDateFormatted)
	}
}

func TestFromSummary_NoClient(t *testing.T) {
	res := FromSummary(budget.NewSimulator().Summary(), testLocale())
	if res.Client != nil {
		t.Fatalf("expected no client, got %+v", res.Client)
	}
	if res.ClientName != entities.ClientNotSelected {
		t.Fatalf("expected fallback name, got %q", res.ClientName)
	}
	if res.TotalFormatted != "R$ 0,00" {
		t.Fatalf("unexpected total: %s", res.TotalFormatted)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := m["session_id"]; ok {
		t.Fatalf("expected session_id omitted when empty")
	}
}

func TestFromBudget(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	b := entities.Budget{
		ID:         "b-1",
		SessionID:  "s-1",
		Client:     entities.ClientRef{ID: "c-1", Name: "Maria", Phone: "11 99999-0000"},
		Total:      dec("2000"),
		Negotiated: dec("1900"),
		Status:     entities.BudgetStatusAprovado,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res := FromBudget(b, testLocale())
	if res.ID != "b-1" || res.BudgetID != "b-1" || res.Status != "aprovado" {
		t.Fatalf("unexpected ids/status: %+v", res)
	}
	if res.Client.Phone != "11 99999-0000" || res.Client.Document != entities.DocumentNotInformed {
		t.Fatalf("unexpected client: %+v", res.Client)
	}
	if res.NegotiatedFormatted != "R$ 1.900,00" || res.CreatedAtFormatted != "15/01/2025" {
		t.Fatalf("unexpected formatting: %+v", res)
	}
	if got := FromBudgets([]entities.Budget{b, b}, testLocale()); len(got) != 2 {
		t.Fatalf("expected 2 budgets, got %d", len(got))
	}
}

func TestFromContract(t *testing.T) {
	c := entities.Contract{ID: "ct-1", Number: "CT-20250115-ABCDEF12", BudgetID: "b-1", Negotiated: dec("1500.5"), Status: entities.ContractStatusGerado}

	res := FromContract(c, testLocale())
	if res.ContractID != "ct-1" || res.Number != "CT-20250115-ABCDEF12" || res.BudgetID != "b-1" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.NegotiatedFormatted != "R$ 1.500,50" || res.Status != "gerado" {
		t.Fatalf("unexpected formatting: %+v", res)
	}
}

func TestFromContractPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]any{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.ContractPayment{
		ID:                 "pay-1",
		ContractID:         "ct-1",
		PaymentMethodID:    "pm-1",
		Amount:             dec("450.5"),
		Date:               now,
		Status:             entities.PaymentStatusAprovado,
		ProviderPayloadRaw: raw,
		ProviderPayload:    payload,
	}

	res := FromContractPayment(p, testLocale())
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.ContractID != "ct-1" || res.PaymentMethodID != "pm-1" || res.Status != "aprovado" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.AmountFormatted != "R$ 450,50" {
		t.Fatalf("unexpected amount: %s", res.AmountFormatted)
	}
	if res.MPPayloadRaw != string(raw) || res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected payload: %+v", res)
	}
	if got := FromContractPayments(nil, testLocale()); len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}
}
