package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"comercial_moveis/internal/adapter/persistence/session"
	"comercial_moveis/internal/domain/entities"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// simulationFixture opens a session with the given inputs on an in-memory store.
func simulationFixture(t *testing.T, client *entities.ClientRef, envAmounts []string, payAmounts []string, discount string) (*SimulationUseCase, string) {
	t.Helper()
	ctx := context.Background()
	sims := NewSimulationUseCase(session.NewMemoryStore(0))

	id, _, err := sims.Start(ctx)
	if err != nil {
		t.Fatalf("unexpected start error: %v", err)
	}
	if client != nil {
		if _, err := sims.SetClient(ctx, id, client); err != nil {
			t.Fatalf("unexpected set client error: %v", err)
		}
	}

	envs := make([]entities.Environment, 0, len(envAmounts))
	for i, a := range envAmounts {
		envs = append(envs, entities.Environment{ID: "env-" + string(rune('1'+i)), Name: "Ambiente", Amount: dec(a)})
	}
	if _, err := sims.SetEnvironments(ctx, id, envs); err != nil {
		t.Fatalf("unexpected set environments error: %v", err)
	}

	pays := make([]entities.PaymentMethod, 0, len(payAmounts))
	for i, a := range payAmounts {
		pays = append(pays, entities.PaymentMethod{ID: "pm-" + string(rune('1'+i)), Type: entities.PaymentMethodPix, Amount: dec(a)})
	}
	if _, err := sims.SetPaymentMethods(ctx, id, pays); err != nil {
		t.Fatalf("unexpected set payment methods error: %v", err)
	}

	if discount != "" {
		if _, err := sims.SetDiscount(ctx, id, dec(discount)); err != nil {
			t.Fatalf("unexpected set discount error: %v", err)
		}
	}
	return sims, id
}
