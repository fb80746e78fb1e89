package session

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"comercial_moveis/internal/domain/budget"
	"comercial_moveis/internal/domain/entities"
)

func sampleState() budget.State {
	return budget.State{
		Client:          &entities.ClientRef{ID: "c-1", Name: "Maria"},
		Environments:    []entities.Environment{{ID: "env-1", Name: "Cozinha", Amount: decimal.RequireFromString("1200.00")}},
		PaymentMethods:  []entities.PaymentMethod{{ID: "pm-1", Type: entities.PaymentMethodPix, Amount: decimal.RequireFromString("1080.00")}},
		DiscountPercent: decimal.NewFromInt(10),
	}
}

func TestMemoryStore_SaveLoadDelete(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	if _, found, _ := s.Load(ctx, "sess-1"); found {
		t.Fatalf("expected unknown session to be missing")
	}

	if err := s.Save(ctx, "sess-1", sampleState()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st, found, err := s.Load(ctx, "sess-1")
	if err != nil || !found {
		t.Fatalf("expected stored session, found=%v err=%v", found, err)
	}
	if st.Client.Name != "Maria" || len(st.Environments) != 1 || !st.DiscountPercent.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("unexpected state: %+v", st)
	}

	if err := s.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found, _ := s.Load(ctx, "sess-1"); found {
		t.Fatalf("expected deleted session to be missing")
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()
	in := sampleState()
	_ = s.Save(ctx, "sess-1", in)

	in.Client.Name = "changed"
	in.Environments[0].Name = "changed"

	out, _, _ := s.Load(ctx, "sess-1")
	if out.Client.Name != "Maria" || out.Environments[0].Name != "Cozinha" {
		t.Fatalf("store shares memory with caller: %+v", out)
	}

	out.Environments[0].Name = "again"
	again, _, _ := s.Load(ctx, "sess-1")
	if again.Environments[0].Name != "Cozinha" {
		t.Fatalf("loaded state shares memory with store")
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_ = s.Save(ctx, "sess-1", sampleState())

	now = now.Add(30 * time.Second)
	if _, found, _ := s.Load(ctx, "sess-1"); !found {
		t.Fatalf("expected session within ttl")
	}

	now = now.Add(time.Minute)
	if _, found, _ := s.Load(ctx, "sess-1"); found {
		t.Fatalf("expected session to expire")
	}
	if s.Len() != 0 {
		t.Fatalf("expected expired session to be evicted, len=%d", s.Len())
	}
}
