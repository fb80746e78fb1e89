package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/usecase/interfaces"
	mock_interfaces "comercial_moveis/internal/usecase/interfaces/mocks"
)

func TestBudgetUseCase_GenerateQuote(t *testing.T) {
	client := &entities.ClientRef{ID: "c-1", Name: "Maria Souza"}

	t.Run("session not found", func(t *testing.T) {
		sims, _ := simulationFixture(t, client, []string{"100"}, nil, "")
		uc := NewBudgetUseCase(nil, sims)

		_, err := uc.GenerateQuote(context.Background(), "unknown")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("requires client", func(t *testing.T) {
		sims, id := simulationFixture(t, nil, []string{"100"}, nil, "")
		uc := NewBudgetUseCase(nil, sims)

		_, err := uc.GenerateQuote(context.Background(), id)
		if !errors.Is(err, ErrQuoteNotAllowed) {
			t.Fatalf("expected ErrQuoteNotAllowed, got %v", err)
		}
	})

	t.Run("requires environments", func(t *testing.T) {
		sims, id := simulationFixture(t, client, nil, nil, "")
		uc := NewBudgetUseCase(nil, sims)

		_, err := uc.GenerateQuote(context.Background(), id)
		if !errors.Is(err, ErrQuoteNotAllowed) {
			t.Fatalf("expected ErrQuoteNotAllowed, got %v", err)
		}
	})

	t.Run("persists pending quote with frozen totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		sims, id := simulationFixture(t, client, []string{"1000.00", "500.00"}, []string{"700.00"}, "10")
		uc := NewBudgetUseCase(repo, sims)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.ID == "" || b.SessionID != id {
					t.Fatalf("unexpected identifiers: %+v", b)
				}
				if b.Status != entities.BudgetStatusPendente {
					t.Fatalf("expected pendente, got %s", b.Status)
				}
				if b.Client.ID != "c-1" || len(b.Environments) != 2 || len(b.PaymentMethods) != 1 {
					t.Fatalf("unexpected budget content: %+v", b)
				}
				if !b.Total.Equal(dec("1500")) || !b.Negotiated.Equal(dec("1350")) || !b.PaymentsTotal.Equal(dec("700")) {
					t.Fatalf("unexpected totals: total=%s negotiated=%s payments=%s", b.Total, b.Negotiated, b.PaymentsTotal)
				}
				if b.CreatedAt.IsZero() || !b.CreatedAt.Equal(b.UpdatedAt) {
					t.Fatalf("unexpected timestamps: %v %v", b.CreatedAt, b.UpdatedAt)
				}
				return b, nil
			},
		)

		got, err := uc.GenerateQuote(context.Background(), id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" {
			t.Fatalf("expected created budget")
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		sims, id := simulationFixture(t, client, []string{"100"}, nil, "")
		uc := NewBudgetUseCase(repo, sims)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Budget{}, errors.New("db"))

		_, err := uc.GenerateQuote(context.Background(), id)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestBudgetUseCase_StatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    entities.BudgetStatus
		to      entities.BudgetStatus
		act     func(*BudgetUseCase) (entities.Budget, error)
		allowed bool
	}{
		{"approve pending", entities.BudgetStatusPendente, entities.BudgetStatusAprovado, func(u *BudgetUseCase) (entities.Budget, error) { return u.Approve(context.Background(), "b-1") }, true},
		{"reject pending", entities.BudgetStatusPendente, entities.BudgetStatusRejeitado, func(u *BudgetUseCase) (entities.Budget, error) { return u.Reject(context.Background(), "b-1") }, true},
		{"cancel pending", entities.BudgetStatusPendente, entities.BudgetStatusCancelado, func(u *BudgetUseCase) (entities.Budget, error) { return u.Cancel(context.Background(), "b-1") }, true},
		{"cancel approved", entities.BudgetStatusAprovado, entities.BudgetStatusCancelado, func(u *BudgetUseCase) (entities.Budget, error) { return u.Cancel(context.Background(), "b-1") }, true},
		{"approve rejected", entities.BudgetStatusRejeitado, entities.BudgetStatusAprovado, func(u *BudgetUseCase) (entities.Budget, error) { return u.Approve(context.Background(), "b-1") }, false},
		{"reject approved", entities.BudgetStatusAprovado, entities.BudgetStatusRejeitado, func(u *BudgetUseCase) (entities.Budget, error) { return u.Reject(context.Background(), "b-1") }, false},
		{"cancel cancelled", entities.BudgetStatusCancelado, entities.BudgetStatusCancelado, func(u *BudgetUseCase) (entities.Budget, error) { return u.Cancel(context.Background(), "b-1") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
			uc := NewBudgetUseCase(repo, nil)

			repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: tt.from}, nil)
			if tt.allowed {
				repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", tt.to, budgetTransitions[tt.to]).Return(entities.Budget{ID: "b-1", Status: tt.to}, nil)
			}

			got, err := tt.act(uc)
			if !tt.allowed {
				if !errors.Is(err, ErrBudgetStatusTransition) {
					t.Fatalf("expected ErrBudgetStatusTransition, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != tt.to {
				t.Fatalf("expected status %s, got %s", tt.to, got.Status)
			}
		})
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)

		_, err := uc.Approve(context.Background(), "b-1")
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("removed between read and update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusPendente}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BudgetStatusAprovado, gomock.Any()).Return(entities.Budget{}, nil)

		_, err := uc.Approve(context.Background(), "b-1")
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("update error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusPendente}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BudgetStatusRejeitado, gomock.Any()).Return(entities.Budget{}, errors.New("db"))

		_, err := uc.Reject(context.Background(), "b-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("status changed between read and update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusPendente}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "b-1", entities.BudgetStatusAprovado, []entities.BudgetStatus{entities.BudgetStatusPendente}).
			Return(entities.Budget{}, interfaces.ErrStatusConflict)

		_, err := uc.Approve(context.Background(), "b-1")
		if !errors.Is(err, ErrBudgetStatusTransition) {
			t.Fatalf("expected ErrBudgetStatusTransition, got %v", err)
		}
	})
}

func TestBudgetUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
	})

	t.Run("GetByID found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1"}, nil)

		got, err := uc.GetByID(context.Background(), " b-1 ")
		if err != nil || got.ID != "b-1" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("ListByClientID invalid id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil)
		if _, err := uc.ListByClientID(context.Background(), ""); !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("ListByClientID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil)

		repo.EXPECT().ListByClientID(gomock.Any(), "c-1").Return([]entities.Budget{{ID: "b-1"}, {ID: "b-2"}}, nil)

		got, err := uc.ListByClientID(context.Background(), "c-1")
		if err != nil || len(got) != 2 {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})
}
