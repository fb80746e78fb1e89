package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/usecase/interfaces"
	mock_interfaces "comercial_moveis/internal/usecase/interfaces/mocks"
)

func TestContractUseCase_GenerateContract(t *testing.T) {
	client := &entities.ClientRef{ID: "c-1", Name: "Maria Souza"}
	fixedNow := time.Date(2025, 3, 9, 15, 4, 5, 0, time.UTC)

	t.Run("requires reconciled plan", func(t *testing.T) {
		sims, id := simulationFixture(t, client, []string{"1000"}, []string{"900"}, "")
		uc := NewContractUseCase(nil, nil, sims)

		_, err := uc.GenerateContract(context.Background(), id, "")
		if !errors.Is(err, ErrContractNotAllowed) {
			t.Fatalf("expected ErrContractNotAllowed, got %v", err)
		}
	})

	t.Run("requires payment methods", func(t *testing.T) {
		sims, id := simulationFixture(t, client, []string{"0"}, nil, "")
		uc := NewContractUseCase(nil, nil, sims)

		_, err := uc.GenerateContract(context.Background(), id, "")
		if !errors.Is(err, ErrContractNotAllowed) {
			t.Fatalf("expected ErrContractNotAllowed, got %v", err)
		}
	})

	t.Run("session not found", func(t *testing.T) {
		sims, _ := simulationFixture(t, client, nil, nil, "")
		uc := NewContractUseCase(nil, nil, sims)

		_, err := uc.GenerateContract(context.Background(), "missing", "")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("generates contract without budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		sims, id := simulationFixture(t, client, []string{"1000.00"}, []string{"600.00", "350.00"}, "5")
		uc := NewContractUseCase(repo, nil, sims)
		uc.now = func() time.Time { return fixedNow }

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) { return c, nil },
		)

		got, err := uc.GenerateContract(context.Background(), id, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ContractStatusGerado || got.BudgetID != "" {
			t.Fatalf("unexpected contract: %+v", got)
		}
		if !regexp.MustCompile(`^CT-20250309-[0-9A-F]{8}$`).MatchString(got.Number) {
			t.Fatalf("unexpected contract number %q", got.Number)
		}
		if !got.Negotiated.Equal(dec("950")) || len(got.PaymentMethods) != 2 {
			t.Fatalf("unexpected plan: negotiated=%s methods=%d", got.Negotiated, len(got.PaymentMethods))
		}
		if !got.CreatedAt.Equal(fixedNow) {
			t.Fatalf("expected created_at %v, got %v", fixedNow, got.CreatedAt)
		}
	})

	t.Run("links budget of same client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		sims, id := simulationFixture(t, client, []string{"100"}, []string{"100"}, "")
		uc := NewContractUseCase(repo, budgets, sims)

		budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Client: *client, Status: entities.BudgetStatusAprovado}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Contract) (entities.Contract, error) { return c, nil },
		)

		got, err := uc.GenerateContract(context.Background(), id, " b-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.BudgetID != "b-1" {
			t.Fatalf("expected budget link, got %q", got.BudgetID)
		}
	})

	t.Run("budget not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		sims, id := simulationFixture(t, client, []string{"100"}, []string{"100"}, "")
		uc := NewContractUseCase(nil, budgets, sims)

		budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)

		_, err := uc.GenerateContract(context.Background(), id, "b-1")
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("budget not linkable", func(t *testing.T) {
		cases := map[string]entities.Budget{
			"other client": {ID: "b-1", Client: entities.ClientRef{ID: "c-2"}, Status: entities.BudgetStatusPendente},
			"rejected":     {ID: "b-1", Client: *client, Status: entities.BudgetStatusRejeitado},
			"cancelled":    {ID: "b-1", Client: *client, Status: entities.BudgetStatusCancelado},
		}
		for name, b := range cases {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
				sims, id := simulationFixture(t, client, []string{"100"}, []string{"100"}, "")
				uc := NewContractUseCase(nil, budgets, sims)

				budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(b, nil)

				_, err := uc.GenerateContract(context.Background(), id, "b-1")
				if !errors.Is(err, ErrBudgetNotLinkable) {
					t.Fatalf("expected ErrBudgetNotLinkable, got %v", err)
				}
			})
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		sims, id := simulationFixture(t, client, []string{"100"}, []string{"100"}, "")
		uc := NewContractUseCase(repo, nil, sims)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Contract{}, errors.New("db"))

		_, err := uc.GenerateContract(context.Background(), id, "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestContractUseCase_StatusTransitions(t *testing.T) {
	t.Run("sign generated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", Status: entities.ContractStatusGerado}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ct-1", entities.ContractStatusAssinado, []entities.ContractStatus{entities.ContractStatusGerado}).Return(entities.Contract{ID: "ct-1", Status: entities.ContractStatusAssinado}, nil)

		got, err := uc.Sign(context.Background(), "ct-1")
		if err != nil || got.Status != entities.ContractStatusAssinado {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("cancel signed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", Status: entities.ContractStatusAssinado}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ct-1", entities.ContractStatusCancelado, contractTransitions[entities.ContractStatusCancelado]).Return(entities.Contract{ID: "ct-1", Status: entities.ContractStatusCancelado}, nil)

		got, err := uc.Cancel(context.Background(), "ct-1")
		if err != nil || got.Status != entities.ContractStatusCancelado {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("concurrent sign loses the conditional write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", Status: entities.ContractStatusGerado}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "ct-1", entities.ContractStatusAssinado, gomock.Any()).Return(entities.Contract{}, interfaces.ErrStatusConflict)

		_, err := uc.Sign(context.Background(), "ct-1")
		if !errors.Is(err, ErrContractStatusTransition) {
			t.Fatalf("expected ErrContractStatusTransition, got %v", err)
		}
	})

	t.Run("sign cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", Status: entities.ContractStatusCancelado}, nil)

		_, err := uc.Sign(context.Background(), "ct-1")
		if !errors.Is(err, ErrContractStatusTransition) {
			t.Fatalf("expected ErrContractStatusTransition, got %v", err)
		}
	})

	t.Run("sign signed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{ID: "ct-1", Status: entities.ContractStatusAssinado}, nil)

		_, err := uc.Sign(context.Background(), "ct-1")
		if !errors.Is(err, ErrContractStatusTransition) {
			t.Fatalf("expected ErrContractStatusTransition, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewContractUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.Contract{}, nil)

		_, err := uc.Cancel(context.Background(), "ct-1")
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := NewContractUseCase(nil, nil, nil)
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})
}

func TestContractNumber(t *testing.T) {
	id := uuid.MustParse("3f2a9c1e-0b7d-4e11-9a55-2c3d4e5f6a7b")
	at := time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)

	if got := contractNumber(at, id); got != "CT-20241231-3F2A9C1E" {
		t.Fatalf("unexpected contract number %q", got)
	}
}
