package usecase

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"comercial_moveis/internal/domain/entities"
	"comercial_moveis/internal/infrastructure/metrics"
	"comercial_moveis/internal/usecase/interfaces"
)

var (
	ErrBudgetNotFound         = errors.New("budget not found")
	ErrInvalidBudgetID        = errors.New("invalid budget id")
	ErrInvalidClientID        = errors.New("invalid client_id")
	ErrQuoteNotAllowed        = errors.New("quote requires a client and at least one environment")
	ErrBudgetStatusTransition = errors.New("budget status transition not allowed")
)

// IBudgetUseCase exposes quote (orçamento) operations.
//
//   - "Gerar orçamento" => GenerateQuote(), from an open simulation session
//   - PATCH /budgets/{id}/approve|reject|cancel => Approve(), Reject(), Cancel()
type IBudgetUseCase interface {
	GenerateQuote(ctx context.Context, sessionID string) (entities.Budget, error)
	Approve(ctx context.Context, id string) (entities.Budget, error)
	Reject(ctx context.Context, id string) (entities.Budget, error)
	Cancel(ctx context.Context, id string) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Budget, error)
}

type BudgetUseCase struct {
	repo        interfaces.IBudgetRepository
	simulations ISimulationUseCase
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(repo interfaces.IBudgetRepository, simulations ISimulationUseCase) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, simulations: simulations}
}

// budgetTransitions lists, per target status, the statuses it may come from.
var budgetTransitions = map[entities.BudgetStatus][]entities.BudgetStatus{
	entities.BudgetStatusAprovado:  {entities.BudgetStatusPendente},
	entities.BudgetStatusRejeitado: {entities.BudgetStatusPendente},
	entities.BudgetStatusCancelado: {entities.BudgetStatusPendente, entities.BudgetStatusAprovado},
}

func (u *BudgetUseCase) GenerateQuote(ctx context.Context, sessionID string) (entities.Budget, error) {
	summary, err := u.simulations.Summary(ctx, sessionID)
	if err != nil {
		return entities.Budget{}, err
	}
	if !summary.CanGenerateQuote {
		log.Printf("[budget][usecase] quote not allowed session_id=%s", sessionID)
		return entities.Budget{}, ErrQuoteNotAllowed
	}

	now := time.Now().UTC()
	b := entities.Budget{
		ID:                uuid.NewString(),
		SessionID:         strings.TrimSpace(sessionID),
		Client:            *summary.Client,
		Environments:      summary.Environments,
		PaymentMethods:    summary.PaymentMethods,
		Total:             summary.Total,
		DiscountPercent:   summary.DiscountPercent,
		Negotiated:        summary.Negotiated,
		PaymentsTotal:     summary.PaymentsTotal,
		PresentValueTotal: summary.PresentValueTotal,
		Status:            entities.BudgetStatusPendente,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		log.Printf("[budget][usecase] create failed session_id=%s err=%v", sessionID, err)
		return entities.Budget{}, err
	}
	metrics.QuotesGenerated.Inc()
	log.Printf("[budget][usecase] quote generated budget_id=%s client_id=%s negotiated=%s", created.ID, created.Client.ID, created.Negotiated)
	return created, nil
}

func (u *BudgetUseCase) Approve(ctx context.Context, id string) (entities.Budget, error) {
	return u.updateStatus(ctx, id, entities.BudgetStatusAprovado)
}

func (u *BudgetUseCase) Reject(ctx context.Context, id string) (entities.Budget, error) {
	return u.updateStatus(ctx, id, entities.BudgetStatusRejeitado)
}

func (u *BudgetUseCase) Cancel(ctx context.Context, id string) (entities.Budget, error) {
	return u.updateStatus(ctx, id, entities.BudgetStatusCancelado)
}

func (u *BudgetUseCase) updateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if !slices.Contains(budgetTransitions[status], current.Status) {
		log.Printf("[budget][usecase] transition rejected budget_id=%s from=%s to=%s", current.ID, current.Status, status)
		return entities.Budget{}, ErrBudgetStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, status, budgetTransitions[status])
	if errors.Is(err, interfaces.ErrStatusConflict) {
		log.Printf("[budget][usecase] concurrent transition rejected budget_id=%s to=%s", current.ID, status)
		return entities.Budget{}, ErrBudgetStatusTransition
	}
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	log.Printf("[budget][usecase] status updated budget_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.Budget, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}
