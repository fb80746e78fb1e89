package usecase

import (
	"context"
	"errors"
	"fmt"
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
	ErrContractNotFound         = errors.New("contract not found")
	ErrInvalidContractID        = errors.New("invalid contract id")
	ErrContractNotAllowed       = errors.New("contract requires a quote-ready simulation with a reconciled payment plan")
	ErrContractStatusTransition = errors.New("contract status transition not allowed")
	ErrBudgetNotLinkable        = errors.New("budget cannot be linked to a contract")
)

// IContractUseCase generates and tracks contracts.
//
// A contract freezes the simulation once the payment methods reconcile with
// the negotiated value. It may reference the quote it came from.
type IContractUseCase interface {
	GenerateContract(ctx context.Context, sessionID, budgetID string) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	Sign(ctx context.Context, id string) (entities.Contract, error)
	Cancel(ctx context.Context, id string) (entities.Contract, error)
}

type ContractUseCase struct {
	repo        interfaces.IContractRepository
	budgets     interfaces.IBudgetRepository
	simulations ISimulationUseCase
	now         func() time.Time
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(repo interfaces.IContractRepository, budgets interfaces.IBudgetRepository, simulations ISimulationUseCase) *ContractUseCase {
	return &ContractUseCase{repo: repo, budgets: budgets, simulations: simulations, now: time.Now}
}

var contractTransitions = map[entities.ContractStatus][]entities.ContractStatus{
	entities.ContractStatusAssinado:  {entities.ContractStatusGerado},
	entities.ContractStatusCancelado: {entities.ContractStatusGerado, entities.ContractStatusAssinado},
}

// GenerateContract builds the contract from the session summary. budgetID is
// optional; when given the quote must exist, belong to the same client and be
// pending or approved.
func (u *ContractUseCase) GenerateContract(ctx context.Context, sessionID, budgetID string) (entities.Contract, error) {
	summary, err := u.simulations.Summary(ctx, sessionID)
	if err != nil {
		return entities.Contract{}, err
	}
	if !summary.CanGenerateContract {
		log.Printf("[contract][usecase] contract not allowed session_id=%s remaining=%s", sessionID, summary.Remaining)
		return entities.Contract{}, ErrContractNotAllowed
	}

	budgetID = strings.TrimSpace(budgetID)
	if budgetID != "" {
		b, err := u.budgets.GetByID(ctx, budgetID)
		if err != nil {
			return entities.Contract{}, err
		}
		if b.ID == "" {
			return entities.Contract{}, ErrBudgetNotFound
		}
		if b.Client.ID != summary.Client.ID || (b.Status != entities.BudgetStatusPendente && b.Status != entities.BudgetStatusAprovado) {
			log.Printf("[contract][usecase] budget not linkable budget_id=%s status=%s", b.ID, b.Status)
			return entities.Contract{}, ErrBudgetNotLinkable
		}
	}

	now := u.now().UTC()
	id := uuid.New()
	c := entities.Contract{
		ID:                id.String(),
		Number:            contractNumber(now, id),
		BudgetID:          budgetID,
		SessionID:         strings.TrimSpace(sessionID),
		Client:            *summary.Client,
		Environments:      summary.Environments,
		PaymentMethods:    summary.PaymentMethods,
		Total:             summary.Total,
		DiscountPercent:   summary.DiscountPercent,
		Negotiated:        summary.Negotiated,
		PresentValueTotal: summary.PresentValueTotal,
		Status:            entities.ContractStatusGerado,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[contract][usecase] create failed session_id=%s err=%v", sessionID, err)
		return entities.Contract{}, err
	}
	metrics.ContractsGenerated.Inc()
	log.Printf("[contract][usecase] contract generated contract_id=%s number=%s negotiated=%s", created.ID, created.Number, created.Negotiated)
	return created, nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func (u *ContractUseCase) Sign(ctx context.Context, id string) (entities.Contract, error) {
	return u.updateStatus(ctx, id, entities.ContractStatusAssinado)
}

func (u *ContractUseCase) Cancel(ctx context.Context, id string) (entities.Contract, error) {
	return u.updateStatus(ctx, id, entities.ContractStatusCancelado)
}

func (u *ContractUseCase) updateStatus(ctx context.Context, id string, status entities.ContractStatus) (entities.Contract, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if !slices.Contains(contractTransitions[status], current.Status) {
		log.Printf("[contract][usecase] transition rejected contract_id=%s from=%s to=%s", current.ID, current.Status, status)
		return entities.Contract{}, ErrContractStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, status, contractTransitions[status])
	if errors.Is(err, interfaces.ErrStatusConflict) {
		log.Printf("[contract][usecase] concurrent transition rejected contract_id=%s to=%s", current.ID, status)
		return entities.Contract{}, ErrContractStatusTransition
	}
	if err != nil {
		return entities.Contract{}, err
	}
	if updated.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	log.Printf("[contract][usecase] status updated contract_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

// contractNumber is CT-YYYYMMDD-XXXXXXXX, the suffix taken from the contract id.
func contractNumber(at time.Time, id uuid.UUID) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
	return fmt.Sprintf("CT-%s-%s", at.Format("20060102"), suffix)
}
