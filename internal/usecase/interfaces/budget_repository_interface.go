package interfaces

import (
	"context"

	"comercial_moveis/internal/domain/entities"
)

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Lookups of a missing id return the zero Budget and a nil error. UpdateStatus
// only applies when the stored status is one of from, else ErrStatusConflict.
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Budget, error)
	UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus, from []entities.BudgetStatus) (entities.Budget, error)
}
