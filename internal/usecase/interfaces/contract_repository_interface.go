package interfaces

import (
	"context"

	"comercial_moveis/internal/domain/entities"
)

// IContractRepository abstracts DynamoDB persistence for Contract.
//
// UpdateStatus only applies when the stored status is one of from, else
// ErrStatusConflict.
type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	UpdateStatus(ctx context.Context, id string, status entities.ContractStatus, from []entities.ContractStatus) (entities.Contract, error)
}
