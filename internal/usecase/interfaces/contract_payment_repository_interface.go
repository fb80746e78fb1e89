package interfaces

import (
	"context"

	"comercial_moveis/internal/domain/entities"
)

// IContractPaymentRepository persists contract payments and the per-method
// charge guard.
//
// ClaimMethod atomically reserves a payment method before the provider is
// called; it fails with ErrMethodAlreadyPaid or ErrChargeInProgress. SettleMethod
// ends the reservation: approved keeps the method marked as paid, otherwise the
// method is released for a new attempt.
type IContractPaymentRepository interface {
	Create(ctx context.Context, p entities.ContractPayment) (entities.ContractPayment, error)
	GetByID(ctx context.Context, id string) (entities.ContractPayment, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.ContractPayment, error)
	ClaimMethod(ctx context.Context, contractID, methodID string) error
	SettleMethod(ctx context.Context, contractID, methodID, paymentID string, approved bool) error
}
