package interfaces

import "errors"

var (
	// ErrStatusConflict is returned by UpdateStatus when the stored status is not
	// one of the allowed source statuses.
	ErrStatusConflict = errors.New("stored status does not allow the update")

	// ErrMethodAlreadyPaid and ErrChargeInProgress are returned by ClaimMethod.
	ErrMethodAlreadyPaid = errors.New("payment method already paid")
	ErrChargeInProgress  = errors.New("payment method charge in progress")
)
