package budget

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrInvalidDiscount     = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidInstallments = errors.New("installments cannot be negative")
	ErrNegativeRate        = errors.New("monthly rate cannot be negative")
)

// ValidationError reports a rejected setter input. It matches both ErrValidation
// and the specific cause with errors.Is.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

func invalid(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}
