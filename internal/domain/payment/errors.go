package payment

import "errors"

var (
	// ErrNotFound is returned when no payment exists for the given id.
	ErrNotFound = errors.New("payment not found")

	// ErrAlreadyCompleted is returned on a repeated completion attempt.
	// Completion is deliberately not idempotent: calling it twice is an
	// error, which also guarantees a single webhook per payment.
	ErrAlreadyCompleted = errors.New("payment already completed")
)

// ValidationError reports one unmet input constraint on Create.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
