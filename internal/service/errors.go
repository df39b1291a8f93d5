package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrNoSavingsGoals     = errors.New("no savings goals found for this user")
)

// ValidationError reports a rejected input. It is always raised before any
// write happens, so a validation failure never leaves partial state.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
