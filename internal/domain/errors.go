package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
)

var (
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTooManyAttempts    = errors.New("too many sign-in attempts, try again later")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrRevocationDisabled = errors.New("token revocation is disabled")
)

var (
	ErrValidation = errors.New("validation error")
	ErrStorage    = errors.New("storage error")
)

// ValidationError names the offending input field. Its message is meant
// to be shown to the caller verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StorageError wraps a failed or malformed storage call.
type StorageError struct {
	Op  string
	Err error
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return "failed to " + e.Op + ": " + e.Err.Error()
}

// Message is the caller-facing text without the driver error.
func (e *StorageError) Message() string {
	return "failed to " + e.Op
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
