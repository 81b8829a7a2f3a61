package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrIntegrity  = errors.New("integrity violation")
)

// AppError carries a sentinel (for errors.Is dispatch) plus a human-readable
// message. Handlers map the sentinel to an HTTP status and send the message.
type AppError struct {
	Err     error  // actual error
	Message string // Human-readable error message
	Field   string // Optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string, id int64) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %d", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Integrity flags store-level corruption — e.g. a persisted snapshot payload
// that no longer parses. Distinct from validation: the caller did nothing
// wrong, the stored state is bad.
func Integrity(resource string, id int64, detail string) *AppError {
	return &AppError{
		Err:     ErrIntegrity,
		Message: fmt.Sprintf("%s %d is corrupt: %s", resource, id, detail),
	}
}
