package community

import (
	"errors"
	"fmt"
)

var (
	// ErrBoardNotFound indicates the requested board doesn't exist
	ErrBoardNotFound = errors.New("board not found")

	// ErrUploadFailed indicates the attachment store rejected a file;
	// the whole submission is aborted when this happens
	ErrUploadFailed = errors.New("attachment upload failed")
)

// ValidationError represents invalid caller input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a specific field
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrBoardNotFound)
}
