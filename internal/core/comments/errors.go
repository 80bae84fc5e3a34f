package comments

import (
	"errors"
	"fmt"
)

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrReplyNotFound indicates the requested reply doesn't exist
	ErrReplyNotFound = errors.New("reply not found")

	// ErrBoardNotFound indicates the board being commented on doesn't exist
	ErrBoardNotFound = errors.New("board not found")

	// ErrContentEmpty indicates comment content is empty
	ErrContentEmpty = errors.New("content is required")
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

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrReplyNotFound) ||
		errors.Is(err, ErrBoardNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr) || errors.Is(err, ErrContentEmpty)
}
