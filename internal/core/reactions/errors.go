package reactions

import "errors"

var (
	// ErrInvalidKind indicates the reaction kind is not "like" or "bookmark"
	ErrInvalidKind = errors.New("invalid reaction kind")

	// ErrInvalidSubject indicates the subject reference is malformed,
	// or the kind is not allowed on that subject (bookmarks are board-only)
	ErrInvalidSubject = errors.New("invalid reaction subject")

	// ErrMemberRequired indicates no member id was supplied
	ErrMemberRequired = errors.New("member id is required")
)

// IsValidationError checks if an error is caller-correctable input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrInvalidSubject) ||
		errors.Is(err, ErrMemberRequired)
}
