package reactions

import "context"

// Repository defines the data access interface for reactions.
//
// The backing store owns the concurrency guarantee: a uniqueness constraint
// over (member, subject kind, subject seq, kind) makes Insert idempotent and
// keeps concurrent toggles from ever producing two active rows. The service
// deliberately does not try to serialize toggles itself.
type Repository interface {
	// Exists reports whether an active reaction exists for the tuple.
	Exists(ctx context.Context, memberID string, subject Subject, kind Kind) (bool, error)

	// Insert creates the reaction. Inserting a tuple that already exists
	// is a no-op, not an error.
	Insert(ctx context.Context, memberID string, subject Subject, kind Kind) error

	// Delete removes the reaction. Deleting a tuple that is already gone
	// is a no-op, not an error.
	Delete(ctx context.Context, memberID string, subject Subject, kind Kind) error

	// Count returns the number of active reactions of this kind on the
	// subject.
	Count(ctx context.Context, subject Subject, kind Kind) (int64, error)
}
