package community

import "context"

// AttachmentStore persists raw file bytes outside the database and returns a
// stable URL for the stored file. Store writes are not transactional: files
// written during a submission that later aborts stay behind and are reclaimed
// by an out-of-band sweep, never by the pipeline itself.
type AttachmentStore interface {
	// Store writes data durably under the given classification code and
	// returns the public reference for it.
	Store(ctx context.Context, data []byte, contentType, classificationCode string) (string, error)
}

// Repository defines the data access interface for boards, images and tags.
type Repository interface {
	// BeginSubmission opens the transaction scope for one submission.
	// All row creation for the submission happens through the returned
	// Submission and becomes visible only on Commit.
	BeginSubmission(ctx context.Context) (Submission, error)

	// GetBoard retrieves one board by sequence.
	// Returns ErrBoardNotFound if it does not exist.
	GetBoard(ctx context.Context, seq int64) (*Board, error)

	// ListBoards retrieves a page of boards, newest first, each with its
	// image URLs in display order.
	ListBoards(ctx context.Context, limit, offset int) ([]BoardSummary, error)

	// ListImages retrieves a board's images ordered by display order.
	ListImages(ctx context.Context, boardSeq int64) ([]BoardImage, error)

	// ListTags retrieves all tags on a board's images.
	ListTags(ctx context.Context, boardSeq int64) ([]BoardTag, error)

	// IncrementViewCount bumps the board's view counter.
	IncrementViewCount(ctx context.Context, seq int64) error

	// DeleteBoard removes a board; images and tags go with it.
	DeleteBoard(ctx context.Context, seq int64) error
}

// Submission is the transaction handle of one board submission. Creation
// methods write uncommitted rows; Commit makes them all visible at once and
// Rollback discards them all. Rollback after Commit is a no-op, so callers
// can defer it unconditionally.
type Submission interface {
	// CreateBoard inserts the board row and returns its new sequence.
	CreateBoard(ctx context.Context, board *Board) (int64, error)

	// CreateImage inserts an image row referencing an already-created board.
	CreateImage(ctx context.Context, image *BoardImage) (int64, error)

	// CreateTag inserts a tag row referencing an already-created image.
	CreateTag(ctx context.Context, tag *BoardTag) (int64, error)

	Commit() error
	Rollback() error
}
