package comments

import "context"

// Repository defines the data access interface for comments, replies and
// moderation reports.
type Repository interface {
	// CreateComment inserts a comment and returns its new sequence.
	// Returns ErrBoardNotFound if the board doesn't exist.
	CreateComment(ctx context.Context, comment *Comment) (int64, error)

	// GetComment retrieves one comment.
	// Returns ErrCommentNotFound if it doesn't exist.
	GetComment(ctx context.Context, seq int64) (*Comment, error)

	// ListByBoard retrieves a page of a board's comments, oldest first.
	ListByBoard(ctx context.Context, boardSeq int64, limit, offset int) ([]Comment, error)

	// CountByBoard returns the board's total comment count.
	CountByBoard(ctx context.Context, boardSeq int64) (int64, error)

	// DeleteComment removes a comment. Report rows for it are NOT removed
	// here; resolution is a separate explicit call.
	DeleteComment(ctx context.Context, seq int64) error

	// CreateReply inserts a reply and returns its new sequence.
	// Returns ErrCommentNotFound if the parent comment doesn't exist.
	CreateReply(ctx context.Context, reply *Reply) (int64, error)

	// GetReply retrieves one reply.
	// Returns ErrReplyNotFound if it doesn't exist.
	GetReply(ctx context.Context, seq int64) (*Reply, error)

	// ListReplies retrieves all replies of a comment, oldest first.
	ListReplies(ctx context.Context, commentSeq int64) ([]Reply, error)

	// DeleteReply removes a reply.
	DeleteReply(ctx context.Context, seq int64) error

	// CreateReport inserts a report row and returns its new sequence.
	CreateReport(ctx context.Context, report *Report) (int64, error)

	// ListReports retrieves the report history of one target, oldest first.
	ListReports(ctx context.Context, target Target) ([]Report, error)

	// ListReportedTargets retrieves a page of the moderation queue for one
	// target kind, oldest-reported first.
	ListReportedTargets(ctx context.Context, kind TargetKind, limit, offset int) ([]ReportedTarget, error)

	// CountReportedTargets returns how many distinct targets of the kind
	// have pending reports.
	CountReportedTargets(ctx context.Context, kind TargetKind) (int64, error)

	// DeleteReports removes all report rows for the target and returns how
	// many were removed.
	DeleteReports(ctx context.Context, target Target) (int64, error)
}
