package comments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

const (
	// maxContentLength caps comment and reply bodies.
	maxContentLength = 2000

	defaultPageSize = 20
	maxPageSize     = 100
)

// Service defines the business logic interface for comments, replies and
// the moderation ledger.
type Service interface {
	// WriteComment creates a comment on a board.
	WriteComment(ctx context.Context, boardSeq int64, memberID, contents string) (int64, error)

	// ListComments retrieves a page of a board's comments with the total.
	ListComments(ctx context.Context, boardSeq int64, page, size int) (*CommentPage, error)

	// DeleteComment removes a comment. Reports against it stay until a
	// moderator resolves them; there is no implicit cascade.
	DeleteComment(ctx context.Context, seq int64) error

	// WriteReply creates a reply under a comment.
	WriteReply(ctx context.Context, commentSeq int64, memberID, contents string) (int64, error)

	// ListReplies retrieves a comment's replies, oldest first.
	ListReplies(ctx context.Context, commentSeq int64) ([]Reply, error)

	// DeleteReply removes a reply.
	DeleteReply(ctx context.Context, seq int64) error

	// Report records a moderation report against a comment or reply.
	// Reporting a missing target is a validation error.
	Report(ctx context.Context, target Target, reportCode, memberID string) (int64, error)

	// Resolve deletes all report rows for the target. Terminal and
	// non-reversible. Deleting the target itself is a separate call.
	Resolve(ctx context.Context, target Target) error

	// ListReported retrieves a page of the moderation queue, oldest first.
	ListReported(ctx context.Context, kind TargetKind, page, size int) (*ReportedPage, error)

	// ReportsFor retrieves the report history of one target.
	ReportsFor(ctx context.Context, target Target) ([]Report, error)
}

type commentService struct {
	repo   Repository
	logger *slog.Logger
}

// NewCommentService creates a new comment service instance
func NewCommentService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:   repo,
		logger: logger,
	}
}

func (s *commentService) WriteComment(ctx context.Context, boardSeq int64, memberID, contents string) (int64, error) {
	if boardSeq <= 0 {
		return 0, NewValidationError("boardSeq", "must be positive")
	}
	if err := validateAuthor(memberID, contents); err != nil {
		return 0, err
	}

	seq, err := s.repo.CreateComment(ctx, &Comment{
		BoardSeq: boardSeq,
		MemberID: memberID,
		Contents: contents,
	})
	if err != nil {
		if errors.Is(err, ErrBoardNotFound) {
			return 0, NewValidationError("boardSeq", "board does not exist")
		}
		return 0, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("comment written", "commentSeq", seq, "boardSeq", boardSeq, "memberId", memberID)
	return seq, nil
}

func (s *commentService) ListComments(ctx context.Context, boardSeq int64, page, size int) (*CommentPage, error) {
	if boardSeq <= 0 {
		return nil, NewValidationError("boardSeq", "must be positive")
	}
	page, size = clampPage(page, size)

	list, err := s.repo.ListByBoard(ctx, boardSeq, size, (page-1)*size)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	total, err := s.repo.CountByBoard(ctx, boardSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	return &CommentPage{Comments: list, Total: total, Page: page, Size: size}, nil
}

func (s *commentService) DeleteComment(ctx context.Context, seq int64) error {
	if seq <= 0 {
		return NewValidationError("commentSeq", "must be positive")
	}
	if err := s.repo.DeleteComment(ctx, seq); err != nil {
		return err
	}
	s.logger.Info("comment deleted", "commentSeq", seq)
	return nil
}

func (s *commentService) WriteReply(ctx context.Context, commentSeq int64, memberID, contents string) (int64, error) {
	if commentSeq <= 0 {
		return 0, NewValidationError("commentSeq", "must be positive")
	}
	if err := validateAuthor(memberID, contents); err != nil {
		return 0, err
	}

	seq, err := s.repo.CreateReply(ctx, &Reply{
		CommentSeq: commentSeq,
		MemberID:   memberID,
		Contents:   contents,
	})
	if err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			return 0, NewValidationError("commentSeq", "comment does not exist")
		}
		return 0, fmt.Errorf("failed to create reply: %w", err)
	}

	s.logger.Info("reply written", "replySeq", seq, "commentSeq", commentSeq, "memberId", memberID)
	return seq, nil
}

func (s *commentService) ListReplies(ctx context.Context, commentSeq int64) ([]Reply, error) {
	if commentSeq <= 0 {
		return nil, NewValidationError("commentSeq", "must be positive")
	}
	return s.repo.ListReplies(ctx, commentSeq)
}

func (s *commentService) DeleteReply(ctx context.Context, seq int64) error {
	if seq <= 0 {
		return NewValidationError("replySeq", "must be positive")
	}
	if err := s.repo.DeleteReply(ctx, seq); err != nil {
		return err
	}
	s.logger.Info("reply deleted", "replySeq", seq)
	return nil
}

func (s *commentService) Report(ctx context.Context, target Target, reportCode, memberID string) (int64, error) {
	if err := validateTarget(target); err != nil {
		return 0, err
	}
	if reportCode == "" {
		return 0, NewValidationError("reportCode", "required")
	}
	if memberID == "" {
		return 0, NewValidationError("memberId", "required")
	}

	// Reporting a missing target is caller error, not a silent no-op
	if err := s.targetExists(ctx, target); err != nil {
		if IsNotFound(err) {
			return 0, NewValidationError("target", "does not exist")
		}
		return 0, err
	}

	seq, err := s.repo.CreateReport(ctx, &Report{
		TargetKind: target.Kind,
		TargetSeq:  target.Seq,
		ReportCode: reportCode,
		MemberID:   memberID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create report: %w", err)
	}

	s.logger.Info("content reported",
		"reportSeq", seq,
		"targetKind", target.Kind,
		"targetSeq", target.Seq,
		"reportCode", reportCode,
		"memberId", memberID)
	return seq, nil
}

func (s *commentService) Resolve(ctx context.Context, target Target) error {
	if err := validateTarget(target); err != nil {
		return err
	}

	removed, err := s.repo.DeleteReports(ctx, target)
	if err != nil {
		return fmt.Errorf("failed to resolve reports: %w", err)
	}

	s.logger.Info("reports resolved",
		"targetKind", target.Kind,
		"targetSeq", target.Seq,
		"removed", removed)
	return nil
}

func (s *commentService) ListReported(ctx context.Context, kind TargetKind, page, size int) (*ReportedPage, error) {
	if kind != TargetComment && kind != TargetReply {
		return nil, NewValidationError("targetKind", "must be comment or reply")
	}
	page, size = clampPage(page, size)

	targets, err := s.repo.ListReportedTargets(ctx, kind, size, (page-1)*size)
	if err != nil {
		return nil, fmt.Errorf("failed to list reported targets: %w", err)
	}
	total, err := s.repo.CountReportedTargets(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to count reported targets: %w", err)
	}

	return &ReportedPage{Targets: targets, Total: total, Page: page, Size: size}, nil
}

func (s *commentService) ReportsFor(ctx context.Context, target Target) ([]Report, error) {
	if err := validateTarget(target); err != nil {
		return nil, err
	}
	return s.repo.ListReports(ctx, target)
}

// targetExists checks the reported content is still there.
func (s *commentService) targetExists(ctx context.Context, target Target) error {
	switch target.Kind {
	case TargetComment:
		_, err := s.repo.GetComment(ctx, target.Seq)
		return err
	case TargetReply:
		_, err := s.repo.GetReply(ctx, target.Seq)
		return err
	}
	return NewValidationError("targetKind", "must be comment or reply")
}

func validateAuthor(memberID, contents string) error {
	if memberID == "" {
		return NewValidationError("memberId", "required")
	}
	if contents == "" {
		return ErrContentEmpty
	}
	if len(contents) > maxContentLength {
		return NewValidationError("contents", fmt.Sprintf("exceeds %d characters", maxContentLength))
	}
	return nil
}

func validateTarget(target Target) error {
	if target.Kind != TargetComment && target.Kind != TargetReply {
		return NewValidationError("targetKind", "must be comment or reply")
	}
	if target.Seq <= 0 {
		return NewValidationError("targetSeq", "must be positive")
	}
	return nil
}

func clampPage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}
	return page, size
}
