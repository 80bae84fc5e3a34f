package notices

import (
	"context"
	"fmt"
	"log/slog"
)

// Repository defines the data access interface for notices.
type Repository interface {
	Create(ctx context.Context, notice *Notice) (int64, error)
	Get(ctx context.Context, seq int64) (*Notice, error)
	List(ctx context.Context, limit, offset int) ([]Notice, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, notice *Notice) error
	Delete(ctx context.Context, seq int64) error
	IncrementViewCount(ctx context.Context, seq int64) error
}

// Service defines the business logic interface for the admin notice board.
type Service interface {
	Create(ctx context.Context, title, contents, memberID string) (int64, error)
	// Get retrieves one notice, bumping its view counter first when
	// countView is set (the detail page does, admin edit views don't).
	Get(ctx context.Context, seq int64, countView bool) (*Notice, error)
	List(ctx context.Context, page, size int) ([]Notice, int64, error)
	Update(ctx context.Context, seq int64, title, contents string) error
	Delete(ctx context.Context, seq int64) error
}

type noticeService struct {
	repo   Repository
	logger *slog.Logger
}

// NewNoticeService creates a new notice service instance
func NewNoticeService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &noticeService{repo: repo, logger: logger}
}

func (s *noticeService) Create(ctx context.Context, title, contents, memberID string) (int64, error) {
	if title == "" {
		return 0, NewValidationError("title", "required")
	}
	if contents == "" {
		return 0, NewValidationError("contents", "required")
	}
	if memberID == "" {
		return 0, NewValidationError("memberId", "required")
	}

	seq, err := s.repo.Create(ctx, &Notice{Title: title, Contents: contents, MemberID: memberID})
	if err != nil {
		return 0, fmt.Errorf("failed to create notice: %w", err)
	}

	s.logger.Info("notice created", "noticeSeq", seq, "memberId", memberID)
	return seq, nil
}

func (s *noticeService) Get(ctx context.Context, seq int64, countView bool) (*Notice, error) {
	if seq <= 0 {
		return nil, NewValidationError("noticeSeq", "must be positive")
	}
	if countView {
		if err := s.repo.IncrementViewCount(ctx, seq); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, seq)
}

func (s *noticeService) List(ctx context.Context, page, size int) ([]Notice, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}

	list, err := s.repo.List(ctx, size, (page-1)*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notices: %w", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notices: %w", err)
	}
	return list, total, nil
}

func (s *noticeService) Update(ctx context.Context, seq int64, title, contents string) error {
	if seq <= 0 {
		return NewValidationError("noticeSeq", "must be positive")
	}
	if title == "" {
		return NewValidationError("title", "required")
	}
	if contents == "" {
		return NewValidationError("contents", "required")
	}

	if err := s.repo.Update(ctx, &Notice{Seq: seq, Title: title, Contents: contents}); err != nil {
		return err
	}
	s.logger.Info("notice updated", "noticeSeq", seq)
	return nil
}

func (s *noticeService) Delete(ctx context.Context, seq int64) error {
	if seq <= 0 {
		return NewValidationError("noticeSeq", "must be positive")
	}
	if err := s.repo.Delete(ctx, seq); err != nil {
		return err
	}
	s.logger.Info("notice deleted", "noticeSeq", seq)
	return nil
}
