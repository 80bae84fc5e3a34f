package community

import (
	"context"
	"fmt"
	"log/slog"
)

// boardImageClassCode is the attachment store classification for community
// board images.
const boardImageClassCode = "F2"

// Service defines the business logic interface for community boards
type Service interface {
	// SubmitPost creates one board plus its ordered images and per-image
	// tags as a single atomic unit and returns the new board sequence.
	//
	// All database rows of a submission commit together or not at all.
	// Attachment store writes are the documented exception: files stored
	// before an abort are not removed and must be reclaimed out of band.
	SubmitPost(ctx context.Context, req SubmitRequest) (int64, error)

	// GetBoard retrieves one board.
	GetBoard(ctx context.Context, seq int64) (*Board, error)

	// ListBoards retrieves a feed page, newest first.
	ListBoards(ctx context.Context, page, size int) ([]BoardSummary, error)

	// GetBoardMedia retrieves a board's images and tags for the detail view.
	GetBoardMedia(ctx context.Context, boardSeq int64) (*BoardMedia, error)

	// IncrementViewCount bumps a board's view counter.
	IncrementViewCount(ctx context.Context, seq int64) error

	// DeleteBoard removes a board with its images and tags.
	DeleteBoard(ctx context.Context, seq int64) error
}

// communityService implements the Service interface
type communityService struct {
	repo   Repository
	store  AttachmentStore
	logger *slog.Logger
}

// NewCommunityService creates a new community service instance
func NewCommunityService(repo Repository, store AttachmentStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &communityService{
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

// SubmitPost runs the submission pipeline:
//  1. create the board row
//  2. for each attachment, in caller order: store the file, create the image
//     row, create its tag rows
//  3. commit
//
// Processing is strictly sequential in the caller-supplied order; later tag
// rows depend on earlier image sequences, and an abort must leave no partial
// state. Any failure rolls back every row created so far in this call.
func (s *communityService) SubmitPost(ctx context.Context, req SubmitRequest) (int64, error) {
	if err := validateSubmit(req); err != nil {
		return 0, err
	}

	sub, err := s.repo.BeginSubmission(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin submission: %w", err)
	}
	defer func() {
		if rbErr := sub.Rollback(); rbErr != nil {
			s.logger.Error("failed to rollback submission", "error", rbErr)
		}
	}()

	boardSeq, err := sub.CreateBoard(ctx, &Board{
		HousingTypeCode: req.HousingTypeCode,
		SpaceTypeCode:   req.SpaceTypeCode,
		AreaSizeCode:    req.AreaSizeCode,
		Contents:        req.Contents,
		MemberID:        req.MemberID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create board: %w", err)
	}

	s.logger.Info("board created",
		"boardSeq", boardSeq,
		"memberId", req.MemberID,
		"attachments", len(req.Attachments))

	for i, att := range req.Attachments {
		imageURL, err := s.store.Store(ctx, att.Data, att.ContentType, boardImageClassCode)
		if err != nil {
			s.logger.Warn("attachment upload failed, aborting submission",
				"boardSeq", boardSeq,
				"index", i,
				"error", err)
			return 0, fmt.Errorf("attachment %d: %w", i, ErrUploadFailed)
		}

		imageSeq, err := sub.CreateImage(ctx, &BoardImage{
			BoardSeq: boardSeq,
			ImageURL: imageURL,
			Order:    att.Order,
		})
		if err != nil {
			return 0, fmt.Errorf("failed to create image %d: %w", i, err)
		}

		for _, tag := range att.Tags {
			if _, err := sub.CreateTag(ctx, &BoardTag{
				BoardImageSeq: imageSeq,
				ProductSeq:    tag.ProductSeq,
				Left:          tag.Left,
				Top:           tag.Top,
			}); err != nil {
				return 0, fmt.Errorf("failed to create tag on image %d: %w", i, err)
			}
		}

		s.logger.Info("attachment stored",
			"boardSeq", boardSeq,
			"imageSeq", imageSeq,
			"order", att.Order,
			"tags", len(att.Tags))
	}

	if err := sub.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit submission: %w", err)
	}

	s.logger.Info("submission committed", "boardSeq", boardSeq)
	return boardSeq, nil
}

func validateSubmit(req SubmitRequest) error {
	if req.MemberID == "" {
		return NewValidationError("memberId", "required")
	}
	if req.HousingTypeCode == "" {
		return NewValidationError("housingTypeCode", "required")
	}
	if req.SpaceTypeCode == "" {
		return NewValidationError("spaceTypeCode", "required")
	}
	if req.AreaSizeCode == "" {
		return NewValidationError("areaSizeCode", "required")
	}
	if req.Contents == "" && len(req.Attachments) == 0 {
		return NewValidationError("contents", "board needs contents or at least one image")
	}
	for i, att := range req.Attachments {
		if len(att.Data) == 0 {
			return NewValidationError("files", fmt.Sprintf("attachment %d is empty", i))
		}
	}
	return nil
}

func (s *communityService) GetBoard(ctx context.Context, seq int64) (*Board, error) {
	if seq <= 0 {
		return nil, NewValidationError("boardSeq", "must be positive")
	}
	return s.repo.GetBoard(ctx, seq)
}

func (s *communityService) ListBoards(ctx context.Context, page, size int) ([]BoardSummary, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	return s.repo.ListBoards(ctx, size, (page-1)*size)
}

func (s *communityService) GetBoardMedia(ctx context.Context, boardSeq int64) (*BoardMedia, error) {
	if boardSeq <= 0 {
		return nil, NewValidationError("boardSeq", "must be positive")
	}

	images, err := s.repo.ListImages(ctx, boardSeq)
	if err != nil {
		return nil, err
	}
	tags, err := s.repo.ListTags(ctx, boardSeq)
	if err != nil {
		return nil, err
	}

	return &BoardMedia{Images: images, Tags: tags}, nil
}

func (s *communityService) IncrementViewCount(ctx context.Context, seq int64) error {
	if seq <= 0 {
		return NewValidationError("boardSeq", "must be positive")
	}
	return s.repo.IncrementViewCount(ctx, seq)
}

func (s *communityService) DeleteBoard(ctx context.Context, seq int64) error {
	if seq <= 0 {
		return NewValidationError("boardSeq", "must be positive")
	}
	if err := s.repo.DeleteBoard(ctx, seq); err != nil {
		return err
	}
	s.logger.Info("board deleted", "boardSeq", seq)
	return nil
}
