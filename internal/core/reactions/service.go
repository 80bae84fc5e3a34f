package reactions

import (
	"context"
	"fmt"
	"log/slog"
)

// Service defines the business logic interface for the toggle engine
type Service interface {
	// Toggle flips the member's reaction on the subject and returns the
	// resulting state together with the subject's fresh count.
	//
	// The flip itself is applied exactly once per call; the race between
	// concurrent toggles on the same tuple is owned by the repository's
	// uniqueness constraint. Semantics are at-least-applied: if the count
	// query fails after the flip succeeded, the flip stands and the error
	// surfaces to the caller.
	Toggle(ctx context.Context, memberID string, subject Subject, kind Kind) (*ToggleResult, error)

	// State reports whether the member currently has the reaction active,
	// without flipping anything. Used to render initial button state.
	State(ctx context.Context, memberID string, subject Subject, kind Kind) (bool, error)

	// Count returns the subject's current count for the kind.
	Count(ctx context.Context, subject Subject, kind Kind) (int64, error)
}

type reactionService struct {
	repo   Repository
	logger *slog.Logger
}

// NewReactionService creates a new reaction service instance
func NewReactionService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &reactionService{
		repo:   repo,
		logger: logger,
	}
}

func (s *reactionService) Toggle(ctx context.Context, memberID string, subject Subject, kind Kind) (*ToggleResult, error) {
	if err := validate(memberID, subject, kind); err != nil {
		return nil, err
	}

	active, err := s.repo.Exists(ctx, memberID, subject, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to check reaction state: %w", err)
	}

	if active {
		if err := s.repo.Delete(ctx, memberID, subject, kind); err != nil {
			return nil, fmt.Errorf("failed to remove reaction: %w", err)
		}
	} else {
		if err := s.repo.Insert(ctx, memberID, subject, kind); err != nil {
			return nil, fmt.Errorf("failed to add reaction: %w", err)
		}
	}
	newState := !active

	count, err := s.repo.Count(ctx, subject, kind)
	if err != nil {
		// The flip already happened and is not rolled back.
		return nil, fmt.Errorf("reaction applied but count query failed: %w", err)
	}

	s.logger.Info("reaction toggled",
		"memberId", memberID,
		"subjectKind", subject.Kind,
		"subjectSeq", subject.Seq,
		"kind", kind,
		"active", newState,
		"count", count)

	return &ToggleResult{Active: newState, Count: count}, nil
}

func (s *reactionService) State(ctx context.Context, memberID string, subject Subject, kind Kind) (bool, error) {
	if err := validate(memberID, subject, kind); err != nil {
		return false, err
	}
	return s.repo.Exists(ctx, memberID, subject, kind)
}

func (s *reactionService) Count(ctx context.Context, subject Subject, kind Kind) (int64, error) {
	if subject.Seq <= 0 {
		return 0, ErrInvalidSubject
	}
	if kind != KindLike && kind != KindBookmark {
		return 0, ErrInvalidKind
	}
	return s.repo.Count(ctx, subject, kind)
}

func validate(memberID string, subject Subject, kind Kind) error {
	if memberID == "" {
		return ErrMemberRequired
	}
	if subject.Seq <= 0 {
		return ErrInvalidSubject
	}
	switch subject.Kind {
	case SubjectBoard:
	case SubjectComment:
		// Comments can be liked but not bookmarked
		if kind == KindBookmark {
			return ErrInvalidSubject
		}
	default:
		return ErrInvalidSubject
	}
	if kind != KindLike && kind != KindBookmark {
		return ErrInvalidKind
	}
	return nil
}
