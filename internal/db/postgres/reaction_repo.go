package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ol7mi/Hows/internal/core/reactions"
)

type reactionRepo struct {
	db *sql.DB
}

// NewReactionRepository creates a new PostgreSQL reaction repository.
//
// The reactions table carries a uniqueness constraint over
// (member_id, subject_kind, subject_seq, kind); that constraint, together
// with the idempotent insert and delete below, is what keeps concurrent
// toggles from ever producing duplicate active rows.
func NewReactionRepository(db *sql.DB) reactions.Repository {
	return &reactionRepo{db: db}
}

func (r *reactionRepo) Exists(ctx context.Context, memberID string, subject reactions.Subject, kind reactions.Kind) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM reactions
			WHERE member_id = $1 AND subject_kind = $2 AND subject_seq = $3 AND kind = $4
		)
	`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, memberID, subject.Kind, subject.Seq, kind).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check reaction: %w", err)
	}
	return exists, nil
}

// Insert creates the reaction. A concurrent toggle that already inserted the
// same tuple makes this a no-op instead of an error.
func (r *reactionRepo) Insert(ctx context.Context, memberID string, subject reactions.Subject, kind reactions.Kind) error {
	query := `
		INSERT INTO reactions (member_id, subject_kind, subject_seq, kind)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (member_id, subject_kind, subject_seq, kind) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, memberID, subject.Kind, subject.Seq, kind); err != nil {
		return fmt.Errorf("failed to insert reaction: %w", err)
	}
	return nil
}

// Delete removes the reaction. Zero rows affected means a concurrent toggle
// got there first; the resulting state is inactive either way.
func (r *reactionRepo) Delete(ctx context.Context, memberID string, subject reactions.Subject, kind reactions.Kind) error {
	query := `
		DELETE FROM reactions
		WHERE member_id = $1 AND subject_kind = $2 AND subject_seq = $3 AND kind = $4
	`

	if _, err := r.db.ExecContext(ctx, query, memberID, subject.Kind, subject.Seq, kind); err != nil {
		return fmt.Errorf("failed to delete reaction: %w", err)
	}
	return nil
}

func (r *reactionRepo) Count(ctx context.Context, subject reactions.Subject, kind reactions.Kind) (int64, error) {
	query := `
		SELECT COUNT(*) FROM reactions
		WHERE subject_kind = $1 AND subject_seq = $2 AND kind = $3
	`

	var count int64
	err := r.db.QueryRowContext(ctx, query, subject.Kind, subject.Seq, kind).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reactions: %w", err)
	}
	return count, nil
}
