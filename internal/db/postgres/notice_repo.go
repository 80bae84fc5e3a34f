package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ol7mi/Hows/internal/core/notices"
)

type noticeRepo struct {
	db *sql.DB
}

// NewNoticeRepository creates a new PostgreSQL notice repository
func NewNoticeRepository(db *sql.DB) notices.Repository {
	return &noticeRepo{db: db}
}

func (r *noticeRepo) Create(ctx context.Context, notice *notices.Notice) (int64, error) {
	query := `
		INSERT INTO notices (title, contents, member_id)
		VALUES ($1, $2, $3)
		RETURNING seq, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		notice.Title, notice.Contents, notice.MemberID,
	).Scan(&notice.Seq, &notice.CreatedAt, &notice.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert notice: %w", err)
	}

	return notice.Seq, nil
}

func (r *noticeRepo) Get(ctx context.Context, seq int64) (*notices.Notice, error) {
	query := `
		SELECT seq, title, contents, member_id, view_count, created_at, updated_at
		FROM notices
		WHERE seq = $1
	`

	var n notices.Notice
	err := r.db.QueryRowContext(ctx, query, seq).Scan(
		&n.Seq, &n.Title, &n.Contents, &n.MemberID, &n.ViewCount, &n.CreatedAt, &n.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, notices.ErrNoticeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notice: %w", err)
	}

	return &n, nil
}

func (r *noticeRepo) List(ctx context.Context, limit, offset int) ([]notices.Notice, error) {
	query := `
		SELECT seq, title, contents, member_id, view_count, created_at, updated_at
		FROM notices
		ORDER BY seq DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	defer rows.Close()

	list := []notices.Notice{}
	for rows.Next() {
		var n notices.Notice
		if err := rows.Scan(&n.Seq, &n.Title, &n.Contents, &n.MemberID, &n.ViewCount, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notice: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *noticeRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notices`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count notices: %w", err)
	}
	return count, nil
}

func (r *noticeRepo) Update(ctx context.Context, notice *notices.Notice) error {
	query := `
		UPDATE notices
		SET title = $2, contents = $3, updated_at = NOW()
		WHERE seq = $1
	`

	result, err := r.db.ExecContext(ctx, query, notice.Seq, notice.Title, notice.Contents)
	if err != nil {
		return fmt.Errorf("failed to update notice: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check notice update: %w", err)
	}
	if n == 0 {
		return notices.ErrNoticeNotFound
	}
	return nil
}

func (r *noticeRepo) Delete(ctx context.Context, seq int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notices WHERE seq = $1`, seq)
	if err != nil {
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check notice delete: %w", err)
	}
	if n == 0 {
		return notices.ErrNoticeNotFound
	}
	return nil
}

func (r *noticeRepo) IncrementViewCount(ctx context.Context, seq int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE notices SET view_count = view_count + 1 WHERE seq = $1`, seq)
	if err != nil {
		return fmt.Errorf("failed to increment notice view count: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check notice view count update: %w", err)
	}
	if n == 0 {
		return notices.ErrNoticeNotFound
	}
	return nil
}
