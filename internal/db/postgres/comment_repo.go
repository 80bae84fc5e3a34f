package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/ol7mi/Hows/internal/core/comments"
)

type commentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &commentRepo{db: db}
}

func (r *commentRepo) CreateComment(ctx context.Context, comment *comments.Comment) (int64, error) {
	query := `
		INSERT INTO comments (board_seq, member_id, contents)
		VALUES ($1, $2, $3)
		RETURNING seq, created_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		comment.BoardSeq, comment.MemberID, comment.Contents,
	).Scan(&comment.Seq, &comment.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return 0, comments.ErrBoardNotFound
		}
		return 0, fmt.Errorf("failed to insert comment: %w", err)
	}

	return comment.Seq, nil
}

func (r *commentRepo) GetComment(ctx context.Context, seq int64) (*comments.Comment, error) {
	query := `
		SELECT seq, board_seq, member_id, contents, created_at
		FROM comments
		WHERE seq = $1
	`

	var c comments.Comment
	err := r.db.QueryRowContext(ctx, query, seq).Scan(
		&c.Seq, &c.BoardSeq, &c.MemberID, &c.Contents, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &c, nil
}

func (r *commentRepo) ListByBoard(ctx context.Context, boardSeq int64, limit, offset int) ([]comments.Comment, error) {
	query := `
		SELECT seq, board_seq, member_id, contents, created_at
		FROM comments
		WHERE board_seq = $1
		ORDER BY seq
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, boardSeq, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	list := []comments.Comment{}
	for rows.Next() {
		var c comments.Comment
		if err := rows.Scan(&c.Seq, &c.BoardSeq, &c.MemberID, &c.Contents, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *commentRepo) CountByBoard(ctx context.Context, boardSeq int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE board_seq = $1`, boardSeq).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

// DeleteComment removes the comment and its replies (ON DELETE CASCADE).
// Reports stay; they reference the target polymorphically and are cleared by
// an explicit resolve.
func (r *commentRepo) DeleteComment(ctx context.Context, seq int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE seq = $1`, seq)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check comment delete: %w", err)
	}
	if n == 0 {
		return comments.ErrCommentNotFound
	}
	return nil
}

func (r *commentRepo) CreateReply(ctx context.Context, reply *comments.Reply) (int64, error) {
	query := `
		INSERT INTO replies (comment_seq, member_id, contents)
		VALUES ($1, $2, $3)
		RETURNING seq, created_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		reply.CommentSeq, reply.MemberID, reply.Contents,
	).Scan(&reply.Seq, &reply.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return 0, comments.ErrCommentNotFound
		}
		return 0, fmt.Errorf("failed to insert reply: %w", err)
	}

	return reply.Seq, nil
}

func (r *commentRepo) GetReply(ctx context.Context, seq int64) (*comments.Reply, error) {
	query := `
		SELECT seq, comment_seq, member_id, contents, created_at
		FROM replies
		WHERE seq = $1
	`

	var rep comments.Reply
	err := r.db.QueryRowContext(ctx, query, seq).Scan(
		&rep.Seq, &rep.CommentSeq, &rep.MemberID, &rep.Contents, &rep.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, comments.ErrReplyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reply: %w", err)
	}

	return &rep, nil
}

func (r *commentRepo) ListReplies(ctx context.Context, commentSeq int64) ([]comments.Reply, error) {
	query := `
		SELECT seq, comment_seq, member_id, contents, created_at
		FROM replies
		WHERE comment_seq = $1
		ORDER BY seq
	`

	rows, err := r.db.QueryContext(ctx, query, commentSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}
	defer rows.Close()

	list := []comments.Reply{}
	for rows.Next() {
		var rep comments.Reply
		if err := rows.Scan(&rep.Seq, &rep.CommentSeq, &rep.MemberID, &rep.Contents, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		list = append(list, rep)
	}
	return list, rows.Err()
}

func (r *commentRepo) DeleteReply(ctx context.Context, seq int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM replies WHERE seq = $1`, seq)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check reply delete: %w", err)
	}
	if n == 0 {
		return comments.ErrReplyNotFound
	}
	return nil
}

func (r *commentRepo) CreateReport(ctx context.Context, report *comments.Report) (int64, error) {
	query := `
		INSERT INTO reports (target_kind, target_seq, member_id, report_code)
		VALUES ($1, $2, $3, $4)
		RETURNING seq, created_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		report.TargetKind, report.TargetSeq, report.MemberID, report.ReportCode,
	).Scan(&report.Seq, &report.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert report: %w", err)
	}

	return report.Seq, nil
}

func (r *commentRepo) ListReports(ctx context.Context, target comments.Target) ([]comments.Report, error) {
	query := `
		SELECT seq, target_kind, target_seq, member_id, report_code, created_at
		FROM reports
		WHERE target_kind = $1 AND target_seq = $2
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, target.Kind, target.Seq)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	list := []comments.Report{}
	for rows.Next() {
		var rep comments.Report
		if err := rows.Scan(&rep.Seq, &rep.TargetKind, &rep.TargetSeq, &rep.MemberID, &rep.ReportCode, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		list = append(list, rep)
	}
	return list, rows.Err()
}

// ListReportedTargets builds the moderation queue: distinct reported targets
// joined with their current content, oldest first report leading. Reports
// whose target was already deleted drop out of the join and stay invisible
// until resolved.
func (r *commentRepo) ListReportedTargets(ctx context.Context, kind comments.TargetKind, limit, offset int) ([]comments.ReportedTarget, error) {
	table := "comments"
	if kind == comments.TargetReply {
		table = "replies"
	}

	query := fmt.Sprintf(`
		SELECT r.target_seq, t.member_id, t.contents,
		       COUNT(r.seq) AS report_count,
		       MIN(r.created_at) AS first_reported_at
		FROM reports r
		JOIN %s t ON t.seq = r.target_seq
		WHERE r.target_kind = $1
		GROUP BY r.target_seq, t.member_id, t.contents
		ORDER BY first_reported_at
		LIMIT $2 OFFSET $3
	`, table)

	rows, err := r.db.QueryContext(ctx, query, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reported targets: %w", err)
	}
	defer rows.Close()

	list := []comments.ReportedTarget{}
	for rows.Next() {
		rt := comments.ReportedTarget{TargetKind: kind}
		if err := rows.Scan(&rt.TargetSeq, &rt.MemberID, &rt.Contents, &rt.ReportCount, &rt.FirstReportedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reported target: %w", err)
		}
		list = append(list, rt)
	}
	return list, rows.Err()
}

func (r *commentRepo) CountReportedTargets(ctx context.Context, kind comments.TargetKind) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT target_seq) FROM reports WHERE target_kind = $1`, kind).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reported targets: %w", err)
	}
	return count, nil
}

func (r *commentRepo) DeleteReports(ctx context.Context, target comments.Target) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM reports WHERE target_kind = $1 AND target_seq = $2`,
		target.Kind, target.Seq)
	if err != nil {
		return 0, fmt.Errorf("failed to delete reports: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check report delete: %w", err)
	}
	return n, nil
}
