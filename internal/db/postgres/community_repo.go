package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/ol7mi/Hows/internal/core/community"
)

type communityRepo struct {
	db *sql.DB
}

// NewCommunityRepository creates a new PostgreSQL community repository
func NewCommunityRepository(db *sql.DB) community.Repository {
	return &communityRepo{db: db}
}

// BeginSubmission opens the transaction one board submission runs inside.
// Every row created through the returned Submission commits or rolls back
// as a unit.
func (r *communityRepo) BeginSubmission(ctx context.Context) (community.Submission, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin submission transaction: %w", err)
	}
	return &submission{tx: tx}, nil
}

// submission wraps one *sql.Tx as the community.Submission handle.
type submission struct {
	tx *sql.Tx
}

func (s *submission) CreateBoard(ctx context.Context, board *community.Board) (int64, error) {
	query := `
		INSERT INTO boards (
			housing_type_code, space_type_code, area_size_code,
			contents, member_id
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING seq, created_at
	`

	err := s.tx.QueryRowContext(
		ctx, query,
		board.HousingTypeCode, board.SpaceTypeCode, board.AreaSizeCode,
		board.Contents, board.MemberID,
	).Scan(&board.Seq, &board.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert board: %w", err)
	}

	return board.Seq, nil
}

func (s *submission) CreateImage(ctx context.Context, image *community.BoardImage) (int64, error) {
	query := `
		INSERT INTO board_images (board_seq, image_url, image_order)
		VALUES ($1, $2, $3)
		RETURNING seq, created_at
	`

	err := s.tx.QueryRowContext(
		ctx, query,
		image.BoardSeq, image.ImageURL, image.Order,
	).Scan(&image.Seq, &image.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert board image: %w", err)
	}

	return image.Seq, nil
}

func (s *submission) CreateTag(ctx context.Context, tag *community.BoardTag) (int64, error) {
	query := `
		INSERT INTO board_tags (board_image_seq, product_seq, left_pos, top_pos)
		VALUES ($1, $2, $3, $4)
		RETURNING seq, created_at
	`

	err := s.tx.QueryRowContext(
		ctx, query,
		tag.BoardImageSeq, tag.ProductSeq, tag.Left, tag.Top,
	).Scan(&tag.Seq, &tag.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert board tag: %w", err)
	}

	return tag.Seq, nil
}

func (s *submission) Commit() error {
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit submission: %w", err)
	}
	return nil
}

// Rollback discards the submission. After a successful Commit it is a no-op,
// so services can defer it unconditionally.
func (s *submission) Rollback() error {
	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("failed to rollback submission: %w", err)
	}
	return nil
}

func (r *communityRepo) GetBoard(ctx context.Context, seq int64) (*community.Board, error) {
	query := `
		SELECT seq, housing_type_code, space_type_code, area_size_code,
		       contents, member_id, view_count, created_at
		FROM boards
		WHERE seq = $1
	`

	var board community.Board
	err := r.db.QueryRowContext(ctx, query, seq).Scan(
		&board.Seq, &board.HousingTypeCode, &board.SpaceTypeCode, &board.AreaSizeCode,
		&board.Contents, &board.MemberID, &board.ViewCount, &board.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, community.ErrBoardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	return &board, nil
}

// ListBoards loads a feed page in two queries: the board rows, then every
// image of those boards in one shot, merged in memory. Mirrors how the feed
// is rendered: each card shows the board plus its image strip.
func (r *communityRepo) ListBoards(ctx context.Context, limit, offset int) ([]community.BoardSummary, error) {
	query := `
		SELECT seq, housing_type_code, space_type_code, area_size_code,
		       contents, member_id, view_count, created_at
		FROM boards
		ORDER BY seq DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	defer rows.Close()

	summaries := make([]community.BoardSummary, 0, limit)
	seqs := make([]int64, 0, limit)
	for rows.Next() {
		var s community.BoardSummary
		if err := rows.Scan(
			&s.Seq, &s.HousingTypeCode, &s.SpaceTypeCode, &s.AreaSizeCode,
			&s.Contents, &s.MemberID, &s.ViewCount, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		s.ImageURLs = []string{}
		summaries = append(summaries, s)
		seqs = append(seqs, s.Seq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate boards: %w", err)
	}
	if len(summaries) == 0 {
		return summaries, nil
	}

	imgQuery := `
		SELECT board_seq, image_url
		FROM board_images
		WHERE board_seq = ANY($1)
		ORDER BY board_seq, image_order
	`

	imgRows, err := r.db.QueryContext(ctx, imgQuery, pq.Array(seqs))
	if err != nil {
		return nil, fmt.Errorf("failed to list board images: %w", err)
	}
	defer imgRows.Close()

	urlsBySeq := make(map[int64][]string, len(seqs))
	for imgRows.Next() {
		var boardSeq int64
		var url string
		if err := imgRows.Scan(&boardSeq, &url); err != nil {
			return nil, fmt.Errorf("failed to scan board image: %w", err)
		}
		urlsBySeq[boardSeq] = append(urlsBySeq[boardSeq], url)
	}
	if err := imgRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate board images: %w", err)
	}

	for i := range summaries {
		if urls, ok := urlsBySeq[summaries[i].Seq]; ok {
			summaries[i].ImageURLs = urls
		}
	}

	return summaries, nil
}

func (r *communityRepo) ListImages(ctx context.Context, boardSeq int64) ([]community.BoardImage, error) {
	query := `
		SELECT seq, board_seq, image_url, image_order, created_at
		FROM board_images
		WHERE board_seq = $1
		ORDER BY image_order
	`

	rows, err := r.db.QueryContext(ctx, query, boardSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer rows.Close()

	images := []community.BoardImage{}
	for rows.Next() {
		var img community.BoardImage
		if err := rows.Scan(&img.Seq, &img.BoardSeq, &img.ImageURL, &img.Order, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *communityRepo) ListTags(ctx context.Context, boardSeq int64) ([]community.BoardTag, error) {
	query := `
		SELECT t.seq, t.board_image_seq, t.product_seq, t.left_pos, t.top_pos, t.created_at
		FROM board_tags t
		JOIN board_images i ON i.seq = t.board_image_seq
		WHERE i.board_seq = $1
		ORDER BY t.seq
	`

	rows, err := r.db.QueryContext(ctx, query, boardSeq)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	tags := []community.BoardTag{}
	for rows.Next() {
		var tag community.BoardTag
		if err := rows.Scan(&tag.Seq, &tag.BoardImageSeq, &tag.ProductSeq, &tag.Left, &tag.Top, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (r *communityRepo) IncrementViewCount(ctx context.Context, seq int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE boards SET view_count = view_count + 1 WHERE seq = $1`, seq)
	if err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check view count update: %w", err)
	}
	if n == 0 {
		return community.ErrBoardNotFound
	}
	return nil
}

// DeleteBoard removes the board; images and tags follow via ON DELETE CASCADE.
func (r *communityRepo) DeleteBoard(ctx context.Context, seq int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE seq = $1`, seq)
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check board delete: %w", err)
	}
	if n == 0 {
		return community.ErrBoardNotFound
	}
	return nil
}
