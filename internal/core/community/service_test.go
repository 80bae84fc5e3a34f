package community

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock repository and submission for testing
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) BeginSubmission(ctx context.Context) (Submission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Submission), args.Error(1)
}

func (m *mockRepository) GetBoard(ctx context.Context, seq int64) (*Board, error) {
	args := m.Called(ctx, seq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Board), args.Error(1)
}

func (m *mockRepository) ListBoards(ctx context.Context, limit, offset int) ([]BoardSummary, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BoardSummary), args.Error(1)
}

func (m *mockRepository) ListImages(ctx context.Context, boardSeq int64) ([]BoardImage, error) {
	args := m.Called(ctx, boardSeq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BoardImage), args.Error(1)
}

func (m *mockRepository) ListTags(ctx context.Context, boardSeq int64) ([]BoardTag, error) {
	args := m.Called(ctx, boardSeq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BoardTag), args.Error(1)
}

func (m *mockRepository) IncrementViewCount(ctx context.Context, seq int64) error {
	args := m.Called(ctx, seq)
	return args.Error(0)
}

func (m *mockRepository) DeleteBoard(ctx context.Context, seq int64) error {
	args := m.Called(ctx, seq)
	return args.Error(0)
}

// mockSubmission records created rows so tests can verify exactly what a
// submission would have committed.
type mockSubmission struct {
	mock.Mock
	boards []Board
	images []BoardImage
	tags   []BoardTag
}

func (m *mockSubmission) CreateBoard(ctx context.Context, board *Board) (int64, error) {
	args := m.Called(ctx, board)
	if args.Error(1) == nil {
		m.boards = append(m.boards, *board)
	}
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSubmission) CreateImage(ctx context.Context, image *BoardImage) (int64, error) {
	args := m.Called(ctx, image)
	if args.Error(1) == nil {
		m.images = append(m.images, *image)
	}
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSubmission) CreateTag(ctx context.Context, tag *BoardTag) (int64, error) {
	args := m.Called(ctx, tag)
	if args.Error(1) == nil {
		m.tags = append(m.tags, *tag)
	}
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSubmission) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockSubmission) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// mockStore is a test attachment store that can be told to fail at a given
// attachment index.
type mockStore struct {
	calls  int
	failAt int // 0-indexed; -1 never fails
}

func newMockStore(failAt int) *mockStore {
	return &mockStore{failAt: failAt}
}

func (s *mockStore) Store(ctx context.Context, data []byte, contentType, classificationCode string) (string, error) {
	idx := s.calls
	s.calls++
	if idx == s.failAt {
		return "", errors.New("disk full")
	}
	return "/uploads/F2/file-" + string(rune('a'+idx)) + ".jpg", nil
}

func validSubmitRequest(attachments ...Attachment) SubmitRequest {
	return SubmitRequest{
		HousingTypeCode: "H1",
		SpaceTypeCode:   "S3",
		AreaSizeCode:    "A2",
		Contents:        "finally done with the living room",
		MemberID:        "u1",
		Attachments:     attachments,
	}
}

func TestSubmitPost_CreatesBoardImagesAndTags(t *testing.T) {
	repo := new(mockRepository)
	sub := new(mockSubmission)
	store := newMockStore(-1)
	service := NewCommunityService(repo, store, nil)

	req := validSubmitRequest(
		Attachment{
			Data:        []byte("img-a"),
			ContentType: "image/jpeg",
			Order:       0,
			Tags: []TagInput{
				{ProductSeq: 101, Left: 10.5, Top: 20.0},
				{ProductSeq: 102, Left: 55.0, Top: 70.2},
			},
		},
		Attachment{
			Data:        []byte("img-b"),
			ContentType: "image/png",
			Order:       1,
			Tags:        nil,
		},
	)

	repo.On("BeginSubmission", mock.Anything).Return(sub, nil)
	sub.On("CreateBoard", mock.Anything, mock.Anything).Return(int64(42), nil)
	sub.On("CreateImage", mock.Anything, mock.Anything).Return(int64(700), nil).Once()
	sub.On("CreateImage", mock.Anything, mock.Anything).Return(int64(701), nil).Once()
	sub.On("CreateTag", mock.Anything, mock.Anything).Return(int64(0), nil)
	sub.On("Commit").Return(nil)
	sub.On("Rollback").Return(nil)

	boardSeq, err := service.SubmitPost(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(42), boardSeq)

	// Exactly one board, N images, sum(len(tags)) tags
	require.Len(t, sub.boards, 1)
	require.Len(t, sub.images, 2)
	require.Len(t, sub.tags, 2)

	// Image orders match the caller-supplied orders element-for-element
	assert.Equal(t, 0, sub.images[0].Order)
	assert.Equal(t, 1, sub.images[1].Order)
	assert.Equal(t, int64(42), sub.images[0].BoardSeq)
	assert.Equal(t, int64(42), sub.images[1].BoardSeq)

	// Tags reference the image created just before them in the same run
	assert.Equal(t, int64(700), sub.tags[0].BoardImageSeq)
	assert.Equal(t, int64(700), sub.tags[1].BoardImageSeq)
	assert.Equal(t, int64(101), sub.tags[0].ProductSeq)

	sub.AssertCalled(t, "Commit")
}

func TestSubmitPost_DuplicateOrdersAccepted(t *testing.T) {
	// Display order is caller-supplied and not validated for uniqueness.
	repo := new(mockRepository)
	sub := new(mockSubmission)
	service := NewCommunityService(repo, newMockStore(-1), nil)

	req := validSubmitRequest(
		Attachment{Data: []byte("a"), ContentType: "image/jpeg", Order: 3},
		Attachment{Data: []byte("b"), ContentType: "image/jpeg", Order: 3},
	)

	repo.On("BeginSubmission", mock.Anything).Return(sub, nil)
	sub.On("CreateBoard", mock.Anything, mock.Anything).Return(int64(7), nil)
	sub.On("CreateImage", mock.Anything, mock.Anything).Return(int64(1), nil)
	sub.On("Commit").Return(nil)
	sub.On("Rollback").Return(nil)

	_, err := service.SubmitPost(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, sub.images, 2)
	assert.Equal(t, 3, sub.images[0].Order)
	assert.Equal(t, 3, sub.images[1].Order)
}

func TestSubmitPost_UploadFailureAbortsEverything(t *testing.T) {
	repo := new(mockRepository)
	sub := new(mockSubmission)
	// Second of three attachments fails to upload
	store := newMockStore(1)
	service := NewCommunityService(repo, store, nil)

	req := validSubmitRequest(
		Attachment{Data: []byte("a"), ContentType: "image/jpeg", Order: 0, Tags: []TagInput{{ProductSeq: 1}}},
		Attachment{Data: []byte("b"), ContentType: "image/jpeg", Order: 1},
		Attachment{Data: []byte("c"), ContentType: "image/jpeg", Order: 2},
	)

	repo.On("BeginSubmission", mock.Anything).Return(sub, nil)
	sub.On("CreateBoard", mock.Anything, mock.Anything).Return(int64(42), nil)
	sub.On("CreateImage", mock.Anything, mock.Anything).Return(int64(700), nil)
	sub.On("CreateTag", mock.Anything, mock.Anything).Return(int64(0), nil)
	sub.On("Rollback").Return(nil)

	_, err := service.SubmitPost(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUploadFailed)

	// The transaction is rolled back, never committed; only the prefix
	// before the failing attachment was even attempted.
	sub.AssertNotCalled(t, "Commit")
	sub.AssertCalled(t, "Rollback")
	assert.Len(t, sub.images, 1)
	assert.Equal(t, 2, store.calls, "no uploads after the failing one")
}

func TestSubmitPost_BoardCreateFailureStopsPipeline(t *testing.T) {
	repo := new(mockRepository)
	sub := new(mockSubmission)
	store := newMockStore(-1)
	service := NewCommunityService(repo, store, nil)

	req := validSubmitRequest(
		Attachment{Data: []byte("a"), ContentType: "image/jpeg", Order: 0},
	)

	repo.On("BeginSubmission", mock.Anything).Return(sub, nil)
	sub.On("CreateBoard", mock.Anything, mock.Anything).Return(int64(0), errors.New("connection reset"))
	sub.On("Rollback").Return(nil)

	_, err := service.SubmitPost(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, 0, store.calls, "nothing uploaded after board creation fails")
	sub.AssertNotCalled(t, "CreateImage", mock.Anything, mock.Anything)
	sub.AssertNotCalled(t, "Commit")
}

func TestSubmitPost_ValidationBeforeAnyWrite(t *testing.T) {
	repo := new(mockRepository)
	store := newMockStore(-1)
	service := NewCommunityService(repo, store, nil)

	tests := []struct {
		name string
		req  SubmitRequest
	}{
		{
			name: "missing member",
			req: SubmitRequest{
				HousingTypeCode: "H1", SpaceTypeCode: "S3", AreaSizeCode: "A2",
				Contents: "hello",
			},
		},
		{
			name: "missing classification codes",
			req: SubmitRequest{
				MemberID: "u1", Contents: "hello",
			},
		},
		{
			name: "empty board",
			req: SubmitRequest{
				HousingTypeCode: "H1", SpaceTypeCode: "S3", AreaSizeCode: "A2",
				MemberID: "u1",
			},
		},
		{
			name: "empty attachment data",
			req: validSubmitRequest(
				Attachment{Data: nil, ContentType: "image/jpeg", Order: 0},
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.SubmitPost(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}

	// No transaction was ever opened
	repo.AssertNotCalled(t, "BeginSubmission", mock.Anything)
	assert.Equal(t, 0, store.calls)
}

func TestSubmitPost_CommitFailureSurfaces(t *testing.T) {
	repo := new(mockRepository)
	sub := new(mockSubmission)
	service := NewCommunityService(repo, newMockStore(-1), nil)

	req := validSubmitRequest(
		Attachment{Data: []byte("a"), ContentType: "image/jpeg", Order: 0},
	)

	repo.On("BeginSubmission", mock.Anything).Return(sub, nil)
	sub.On("CreateBoard", mock.Anything, mock.Anything).Return(int64(9), nil)
	sub.On("CreateImage", mock.Anything, mock.Anything).Return(int64(1), nil)
	sub.On("Commit").Return(errors.New("deadlock detected"))
	sub.On("Rollback").Return(nil)

	_, err := service.SubmitPost(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit")
}

func TestGetBoardMedia(t *testing.T) {
	repo := new(mockRepository)
	service := NewCommunityService(repo, newMockStore(-1), nil)

	images := []BoardImage{
		{Seq: 700, BoardSeq: 42, ImageURL: "/uploads/F2/a.jpg", Order: 0},
		{Seq: 701, BoardSeq: 42, ImageURL: "/uploads/F2/b.jpg", Order: 1},
	}
	tags := []BoardTag{
		{Seq: 1, BoardImageSeq: 700, ProductSeq: 101, Left: 10, Top: 20},
	}

	repo.On("ListImages", mock.Anything, int64(42)).Return(images, nil)
	repo.On("ListTags", mock.Anything, int64(42)).Return(tags, nil)

	media, err := service.GetBoardMedia(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, images, media.Images)
	assert.Equal(t, tags, media.Tags)
}

func TestListBoards_PageArithmetic(t *testing.T) {
	repo := new(mockRepository)
	service := NewCommunityService(repo, newMockStore(-1), nil)

	repo.On("ListBoards", mock.Anything, 10, 20).Return([]BoardSummary{}, nil)

	_, err := service.ListBoards(context.Background(), 3, 10)

	require.NoError(t, err)
	repo.AssertCalled(t, "ListBoards", mock.Anything, 10, 20)
}
