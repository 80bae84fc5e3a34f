package notices

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, notice *Notice) (int64, error) {
	args := m.Called(ctx, notice)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) Get(ctx context.Context, seq int64) (*Notice, error) {
	args := m.Called(ctx, seq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Notice), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, limit, offset int) ([]Notice, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Notice), args.Error(1)
}

func (m *mockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, notice *Notice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, seq int64) error {
	args := m.Called(ctx, seq)
	return args.Error(0)
}

func (m *mockRepository) IncrementViewCount(ctx context.Context, seq int64) error {
	args := m.Called(ctx, seq)
	return args.Error(0)
}

func TestCreateNotice(t *testing.T) {
	repo := new(mockRepository)
	service := NewNoticeService(repo, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *Notice) bool {
		return n.Title == "maintenance" && n.MemberID == "admin"
	})).Return(int64(3), nil)

	seq, err := service.Create(context.Background(), "maintenance", "sunday 2am", "admin")

	require.NoError(t, err)
	assert.Equal(t, int64(3), seq)
}

func TestCreateNotice_Validation(t *testing.T) {
	repo := new(mockRepository)
	service := NewNoticeService(repo, nil)

	_, err := service.Create(context.Background(), "", "body", "admin")
	assert.True(t, IsValidationError(err))

	_, err = service.Create(context.Background(), "title", "", "admin")
	assert.True(t, IsValidationError(err))

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetNotice_CountsViewOnDetail(t *testing.T) {
	repo := new(mockRepository)
	service := NewNoticeService(repo, nil)

	repo.On("IncrementViewCount", mock.Anything, int64(3)).Return(nil)
	repo.On("Get", mock.Anything, int64(3)).Return(&Notice{Seq: 3, Title: "maintenance"}, nil)

	n, err := service.Get(context.Background(), 3, true)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n.Seq)
	repo.AssertCalled(t, "IncrementViewCount", mock.Anything, int64(3))
}

func TestGetNotice_NoViewCountForAdminEdit(t *testing.T) {
	repo := new(mockRepository)
	service := NewNoticeService(repo, nil)

	repo.On("Get", mock.Anything, int64(3)).Return(&Notice{Seq: 3}, nil)

	_, err := service.Get(context.Background(), 3, false)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "IncrementViewCount", mock.Anything, mock.Anything)
}

func TestListNotices_Pagination(t *testing.T) {
	repo := new(mockRepository)
	service := NewNoticeService(repo, nil)

	repo.On("List", mock.Anything, 10, 30).Return([]Notice{{Seq: 31}}, nil)
	repo.On("Count", mock.Anything).Return(int64(42), nil)

	list, total, err := service.List(context.Background(), 4, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
	require.Len(t, list, 1)
}
