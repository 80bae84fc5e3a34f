package community

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ol7mi/Hows/internal/core/community"
)

type mockCommunityService struct {
	mock.Mock
}

func (m *mockCommunityService) SubmitPost(ctx context.Context, req community.SubmitRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCommunityService) GetBoard(ctx context.Context, seq int64) (*community.Board, error) {
	args := m.Called(ctx, seq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.Board), args.Error(1)
}

func (m *mockCommunityService) ListBoards(ctx context.Context, page, size int) ([]community.BoardSummary, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]community.BoardSummary), args.Error(1)
}

func (m *mockCommunityService) GetBoardMedia(ctx context.Context, boardSeq int64) (*community.BoardMedia, error) {
	args := m.Called(ctx, boardSeq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*community.BoardMedia), args.Error(1)
}

func (m *mockCommunityService) IncrementViewCount(ctx context.Context, seq int64) error {
	args := m.Called(ctx, seq)
	return args.Error(0)
}

func (m *mockCommunityService) DeleteBoard(ctx context.Context, seq int64) error {
	args := m.Called(ctx, seq)
	return args.Error(0)
}

// buildSubmission assembles a multipart form with parallel files,
// image_orders and tags fields.
func buildSubmission(t *testing.T, files []string, orders []string, tags []string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	require.NoError(t, writer.WriteField("housing_type_code", "H1"))
	require.NoError(t, writer.WriteField("space_type_code", "S3"))
	require.NoError(t, writer.WriteField("area_size_code", "A2"))
	require.NoError(t, writer.WriteField("board_contents", "my new desk setup"))
	require.NoError(t, writer.WriteField("member_id", "u1"))

	for _, content := range files {
		part, err := writer.CreateFormFile("files", "photo.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	for _, order := range orders {
		require.NoError(t, writer.WriteField("image_orders", order))
	}
	for _, tag := range tags {
		require.NoError(t, writer.WriteField("tags", tag))
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestHandleWriteWithImages(t *testing.T) {
	service := new(mockCommunityService)
	handler := NewWriteHandler(service)

	service.On("SubmitPost", mock.Anything, mock.MatchedBy(func(req community.SubmitRequest) bool {
		return req.MemberID == "u1" &&
			len(req.Attachments) == 2 &&
			req.Attachments[0].Order == 0 &&
			req.Attachments[1].Order == 1 &&
			len(req.Attachments[0].Tags) == 1 &&
			req.Attachments[0].Tags[0].ProductSeq == 101
	})).Return(int64(42), nil)

	body, contentType := buildSubmission(t,
		[]string{"jpeg-a", "jpeg-b"},
		[]string{"0", "1"},
		[]string{`[{"productSeq":101,"left":10.5,"top":20}]`, `[]`},
	)

	req := httptest.NewRequest(http.MethodPost, "/community/write-with-images", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.HandleWriteWithImages(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp["boardSeq"])
}

func TestHandleWriteWithImages_LengthMismatch(t *testing.T) {
	service := new(mockCommunityService)
	handler := NewWriteHandler(service)

	// 3 files, 2 orders, 3 tag lists
	body, contentType := buildSubmission(t,
		[]string{"a", "b", "c"},
		[]string{"0", "1"},
		[]string{`[]`, `[]`, `[]`},
	)

	req := httptest.NewRequest(http.MethodPost, "/community/write-with-images", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.HandleWriteWithImages(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Nothing reached the service; no rows of any kind were created
	service.AssertNotCalled(t, "SubmitPost", mock.Anything, mock.Anything)
}

func TestHandleWriteWithImages_BadTagJSON(t *testing.T) {
	service := new(mockCommunityService)
	handler := NewWriteHandler(service)

	body, contentType := buildSubmission(t,
		[]string{"a"},
		[]string{"0"},
		[]string{`{not json`},
	)

	req := httptest.NewRequest(http.MethodPost, "/community/write-with-images", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.HandleWriteWithImages(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "SubmitPost", mock.Anything, mock.Anything)
}

func TestHandleWriteWithImages_UploadFailure(t *testing.T) {
	service := new(mockCommunityService)
	handler := NewWriteHandler(service)

	service.On("SubmitPost", mock.Anything, mock.Anything).
		Return(int64(0), community.ErrUploadFailed)

	body, contentType := buildSubmission(t, []string{"a"}, []string{"0"}, []string{`[]`})

	req := httptest.NewRequest(http.MethodPost, "/community/write-with-images", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.HandleWriteWithImages(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
