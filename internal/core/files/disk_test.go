package files

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_StoreAndReadBack(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "/uploads", nil)

	url, err := store.Store(context.Background(), []byte("fake-jpeg-bytes"), "image/jpeg", "F2")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/F2/"), "url %q has wrong prefix", url)
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	// The bytes landed where the URL says
	name := strings.TrimPrefix(url, "/uploads/F2/")
	data, err := os.ReadFile(filepath.Join(dir, "F2", name))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-jpeg-bytes"), data)
}

func TestDiskStore_UniqueNames(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/uploads", nil)

	first, err := store.Store(context.Background(), []byte("a"), "image/png", "F2")
	require.NoError(t, err)
	second, err := store.Store(context.Background(), []byte("a"), "image/png", "F2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDiskStore_RejectsBadInput(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/uploads", nil)
	ctx := context.Background()

	_, err := store.Store(ctx, nil, "image/jpeg", "F2")
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = store.Store(ctx, []byte("pdf-bytes"), "application/pdf", "F2")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = store.Store(ctx, make([]byte, maxFileSize+1), "image/jpeg", "F2")
	assert.ErrorIs(t, err, ErrFileTooLarge)
}
