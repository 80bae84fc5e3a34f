package files

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// maxFileSize caps a single stored file at 10MB.
const maxFileSize = 10 << 20

var (
	// ErrEmptyFile indicates zero bytes were supplied
	ErrEmptyFile = errors.New("file is empty")

	// ErrFileTooLarge indicates the file exceeds the size limit
	ErrFileTooLarge = errors.New("file exceeds maximum size")

	// ErrUnsupportedType indicates the content type is not an accepted image format
	ErrUnsupportedType = errors.New("unsupported content type")
)

// extByType maps accepted image content types to stored file extensions.
var extByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DiskStore stores attachment files on the local filesystem, grouped by
// classification code, and hands out URLs under a configured public prefix.
//
// Files are never deleted here. A submission that aborts after its files were
// written leaves them behind; an out-of-band sweep reclaims anything no image
// row references.
type DiskStore struct {
	baseDir string
	baseURL string
	logger  *slog.Logger
}

// NewDiskStore creates a disk store rooted at baseDir. Stored files are
// reachable under baseURL, e.g. baseURL=/uploads gives /uploads/F2/<name>.
func NewDiskStore(baseDir, baseURL string, logger *slog.Logger) *DiskStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &DiskStore{
		baseDir: baseDir,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Store writes data under baseDir/<classificationCode>/ with a random name
// and returns the public URL of the stored file.
func (s *DiskStore) Store(ctx context.Context, data []byte, contentType, classificationCode string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if len(data) > maxFileSize {
		return "", fmt.Errorf("%w: %d bytes", ErrFileTooLarge, len(data))
	}
	ext, ok := extByType[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	if classificationCode == "" {
		classificationCode = "misc"
	}

	dir := filepath.Join(s.baseDir, classificationCode)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := uuid.New().String() + ext
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	s.logger.Debug("file stored",
		"path", path,
		"size", len(data),
		"classification", classificationCode)

	return s.baseURL + "/" + classificationCode + "/" + name, nil
}
