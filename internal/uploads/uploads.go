package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxFileSize = 5 * 1024 * 1024 // 5MB

var (
	ErrNoFile       = errors.New("no file provided")
	ErrNotAnImage   = errors.New("file must be an image")
	ErrFileTooLarge = errors.New("file exceeds 5MB limit")
)

// Service owns the blob upload lifecycle: validate, upload under a
// collision-free name, and best-effort delete of replaced blobs.
type Service struct {
	storage *storage.Client
	bucket  string
	log     *zap.Logger
}

func NewService(st *storage.Client, bucket string, log *zap.Logger) *Service {
	return &Service{storage: st, bucket: bucket, log: log}
}

type Result struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// Validate checks presence, MIME type prefix and size before any bytes move.
func Validate(filename, contentType string, size int64) error {
	if strings.TrimSpace(filename) == "" {
		return ErrNoFile
	}
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}
	if size > maxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// ObjectPath builds a project/entity-scoped path with a timestamp plus random
// suffix so re-uploads never collide.
func ObjectPath(projectID, entityType, filename string) string {
	ext := path.Ext(filename)
	name := fmt.Sprintf("%d-%s%s", time.Now().UTC().UnixMilli(), uuid.NewString()[:8], ext)
	return fmt.Sprintf("projects/%s/%s/%s", projectID, entityType, name)
}

func (s *Service) Upload(ctx context.Context, objectPath, contentType string, body io.Reader) (*Result, error) {
	obj := s.storage.Bucket(s.bucket).Object(objectPath)
	w := obj.NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload: %w", err)
	}

	return &Result{
		URL:  fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectPath),
		Path: objectPath,
	}, nil
}

// DeleteQuietly removes a replaced blob. Failures are logged and swallowed:
// an orphaned blob is an accepted leak, the document write already succeeded.
func (s *Service) DeleteQuietly(ctx context.Context, objectPath string) {
	if objectPath == "" {
		return
	}
	if err := s.storage.Bucket(s.bucket).Object(objectPath).Delete(ctx); err != nil {
		s.log.Warn("failed to delete replaced blob",
			zap.String("path", objectPath),
			zap.Error(err))
	}
}
