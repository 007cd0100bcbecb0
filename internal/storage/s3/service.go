package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	miniocreds "github.com/minio/minio-go/v7/pkg/credentials"
	apperrors "github.com/vidvault/vidvault/backend/internal/errors"
	"github.com/vidvault/vidvault/backend/internal/storage"
)

// Service implements storage.ObjectStore backed by an S3-compatible
// bucket
type Service struct {
	client *minio.Client
	cfg    *storage.Config
	logger storage.Logger
}

// NewService creates a new S3 object store instance
func NewService(cfg *storage.Config, logger storage.Logger) (*Service, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  miniocreds.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %v", err)
	}

	return &Service{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// List returns stored objects newest first, capped at the configured
// page size
func (s *Service) List(ctx context.Context) ([]storage.Object, error) {
	objects := make([]storage.Object, 0)

	for info := range s.client.ListObjects(ctx, s.cfg.Bucket, minio.ListObjectsOptions{}) {
		if info.Err != nil {
			return nil, apperrors.NewStoreError("failed to list bucket objects", info.Err)
		}
		objects = append(objects, storage.Object{
			Name:        info.Key,
			Size:        info.Size,
			ContentType: info.ContentType,
			CreatedAt:   info.LastModified,
			PublicURL:   s.PublicURL(info.Key),
		})
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].CreatedAt.After(objects[j].CreatedAt)
	})

	if s.cfg.ListLimit > 0 && len(objects) > s.cfg.ListLimit {
		objects = objects[:s.cfg.ListLimit]
	}

	return objects, nil
}

// Upload stores a new video object. Content type and size are checked
// before any bytes move; the object name is the original filename
// prefixed with a millisecond timestamp so concurrent uploads of the
// same file cannot collide.
func (s *Service) Upload(ctx context.Context, reader io.Reader, filename string, size int64, contentType string, progress storage.ProgressFunc) (*storage.Object, error) {
	if !strings.HasPrefix(contentType, "video/") {
		return nil, apperrors.NewValidationError("file", apperrors.ErrMsgFileType)
	}
	if s.cfg.MaxUploadSize > 0 && size > s.cfg.MaxUploadSize {
		return nil, apperrors.NewValidationError("file", apperrors.ErrMsgFileSize)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filename)

	// Upsert is disabled: a name collision must surface, not silently
	// replace an existing object.
	if _, err := s.client.StatObject(ctx, s.cfg.Bucket, name, minio.StatObjectOptions{}); err == nil {
		return nil, apperrors.NewStoreError(fmt.Sprintf("object %q already exists", name), nil)
	}

	body := reader
	if progress != nil {
		body = &progressReader{reader: reader, total: size, notify: progress}
	}

	info, err := s.client.PutObject(ctx, s.cfg.Bucket, name, body, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "max-age=3600",
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			return nil, apperrors.NewCancelledError("upload")
		}
		return nil, apperrors.NewStoreError("failed to upload object", err)
	}

	obj := &storage.Object{
		Name:        name,
		Size:        info.Size,
		ContentType: contentType,
		CreatedAt:   time.Now(),
		PublicURL:   s.PublicURL(name),
	}

	s.logger.LogInfo("Object uploaded", map[string]interface{}{
		"name": name,
		"size": info.Size,
	})

	return obj, nil
}

// Delete removes an object by name. S3 removal of an absent key
// succeeds, so delete is a no-op for missing objects.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.client.RemoveObject(ctx, s.cfg.Bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return apperrors.NewStoreError(fmt.Sprintf("failed to delete object %q", name), err)
	}
	return nil
}

// PublicURL derives the public playback URL for an object name
func (s *Service) PublicURL(name string) string {
	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.Endpoint, s.cfg.Bucket, name)
}

// progressReader reports transferred byte counts as the upload drains
// the source reader
type progressReader struct {
	reader      io.Reader
	total       int64
	transferred int64
	notify      storage.ProgressFunc
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if n > 0 {
		r.transferred += int64(n)
		r.notify(r.transferred, r.total)
	}
	return n, err
}
