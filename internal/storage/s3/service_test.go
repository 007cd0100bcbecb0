package s3

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	apperrors "github.com/vidvault/vidvault/backend/internal/errors"
	"github.com/vidvault/vidvault/backend/internal/storage"
)

type nopLogger struct{}

func (nopLogger) LogInfo(msg string, fields map[string]interface{}) {}
func (nopLogger) LogError(err error, msg string) error              { return err }

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(&storage.Config{
		Endpoint:        "localhost:9000",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		UseSSL:          false,
		Bucket:          "videos",
		ListLimit:       100,
		MaxUploadSize:   50 * 1024 * 1024,
	}, nopLogger{})
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

func TestPublicURL(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, "http://localhost:9000/videos/clip.mp4", svc.PublicURL("clip.mp4"))
}

func TestPublicURLWithSSL(t *testing.T) {
	svc, err := NewService(&storage.Config{
		Endpoint:        "s3.example.com",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		UseSSL:          true,
		Bucket:          "videos",
	}, nopLogger{})
	assert.NoError(t, err)

	assert.Equal(t, "https://s3.example.com/videos/clip.mp4", svc.PublicURL("clip.mp4"))
}

// Non-video content types must be rejected before any transfer is
// attempted; no network is reachable in this test.
func TestUploadRejectsNonVideoContentType(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Upload(context.Background(), strings.NewReader("data"), "photo.png", 4, "image/png", nil)

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "file", verr.Field)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Upload(context.Background(), strings.NewReader("data"), "big.mp4", 51*1024*1024, "video/mp4", nil)

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestProgressReaderReportsCounts(t *testing.T) {
	var calls []int64
	src := bytes.NewReader(make([]byte, 1024))
	r := &progressReader{
		reader: src,
		total:  1024,
		notify: func(transferred, total int64) {
			calls = append(calls, transferred)
			assert.Equal(t, int64(1024), total)
		},
	}

	buf := make([]byte, 256)
	for {
		if _, err := r.Read(buf); err != nil {
			break
		}
	}

	assert.NotEmpty(t, calls)
	assert.Equal(t, int64(1024), calls[len(calls)-1])
}
