package video

import (
	"mime/multipart"
	"strings"

	apperrors "github.com/vidvault/vidvault/backend/internal/errors"
)

// ValidateUpload checks an incoming multipart file before any adapter
// is called: only video content types are accepted, and files above the
// size ceiling are rejected without transferring a byte.
func ValidateUpload(header *multipart.FileHeader, maxSize int64) error {
	if header == nil {
		return apperrors.NewValidationError("file", apperrors.ErrMsgFileMissing)
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "video/") {
		return apperrors.NewValidationError("file", apperrors.ErrMsgFileType)
	}

	if maxSize > 0 && header.Size > maxSize {
		return apperrors.NewValidationError("file", apperrors.ErrMsgFileSize)
	}

	return nil
}
