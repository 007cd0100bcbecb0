package video

import (
	"context"
	"errors"

	"github.com/google/uuid"
	apperrors "github.com/vidvault/vidvault/backend/internal/errors"
	"gorm.io/gorm"
)

// gormLinkStore implements LinkStore on top of the video_links table
type gormLinkStore struct {
	db     *gorm.DB
	logger Logger
}

// NewLinkStore creates a new link-table adapter
func NewLinkStore(db *gorm.DB, logger Logger) LinkStore {
	return &gormLinkStore{
		db:     db,
		logger: logger,
	}
}

// List returns all link rows, newest first
func (s *gormLinkStore) List(ctx context.Context) ([]VideoLink, error) {
	var links []VideoLink
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&links).Error; err != nil {
		return nil, apperrors.NewStoreError("failed to query video links", err)
	}
	return links, nil
}

// Create inserts a new link row with a generated id and server timestamp
func (s *gormLinkStore) Create(ctx context.Context, url string) (*VideoLink, error) {
	if url == "" {
		return nil, apperrors.NewValidationError("url", apperrors.ErrMsgURLMissing)
	}

	link := &VideoLink{URL: url}
	if err := s.db.WithContext(ctx).Create(link).Error; err != nil {
		return nil, apperrors.NewStoreError("failed to add video link", err)
	}

	s.logger.LogInfo("Video link created", map[string]interface{}{
		"id":  link.ID.String(),
		"url": url,
	})

	return link, nil
}

// Delete removes a single row by id; no cascade
func (s *gormLinkStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&VideoLink{}, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("video link", id.String())
		}
		return apperrors.NewStoreError("failed to delete video link", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("video link", id.String())
	}
	return nil
}
