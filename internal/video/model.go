package video

import (
	"time"

	"github.com/google/uuid"
	"github.com/vidvault/vidvault/backend/internal/platform"
	"gorm.io/gorm"
)

// VideoLink is a row in the video_links table: one externally hosted
// video registered by URL.
type VideoLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	URL       string    `gorm:"not null" json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name for the VideoLink model
func (VideoLink) TableName() string {
	return "video_links"
}

// BeforeCreate hook for VideoLink model
func (l *VideoLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Origin identifies which backing store a VideoItem came from. The
// origin decides which adapter handles later mutations; an item id is
// only unique within its origin.
type Origin string

const (
	OriginLink    Origin = "link"
	OriginStorage Origin = "storage"
	OriginHosting Origin = "hosting"
)

// Metadata carries optional file details for stored objects
type Metadata struct {
	MimeType string `json:"mimetype,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// VideoItem is the unified listing entity returned to the UI. It is
// synthesized fresh on every list request from the backing records and
// never persisted itself.
type VideoItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	PublicURL string    `json:"publicUrl"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	Origin    Origin    `json:"origin"`

	// Link origin fields
	URL          string        `json:"url,omitempty"`
	Platform     platform.Name `json:"platform,omitempty"`
	EmbedURL     string        `json:"embedUrl,omitempty"`
	IsEmbeddable bool          `json:"isEmbeddable,omitempty"`

	// Storage origin fields
	FileName string    `json:"fileName,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`

	// Hosting origin fields
	Thumbnail string `json:"thumbnail,omitempty"`
	Length    string `json:"length,omitempty"`
	Views     string `json:"views,omitempty"`
	CanPlay   int    `json:"canplay,omitempty"`
	Public    string `json:"public,omitempty"`
}
