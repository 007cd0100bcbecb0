package video

// Config represents video listing and upload settings
type Config struct {
	MaxUploadSize int64 `mapstructure:"maxUploadSize"`
}

// CreateLinkRequest is the POST body for registering an external link
type CreateLinkRequest struct {
	URL string `json:"url"`
}

// ListResponse is the aggregate listing payload returned to the UI
type ListResponse struct {
	Files []VideoItem `json:"files"`
	Total int         `json:"total"`
}

// UploadResponseData describes a completed storage upload
type UploadResponseData struct {
	Path         string `json:"path"`
	PublicURL    string `json:"publicUrl"`
	FileName     string `json:"fileName"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
}
