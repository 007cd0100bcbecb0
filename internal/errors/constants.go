package errors

// Error message constants
const (
	ErrMsgFileMissing     = "No file provided"
	ErrMsgFileType        = "File must be a video"
	ErrMsgFileSize        = "File size exceeds maximum allowed size"
	ErrMsgURLMissing      = "URL is required"
	ErrMsgIDMissing       = "ID is required"
	ErrMsgFileNameMissing = "File name is required for storage files"
)
