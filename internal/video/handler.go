package video

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/vidvault/vidvault/backend/internal/errors"
	httpapi "github.com/vidvault/vidvault/backend/internal/http"
)

// Handler handles HTTP requests for the aggregate video library
type Handler struct {
	aggregator      *Aggregator
	config          *Config
	responseHandler httpapi.ResponseHandler
	logger          Logger
}

// NewHandler creates a new video handler instance
func NewHandler(aggregator *Aggregator, config *Config, responseHandler httpapi.ResponseHandler, logger Logger) *Handler {
	return &Handler{
		aggregator:      aggregator,
		config:          config,
		responseHandler: responseHandler,
		logger:          logger,
	}
}

// RegisterRoutes registers the video library routes
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/api/videos", h.handleList)
	router.POST("/api/videos", h.handleCreateLink)
	router.DELETE("/api/videos", h.handleDelete)
	router.POST("/api/videos/upload", h.handleUpload)
}

// handleList returns the merged listing from every active source
func (h *Handler) handleList(c *gin.Context) {
	items, err := h.aggregator.ListAll(c.Request.Context())
	if err != nil {
		h.responseHandler.ErrorResponse(c, http.StatusInternalServerError, "ERR_LIST", "Failed to list videos", err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{
		Files: items,
		Total: len(items),
	})
}

// handleCreateLink registers an externally hosted video URL
func (h *Handler) handleCreateLink(c *gin.Context) {
	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		h.responseHandler.ValidationErrorResponse(c, "url", apperrors.ErrMsgURLMissing)
		return
	}

	item, err := h.aggregator.Create(c.Request.Context(), OriginLink, CreatePayload{URL: req.URL})
	if err != nil {
		h.mutationError(c, err, "Failed to add video link")
		return
	}

	h.responseHandler.SuccessResponse(c, item, "Video link added")
}

// handleDelete removes one item from the store that owns it. The
// isDirectVideo flag distinguishes link rows from storage objects;
// storage deletes additionally need the object name.
func (h *Handler) handleDelete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		h.responseHandler.ValidationErrorResponse(c, "id", apperrors.ErrMsgIDMissing)
		return
	}

	origin := OriginStorage
	extra := c.Query("fileName")
	if c.Query("isDirectVideo") == "true" {
		origin = OriginLink
		extra = ""
	}

	if err := h.aggregator.Delete(c.Request.Context(), origin, id, extra); err != nil {
		h.mutationError(c, err, "Failed to delete video")
		return
	}

	h.responseHandler.SuccessResponse(c, nil, "Video deleted")
}

// handleUpload stores an uploaded file in the object-storage bucket
func (h *Handler) handleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.responseHandler.ValidationErrorResponse(c, "file", apperrors.ErrMsgFileMissing)
		return
	}
	defer file.Close()

	// Reject bad uploads before the adapter moves any bytes
	if err := ValidateUpload(header, h.config.MaxUploadSize); err != nil {
		var verr *apperrors.ValidationError
		errors.As(err, &verr)
		h.responseHandler.ValidationErrorResponse(c, verr.Field, verr.Message)
		return
	}

	contentType := header.Header.Get("Content-Type")
	item, err := h.aggregator.Create(c.Request.Context(), OriginStorage, CreatePayload{
		Reader:      file,
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: contentType,
	})
	if err != nil {
		h.mutationError(c, err, "Upload failed")
		return
	}

	h.responseHandler.SuccessResponse(c, UploadResponseData{
		Path:         item.FileName,
		PublicURL:    item.PublicURL,
		FileName:     item.FileName,
		OriginalName: header.Filename,
		Size:         header.Size,
		Type:         contentType,
	}, "Video uploaded")
}

// mutationError maps adapter errors onto HTTP statuses
func (h *Handler) mutationError(c *gin.Context, err error, fallback string) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		h.responseHandler.ValidationErrorResponse(c, verr.Field, verr.Message)
		return
	}

	var nferr *apperrors.NotFoundError
	if errors.As(err, &nferr) {
		h.responseHandler.ErrorResponse(c, http.StatusBadRequest, "ERR_NOT_FOUND", nferr.Error(), err)
		return
	}

	var cerr *apperrors.CancelledError
	if errors.As(err, &cerr) {
		// Client went away; nothing useful to send back
		h.logger.LogWarn("Request cancelled by client", map[string]interface{}{
			"path": c.Request.URL.Path,
		})
		c.Abort()
		return
	}

	h.responseHandler.ErrorResponse(c, http.StatusInternalServerError, "ERR_STORE", fallback, err)
}
