package hosting

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/vidvault/vidvault/backend/internal/errors"
	httpapi "github.com/vidvault/vidvault/backend/internal/http"
)

// Handler proxies browser requests to the hosting API so the key stays
// server-side
type Handler struct {
	client          *Client
	responseHandler httpapi.ResponseHandler
	logger          Logger
}

// NewHandler creates a new hosting proxy handler
func NewHandler(client *Client, responseHandler httpapi.ResponseHandler, logger Logger) *Handler {
	return &Handler{
		client:          client,
		responseHandler: responseHandler,
		logger:          logger,
	}
}

// RegisterRoutes registers the hosting proxy routes
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/api/hosting", h.handleGet)
	router.POST("/api/hosting", h.handlePost)
	router.DELETE("/api/hosting", h.handleDelete)
}

func (h *Handler) handleGet(c *gin.Context) {
	switch c.Query("action") {
	case "upload-server":
		uploadURL, err := h.client.GetUploadServer(c.Request.Context())
		if err != nil {
			h.upstreamError(c, err, "Failed to get upload server")
			return
		}
		c.JSON(http.StatusOK, gin.H{"uploadUrl": uploadURL})

	case "file-list":
		env, err := h.client.ListFiles(c.Request.Context())
		if err != nil {
			h.upstreamError(c, err, "Failed to get file list")
			return
		}
		c.Data(http.StatusOK, "application/json", env.Raw)

	default:
		h.responseHandler.ValidationErrorResponse(c, "action", "Invalid action")
	}
}

func (h *Handler) handlePost(c *gin.Context) {
	if c.Query("action") == "remote-upload" {
		var req struct {
			URL string `json:"url"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
			h.responseHandler.ValidationErrorResponse(c, "url", apperrors.ErrMsgURLMissing)
			return
		}

		env, err := h.client.IngestRemoteURL(c.Request.Context(), req.URL)
		if err != nil {
			h.upstreamError(c, err, "Failed to add video link")
			return
		}
		c.Data(http.StatusOK, "application/json", env.Raw)
		return
	}

	// Default POST action is a two-step hosted file upload
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.responseHandler.ValidationErrorResponse(c, "file", apperrors.ErrMsgFileMissing)
		return
	}
	defer file.Close()

	title := c.PostForm("title")
	description := c.PostForm("description")

	env, err := h.client.UploadFile(c.Request.Context(), file, header.Filename, title, description, header.Size, nil)
	if err != nil {
		h.upstreamError(c, err, "Upload failed")
		return
	}
	c.Data(http.StatusOK, "application/json", env.Raw)
}

func (h *Handler) handleDelete(c *gin.Context) {
	fileCode := c.Query("file_code")
	if c.Query("action") != "delete" || fileCode == "" {
		h.responseHandler.ValidationErrorResponse(c, "file_code", "Invalid action or missing file_code")
		return
	}

	env, err := h.client.DeleteFile(c.Request.Context(), fileCode)
	if err != nil {
		h.upstreamError(c, err, "Failed to delete video")
		return
	}
	c.Data(http.StatusOK, "application/json", env.Raw)
}

// upstreamError maps adapter failures onto HTTP statuses: upstream
// verdicts become 400 with the upstream message, transport failures 500
func (h *Handler) upstreamError(c *gin.Context, err error, fallback string) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		h.responseHandler.ValidationErrorResponse(c, verr.Field, verr.Message)
		return
	}

	var uerr *apperrors.UpstreamError
	if errors.As(err, &uerr) && uerr.Status != 0 {
		h.responseHandler.ErrorResponse(c, http.StatusBadRequest, "ERR_UPSTREAM", uerr.Message, err)
		return
	}

	h.responseHandler.ErrorResponse(c, http.StatusInternalServerError, "ERR_UPSTREAM", fallback, err)
}
