package health

import (
	"github.com/gin-gonic/gin"
)

// Status reports which source adapters this deployment runs with
type Status struct {
	Environment string          `json:"environment"`
	Sources     map[string]bool `json:"sources"`
}

// Handler handles health check related endpoints
type Handler struct {
	status          Status
	responseHandler ResponseHandler
}

// NewHandler creates a new health check handler
func NewHandler(status Status, responseHandler ResponseHandler) *Handler {
	return &Handler{
		status:          status,
		responseHandler: responseHandler,
	}
}

// HandleHealthCheck reports liveness and the active source adapters
func (h *Handler) HandleHealthCheck(c *gin.Context) {
	h.responseHandler.SuccessResponse(c, h.status, "Health check successful")
}
