package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for authentication
type Handler struct {
	service         AuthService
	config          *Config
	responseHandler ResponseHandler
	logger          Logger
}

// NewHandler creates a new auth handler instance
func NewHandler(service AuthService, config *Config, responseHandler ResponseHandler, logger Logger) *Handler {
	return &Handler{
		service:         service,
		config:          config,
		responseHandler: responseHandler,
		logger:          logger,
	}
}

// RegisterRoutes registers the authentication routes
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.POST("/auth/register", h.handleRegister)
	router.POST("/auth/login", h.handleLogin)
	router.POST("/auth/logout", h.handleLogout)
}

// handleRegister creates a new user account
func (h *Handler) handleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responseHandler.ValidationErrorResponse(c, "body", "Invalid registration payload")
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.responseHandler.ErrorResponse(c, http.StatusBadRequest, "ERR_REGISTER", err.Error(), nil)
		return
	}

	h.responseHandler.SuccessResponse(c, user, "Account created")
}

// handleLogin verifies credentials and sets the session cookie. The
// token travels only in the cookie, never in the response body.
func (h *Handler) handleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responseHandler.ValidationErrorResponse(c, "body", "Email and password are required")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			h.responseHandler.UnauthorizedResponse(c, ErrInvalidCredentials.Error())
			return
		}
		h.responseHandler.ErrorResponse(c, http.StatusInternalServerError, "ERR_LOGIN", "Login failed", err)
		return
	}

	setSessionCookie(c, h.config, resp.Token)
	h.responseHandler.SuccessResponse(c, resp, "Logged in")
}

// handleLogout revokes the current session and clears the cookie
func (h *Handler) handleLogout(c *gin.Context) {
	token, err := c.Cookie(h.config.CookieName)
	if err == nil && token != "" {
		if err := h.service.Logout(c.Request.Context(), token); err != nil {
			h.logger.LogError(err, "Failed to revoke session on logout")
		}
	}

	clearSessionCookie(c, h.config)
	h.responseHandler.SuccessResponse(c, nil, "Logged out")
}
