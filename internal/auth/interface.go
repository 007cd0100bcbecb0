package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

// AuthService handles account and session operations
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*User, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, token string) error

	// Refresh validates a session token, extends the server-side session
	// record and returns the claims. The middleware calls this on every
	// request carrying the session cookie.
	Refresh(ctx context.Context, token string) (*TokenClaims, error)
}

// TokenService handles JWT operations
type TokenService interface {
	GenerateSessionToken(user *User) (string, *TokenClaims, error)
	ValidateSessionToken(token string) (*TokenClaims, error)
}

// ResponseHandler handles HTTP responses
type ResponseHandler interface {
	SuccessResponse(c *gin.Context, data interface{}, message string)
	ErrorResponse(c *gin.Context, status int, code, message string, err error)
	ValidationErrorResponse(c *gin.Context, field, message string)
	UnauthorizedResponse(c *gin.Context, message string)
}

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
	LogWarn(msg string, fields map[string]interface{})
}
