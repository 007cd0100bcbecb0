package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vidvault/vidvault/backend/internal/config"
)

// ErrInvalidCredentials is returned for a wrong email or password. Both
// cases map to the same error so responses cannot be used to probe which
// emails are registered.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrSessionExpired is returned when a token is valid but its session
// record is gone, either expired or revoked by logout.
var ErrSessionExpired = errors.New("session expired")

// Config represents authentication configuration
type Config struct {
	JWT struct {
		Secret         string
		AccessTokenTTL time.Duration
		SessionTTL     time.Duration
	}
	CookieName string
	Password   struct {
		MinLength int
		MaxLength int
	}
}

// NewConfigFromAuthConfig creates an auth.Config from config.AuthConfig
func NewConfigFromAuthConfig(cfg *config.AuthConfig) *Config {
	authConfig := &Config{}
	authConfig.JWT.Secret = cfg.JWT.Secret
	authConfig.JWT.AccessTokenTTL = cfg.JWT.AccessTokenTTL
	authConfig.JWT.SessionTTL = cfg.JWT.SessionTTL
	authConfig.CookieName = cfg.CookieName

	authConfig.Password.MinLength = 8
	authConfig.Password.MaxLength = 72 // bcrypt input limit

	return authConfig
}

// RegisterRequest represents the signup request payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	User      User   `json:"user"`
	Token     string `json:"-"`
	ExpiresIn int    `json:"expiresIn"`
}

// TokenClaims represents the session JWT claims
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// SessionRecord is the server-side session state kept in the session
// store, keyed by the token's JWT ID. Deleting the record revokes the
// session regardless of the token's own expiry.
type SessionRecord struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
