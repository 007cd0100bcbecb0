package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/vidvault/vidvault/backend/internal/cache"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionKeyPrefix = "session:"

// Service handles account and session business logic. Sessions live in
// the cache store keyed by token ID; the database only holds accounts.
type Service struct {
	db       *gorm.DB
	sessions cache.Service
	tokens   TokenService
	config   *Config
	logger   Logger
}

// NewService creates a new auth service instance
func NewService(db *gorm.DB, sessions cache.Service, tokens TokenService, config *Config, logger Logger) *Service {
	return &Service{
		db:       db,
		sessions: sessions,
		tokens:   tokens,
		config:   config,
		logger:   logger,
	}
}

// Register creates a new user account with a bcrypt password hash
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*User, error) {
	if err := validateRegisterRequest(req, s.config); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Active:   true,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}

	s.logger.LogInfo("User registered", map[string]interface{}{
		"userId": user.ID.String(),
	})
	return user, nil
}

// Login verifies credentials and opens a new session. The token is
// returned for the cookie; it never appears in the response body.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	var user User
	err := s.db.WithContext(ctx).Where("email = ? AND active = ?", req.Email, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, claims, err := s.tokens.GenerateSessionToken(&user)
	if err != nil {
		return nil, err
	}

	if err := s.storeSession(ctx, claims); err != nil {
		return nil, err
	}

	s.db.WithContext(ctx).Model(&user).Update("last_login_at", time.Now())

	s.logger.LogInfo("User logged in", map[string]interface{}{
		"userId": user.ID.String(),
	})

	return &LoginResponse{
		User:      user,
		Token:     token,
		ExpiresIn: int(s.config.JWT.SessionTTL.Seconds()),
	}, nil
}

// Logout revokes the session behind the given token. An already-invalid
// token is not an error; the session is gone either way.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.ValidateSessionToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, sessionKeyPrefix+claims.ID)
}

// Refresh validates a token, confirms its session record still exists
// and extends the record's TTL. This gives sessions a sliding window:
// active users stay signed in, revoked tokens fail even before expiry.
func (s *Service) Refresh(ctx context.Context, token string) (*TokenClaims, error) {
	claims, err := s.tokens.ValidateSessionToken(token)
	if err != nil {
		return nil, err
	}

	key := sessionKeyPrefix + claims.ID
	raw, err := s.sessions.Get(ctx, key)
	if err != nil {
		var notFound *cache.ErrNotFound
		if errors.As(err, &notFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}

	var record SessionRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, err
	}

	if err := s.sessions.Set(ctx, key, raw, s.config.JWT.SessionTTL); err != nil {
		s.logger.LogWarn("Failed to extend session TTL", map[string]interface{}{
			"userId": claims.UserID,
		})
	}

	return claims, nil
}

func (s *Service) storeSession(ctx context.Context, claims *TokenClaims) error {
	record := SessionRecord{
		UserID:    claims.UserID,
		Email:     claims.Email,
		CreatedAt: time.Now(),
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.sessions.Set(ctx, sessionKeyPrefix+claims.ID, string(raw), s.config.JWT.SessionTTL)
}
