package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTService implements the TokenService interface using JWT tokens
type JWTService struct {
	config *Config
}

// NewJWTService creates a new JWT token service
func NewJWTService(config *Config) TokenService {
	return &JWTService{
		config: config,
	}
}

// GenerateSessionToken generates a signed session token for a user. The
// claims are returned alongside the token so callers can key the session
// record by the token ID without re-parsing.
func (s *JWTService) GenerateSessionToken(user *User) (string, *TokenClaims, error) {
	now := time.Now()
	claims := &TokenClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWT.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWT.Secret))
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// ValidateSessionToken validates a session token and returns its claims
func (s *JWTService) ValidateSessionToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWT.Secret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %v", err)
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token claims")
}
