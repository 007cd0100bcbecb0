package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig() *Config {
	config := &Config{CookieName: "vidvault_session"}
	config.JWT.Secret = "test-secret"
	config.JWT.SessionTTL = time.Hour
	config.Password.MinLength = 8
	config.Password.MaxLength = 72
	return config
}

func TestSessionTokenRoundTrip(t *testing.T) {
	service := NewJWTService(testConfig())
	user := &User{ID: uuid.New(), Email: "user@example.com"}

	token, claims, err := service.GenerateSessionToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, user.ID.String(), claims.UserID)

	parsed, err := service.ValidateSessionToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), parsed.UserID)
	assert.Equal(t, "user@example.com", parsed.Email)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestValidateSessionTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService(testConfig())
	user := &User{ID: uuid.New(), Email: "user@example.com"}
	token, _, err := issuer.GenerateSessionToken(user)
	assert.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "a-different-secret"
	verifier := NewJWTService(other)

	_, err = verifier.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateSessionTokenExpired(t *testing.T) {
	config := testConfig()
	config.JWT.SessionTTL = -time.Minute
	service := NewJWTService(config)

	token, _, err := service.GenerateSessionToken(&User{ID: uuid.New()})
	assert.NoError(t, err)

	_, err = service.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateSessionTokenGarbage(t *testing.T) {
	service := NewJWTService(testConfig())
	_, err := service.ValidateSessionToken("not-a-jwt")
	assert.Error(t, err)
}

func TestValidatePassword(t *testing.T) {
	config := testConfig()

	assert.NoError(t, validatePassword("correcthorse1", config))
	assert.Error(t, validatePassword("", config))
	assert.Error(t, validatePassword("short1", config))
	assert.Error(t, validatePassword("allletters", config))
	assert.Error(t, validatePassword("1234567890", config))
}
