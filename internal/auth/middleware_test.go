package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	httpapi "github.com/vidvault/vidvault/backend/internal/http"
	"github.com/vidvault/vidvault/backend/testhelper"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *RegisterRequest) (*User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LoginResponse), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) Refresh(ctx context.Context, token string) (*TokenClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TokenClaims), args.Error(1)
}

func setupGateTest(service AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config := testConfig()

	router := gin.New()
	router.Use(SessionGate(service, config, testhelper.NewTestLogger()))

	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	router.GET("/", ok)
	router.GET("/dashboard", ok)
	router.GET("/dashboard/settings", ok)
	router.GET("/auth/login", ok)
	router.GET("/auth/signup", ok)
	router.GET("/auth/reset-password", ok)
	router.GET("/auth/new-password", ok)
	return router
}

func get(router *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "vidvault_session", Value: cookie})
	}
	router.ServeHTTP(rec, req)
	return rec
}

func TestGateRedirectsAnonymousFromProtectedRoutes(t *testing.T) {
	service := new(MockAuthService)
	router := setupGateTest(service)

	for _, path := range []string{"/dashboard", "/dashboard/settings"} {
		rec := get(router, path, "")
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code, path)
		assert.Equal(t, "/auth/login", rec.Header().Get("Location"), path)
	}
}

func TestGateAllowsAnonymousElsewhere(t *testing.T) {
	service := new(MockAuthService)
	router := setupGateTest(service)

	for _, path := range []string{"/", "/auth/login", "/auth/signup", "/auth/new-password"} {
		rec := get(router, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestGateRedirectsSignedInFromAuthPages(t *testing.T) {
	service := new(MockAuthService)
	service.On("Refresh", mock.Anything, "valid-token").Return(&TokenClaims{UserID: "u1"}, nil)

	router := setupGateTest(service)

	for _, path := range []string{"/auth/login", "/auth/signup", "/auth/reset-password"} {
		rec := get(router, path, "valid-token")
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code, path)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"), path)
	}
}

func TestGateNewPasswordPageStaysReachableSignedIn(t *testing.T) {
	service := new(MockAuthService)
	service.On("Refresh", mock.Anything, "recovery-token").Return(&TokenClaims{UserID: "u1"}, nil)

	router := setupGateTest(service)

	rec := get(router, "/auth/new-password", "recovery-token")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateAdmitsSignedInToProtectedRoutes(t *testing.T) {
	service := new(MockAuthService)
	service.On("Refresh", mock.Anything, "valid-token").Return(&TokenClaims{UserID: "u1"}, nil)

	router := setupGateTest(service)

	rec := get(router, "/dashboard", "valid-token")
	assert.Equal(t, http.StatusOK, rec.Code)

	// The refreshed cookie comes back with the response
	cookies := rec.Result().Cookies()
	assert.NotEmpty(t, cookies)
	assert.Equal(t, "vidvault_session", cookies[0].Name)
	assert.Equal(t, "valid-token", cookies[0].Value)
}

func TestGateTreatsBadTokenAsAnonymous(t *testing.T) {
	service := new(MockAuthService)
	service.On("Refresh", mock.Anything, "stale-token").Return(nil, ErrSessionExpired)

	router := setupGateTest(service)

	rec := get(router, "/dashboard", "stale-token")
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))

	// The dead cookie gets cleared
	cookies := rec.Result().Cookies()
	assert.NotEmpty(t, cookies)
	assert.Equal(t, "vidvault_session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
}

func TestRequireSessionRejectsMissingCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := new(MockAuthService)

	router := gin.New()
	router.Use(RequireSession(service, testConfig(), httpapi.NewResponseHandler(testhelper.NewTestLogger())))
	router.GET("/api/private", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/private", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
