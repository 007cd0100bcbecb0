package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// protectedPrefixes lists route prefixes that require a signed-in user
var protectedPrefixes = []string{"/dashboard"}

// authPages lists pages a signed-in user has no business visiting; they
// bounce back to the dashboard. The new-password page is deliberately
// absent: a user mid password reset holds a valid recovery session and
// must still reach it.
var authPages = []string{"/auth/login", "/auth/signup", "/auth/reset-password"}

// SessionGate refreshes the session on every request carrying the
// session cookie and enforces the page access rules. It runs before the
// page routes, not the JSON API.
func SessionGate(service AuthService, config *Config, logger Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		signedIn := false

		if token, err := c.Cookie(config.CookieName); err == nil && token != "" {
			claims, err := service.Refresh(c.Request.Context(), token)
			if err == nil {
				signedIn = true
				c.Set("userID", claims.UserID)
				c.Set("email", claims.Email)
				// Sliding window: hand the cookie back with a fresh TTL
				setSessionCookie(c, config, token)
			} else {
				logger.LogWarn("Session refresh failed", map[string]interface{}{
					"path": c.Request.URL.Path,
				})
				clearSessionCookie(c, config)
			}
		}

		path := c.Request.URL.Path

		if !signedIn && isProtected(path) {
			c.Redirect(http.StatusTemporaryRedirect, "/auth/login")
			c.Abort()
			return
		}

		if signedIn && isAuthPage(path) {
			c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSession rejects API requests without a live session. Unlike the
// page gate it answers 401 instead of redirecting.
func RequireSession(service AuthService, config *Config, responseHandler ResponseHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(config.CookieName)
		if err != nil || token == "" {
			responseHandler.UnauthorizedResponse(c, "Authentication required")
			c.Abort()
			return
		}

		claims, err := service.Refresh(c.Request.Context(), token)
		if err != nil {
			responseHandler.UnauthorizedResponse(c, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

func isProtected(path string) bool {
	for _, prefix := range protectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

func isAuthPage(path string) bool {
	for _, page := range authPages {
		if path == page {
			return true
		}
	}
	return false
}

func setSessionCookie(c *gin.Context, config *Config, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.CookieName, token, int(config.JWT.SessionTTL.Seconds()), "/", "", false, true)
}

func clearSessionCookie(c *gin.Context, config *Config) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.CookieName, "", -1, "/", "", false, true)
}
