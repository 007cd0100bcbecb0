package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CORSMiddleware handles Cross-Origin Resource Sharing (CORS)
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// RequestIDMiddleware attaches a request id to the context for log correlation
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("request_id", uuid.New().String())
		c.Next()
	}
}

// RequestLoggerMiddleware logs incoming HTTP requests
func RequestLoggerMiddleware(logger Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if id, ok := c.Get("request_id"); ok {
			fields["request_id"] = id
		}

		logger.LogInfo("HTTP Request", fields)
	}
}

// RecoveryMiddleware recovers from any panics and logs the error
func RecoveryMiddleware(responseHandler ResponseHandler, logger Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.LogError(fmt.Errorf("panic: %v", err), "Panic recovered in HTTP handler")
				responseHandler.InternalErrorResponse(c, "An unexpected error occurred", nil)
				c.Abort()
			}
		}()
		c.Next()
	}
}
