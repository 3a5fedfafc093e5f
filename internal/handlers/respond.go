package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/firstshift/jobboard/internal/apperr"
	"github.com/gin-gonic/gin"
)

// writeError translates a service error into an HTTP response. Known kinds
// map to their status with the service message; anything else is logged and
// returned as a bare 500.
func writeError(c *gin.Context, err error) {
	if appErr, ok := apperr.As(err); ok {
		c.JSON(appErr.Kind.HTTPStatus(), gin.H{"error": appErr.Message})
		return
	}
	slog.Error("unhandled error",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// RequestLogger logs method, path, status and latency for every request.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
