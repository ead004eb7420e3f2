package rest

import (
	"log/slog"
	"time"

	"newswire/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger puts l into every request context and logs the request once
// it completes.
func RequestLogger(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx := logger.WithLogger(c.Request.Context(), l)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		l.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
