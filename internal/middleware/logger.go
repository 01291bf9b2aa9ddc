package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const loggerKey = "request.logger"

// RequestLogger stores a request-scoped logger in the context and emits
// one line per completed request.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqLogger := logger
		if id := RequestIDFrom(c); id != "" {
			reqLogger = logger.With(slog.String("request_id", id))
		}
		c.Set(loggerKey, reqLogger)

		c.Next()

		reqLogger.Info("request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}

// LoggerFrom returns the request-scoped logger, falling back to the
// default logger when the middleware did not run.
func LoggerFrom(c *gin.Context) *slog.Logger {
	if value, ok := c.Get(loggerKey); ok {
		if logger, ok := value.(*slog.Logger); ok {
			return logger
		}
	}
	return slog.Default()
}
