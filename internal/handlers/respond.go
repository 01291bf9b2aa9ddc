// Package handlers contains HTTP request handlers for the task manager.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aaryan-2k/TaskManagerAPI/internal/middleware"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/taskerr"
)

// RespondError writes a JSON error body with the given status.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// LogAndRespondError logs the underlying error with the request-scoped
// logger and responds with a safe public message.
func LogAndRespondError(c *gin.Context, status int, err error, message string) {
	middleware.LoggerFrom(c).Error(message,
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Any("error", err),
	)
	RespondError(c, status, message)
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Ownership failures surface as 404, never 403, so a caller cannot probe
// for the existence of other users' tasks.
func respondServiceError(c *gin.Context, err error) {
	if ve, ok := taskerr.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Fields})
		return
	}

	switch {
	case errors.Is(err, taskerr.ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, taskerr.ErrExpiredToken):
		RespondError(c, http.StatusUnauthorized, "token expired")
	case errors.Is(err, taskerr.ErrInvalidToken):
		RespondError(c, http.StatusUnauthorized, "invalid token")
	case errors.Is(err, taskerr.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not found")
	default:
		LogAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
	}
}
