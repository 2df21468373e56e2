package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses. Unclassified errors are
// logged and answered with fallbackMsg.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	var validationErr *apperrors.ValidationError
	var partialErr *apperrors.PartialBatchFailure
	var appErr *apperrors.AppError

	switch {
	case errors.As(err, &validationErr):
		logger.Warn("Request rejected by validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "issues": validationErr.Issues})
	case errors.As(err, &partialErr):
		logger.Error("Batch partially written",
			slog.Int("created", len(partialErr.Created)),
			slog.Int("failed", len(partialErr.Failed)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusMultiStatus, gin.H{
			"error":   "Batch partially written",
			"created": partialErr.Created,
			"failed":  partialErr.Failed,
		})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Request rejected by validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500:
		logger.Warn("Request rejected", slog.Int("code", appErr.Code), slog.String("error", err.Error()))
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}

// requireUserID reads the authenticated user or answers 401.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return userID, ok
}
