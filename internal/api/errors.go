package api

import (
	"errors"
	"net/http"
	"time"

	"fitnesshub/fitness-app/internal/service"

	"github.com/gin-gonic/gin"
)

// retryAfterSeconds is advertised on 503 responses caused by a transient
// store failure.
const retryAfterSeconds = "2"

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithServiceError maps service errors to HTTP responses. Anything
// unrecognised is a 500 and the cause is kept on the context for the
// request logger.
func abortWithServiceError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		abortWithError(c, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, service.ErrAlreadyCompleted):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error": service.ErrAlreadyCompleted.Error(),
			"code":  "already_completed",
		})
	case errors.Is(err, service.ErrTransientStore):
		_ = c.Error(err)
		c.Header("Retry-After", retryAfterSeconds)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"error": "storage temporarily unavailable, please retry",
			"code":  "transient_store_error",
		})
	case errors.Is(err, service.ErrUserAlreadyExists),
		errors.Is(err, service.ErrAlreadyLiked),
		errors.Is(err, service.ErrNotLiked):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotAuthor):
		abortWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	default:
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// parseTimeParam reads an optional RFC 3339 or YYYY-MM-DD query parameter.
// A bare date is midnight of that date in loc. Missing values yield the zero
// time.
func parseTimeParam(c *gin.Context, name string, loc *time.Location) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(time.DateOnly, raw, loc); err == nil {
		return t, true
	}
	abortWithError(c, http.StatusBadRequest, "Invalid "+name+": expected RFC 3339 timestamp or YYYY-MM-DD")
	return time.Time{}, false
}
