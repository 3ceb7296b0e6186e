// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"errors"
	"net/http"

	"tradequote_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

const msgInternal = "internal server error"

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Error sends an error response with the given status code and message.
func Error(c *gin.Context, status int, message string, details any) {
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}

// OK sends a 200 OK response with the given payload.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// HandleError maps domain errors to HTTP responses and reports whether it wrote one.
// Typed *apperr.Error values use their Kind; anything else is an unexpected failure and
// becomes a 500 with a generic message so internals never leak to the caller.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var domainErr *apperr.Error
	if errors.As(err, &domainErr) {
		status := domainErr.HTTPStatus()
		message := domainErr.Message
		if status >= http.StatusInternalServerError && message == "" {
			message = msgInternal
		}
		_ = c.Error(err)
		c.JSON(status, ErrorResponse{Error: message, Details: domainErr.Details})
		return true
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
	return true
}
