package handlers

import (
	"net/http"

	"tourism/internal/domain"
	"tourism/internal/http/middleware"
	"tourism/internal/utils"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx API answer.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Internal causes are
// logged, never echoed to the caller.
func RespondDomainError(c *gin.Context, module string, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	default:
		utils.LogEvent(middleware.GetRequestID(c), module, "error", err.Error())
		respondError(c, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

// bindJSON decodes the body into dst or answers 400.
func bindJSON[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "invalid_payload", "request body is empty")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_payload", "payload is not valid JSON: "+err.Error())
		return false
	}
	return true
}
