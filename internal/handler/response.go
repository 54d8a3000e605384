package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tdsbill/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, "ITEM_NOT_FOUND", "line item not found"
	case errors.Is(err, domain.ErrUnknownField):
		return http.StatusBadRequest, "UNKNOWN_FIELD", "unknown record field"
	case errors.Is(err, domain.ErrUnknownBasis):
		return http.StatusBadRequest, "UNKNOWN_BASIS", "unknown charging basis"
	case errors.Is(err, domain.ErrUnsupportedLogoType):
		return http.StatusBadRequest, "UNSUPPORTED_LOGO_TYPE", "unsupported logo image type; allowed: jpg, png"
	case errors.Is(err, domain.ErrLogoTooLarge):
		return http.StatusRequestEntityTooLarge, "LOGO_TOO_LARGE", "logo exceeds maximum allowed size"
	case errors.Is(err, domain.ErrRenderFailed):
		return http.StatusInternalServerError, "RENDER_FAILED", "preview render failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
