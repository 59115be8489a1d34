package dto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/felixbrock/lemonai/internal/domain"
)

// PermissionDeniedMessage is shown when the clipboard-write permission is denied.
const PermissionDeniedMessage = "Clipboard write permission denied"

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// MapDomainError maps domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code string, message string) {
	message = err.Error()

	switch {
	// Clipboard errors
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden, "PERMISSION_DENIED", PermissionDeniedMessage
	case errors.Is(err, domain.ErrMissingElement):
		return http.StatusNotFound, "MISSING_ELEMENT", message
	case errors.Is(err, domain.ErrClipboardWriteFailed):
		return http.StatusBadGateway, "CLIPBOARD_WRITE_FAILED", message
	case errors.Is(err, domain.ErrUnexpectedFailure):
		slog.Error("clipboard copy failed unexpectedly", "error", err)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"

	// History errors
	case errors.Is(err, domain.ErrCopyEventNotFound):
		return http.StatusNotFound, "COPY_EVENT_NOT_FOUND", message

	// Style-build errors
	case errors.Is(err, domain.ErrUnknownVariant):
		return http.StatusNotFound, "UNKNOWN_VARIANT", message

	// Validation errors
	case errors.Is(err, domain.ErrInvalidOutcome):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrInvalidPermission):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message

	default:
		slog.Error("unmapped domain error returned to client",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
		)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}
