package dto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/teampulse/teampulse/internal/domain"
)

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
	// Not found
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, "TASK_NOT_FOUND", message
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound, "EMPLOYEE_NOT_FOUND", message
	case errors.Is(err, domain.ErrTeamNotFound):
		return http.StatusNotFound, "TEAM_NOT_FOUND", message
	case errors.Is(err, domain.ErrAlertNotFound):
		return http.StatusNotFound, "ALERT_NOT_FOUND", message
	case errors.Is(err, domain.ErrSuggestionNotFound):
		return http.StatusNotFound, "SUGGESTION_NOT_FOUND", message

	// Conflict errors
	case errors.Is(err, domain.ErrAlertAcknowledged):
		return http.StatusConflict, "ALERT_ALREADY_ACKNOWLEDGED", message

	// Permission errors
	case errors.Is(err, domain.ErrNotAlertOwner):
		return http.StatusForbidden, "INSUFFICIENT_ACCESS", message
	case errors.Is(err, domain.ErrNotSuggestionManager):
		return http.StatusForbidden, "INSUFFICIENT_ACCESS", message

	// Auth errors
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "INVALID_TOKEN", message
	case errors.Is(err, domain.ErrEmployeeInactive):
		return http.StatusUnauthorized, "EMPLOYEE_INACTIVE", message

	// Validation errors
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrInvalidPriority):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrInvalidMood):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrEmployeeNoTeam):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message

	default:
		slog.Error("unmapped domain error returned to client",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
		)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}
