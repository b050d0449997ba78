package dto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pindexlabs/agentpanel/internal/domain"
)

// MapDomainError maps domain errors to HTTP status codes. Store
// failures fall through to 500 with the message passed on verbatim.
func MapDomainError(err error) (status int, message string) {
	message = err.Error()

	switch {
	// Not-found errors
	case errors.Is(err, domain.ErrAgentNotFound):
		return http.StatusNotFound, message
	case errors.Is(err, domain.ErrFormNotFound):
		return http.StatusNotFound, message
	case errors.Is(err, domain.ErrWorkflowNotFound):
		return http.StatusNotFound, message
	case errors.Is(err, domain.ErrEndpointNotFound):
		return http.StatusNotFound, message

	// Validation errors
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, message

	// Default: store failure, message surfaced as-is
	default:
		slog.Error("store error returned to client",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
		)
		return http.StatusInternalServerError, message
	}
}
