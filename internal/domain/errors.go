package domain

import "errors"

// Domain-specific errors surfaced through the API error envelope.
var (
	// Not-found errors
	ErrAgentNotFound    = errors.New("agent not found")
	ErrFormNotFound     = errors.New("form not found")
	ErrWorkflowNotFound = errors.New("workflow not found")
	ErrEndpointNotFound = errors.New("endpoint not found")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Resolution errors
	ErrNoFormAvailable = errors.New("no form available for this workflow")
)
