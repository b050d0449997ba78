package domain

import "time"

// ActionLog is one append-only audit trail entry. OutputData is nil
// for actions logged before their outcome exists.
type ActionLog struct {
	ID         int64
	AgentID    int64
	UserID     *int64
	FirmID     *int64
	Action     string
	InputData  map[string]any
	OutputData map[string]any
	CreatedAt  time.Time
}

// Action names recorded by the writers.
const (
	ActionFormSubmission = "form_submission"
)
