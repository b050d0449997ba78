package domain

import (
	"fmt"
	"time"
)

// FieldType is the input kind of a form field. The renderer skips
// types it does not recognize.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeSelect   FieldType = "select"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeCheckbox FieldType = "checkbox"
)

// FormField is one input in a form schema.
type FormField struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required,omitempty"`
	Options     []string  `json:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
}

// FormSchema describes the fields of a submission form. It is stored
// as JSON on the form row and rendered without per-agent code.
type FormSchema struct {
	Title  string      `json:"form_title"`
	Fields []FormField `json:"fields"`
}

// Validate rejects schemas the renderer could not address fields in.
// Unknown field types are allowed (the renderer skips them), but every
// field needs a name to key its submitted value.
func (s *FormSchema) Validate() error {
	for i, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: form field %d has no name", ErrValidation, i)
		}
	}
	return nil
}

// Form is a submission form owned by an agent.
type Form struct {
	ID              int64
	AgentID         int64
	Name            string
	Description     string
	Schema          FormSchema
	CreatedByUserID *int64
	FirmID          *int64
	CreatedAt       time.Time
}

// Submission is one submitted form payload, append-only.
type Submission struct {
	ID        int64
	AgentID   int64
	FormID    int64
	UserID    int64
	FirmID    int64
	Data      map[string]any
	CreatedAt time.Time
}
