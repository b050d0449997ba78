package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// FormRef is the soft reference a workflow's steps document makes to a
// form. The stored value may be a numeric form id, a form name string,
// or absent; there is no foreign key backing it.
type FormRef struct {
	ID   int64
	Name string
}

// ByID reports whether the reference carries an explicit positive id.
func (r FormRef) ByID() bool { return r.ID > 0 }

// ByName reports whether the reference carries a form name.
func (r FormRef) ByName() bool { return r.ID <= 0 && r.Name != "" }

// Unresolved reports whether the reference carries nothing usable.
func (r FormRef) Unresolved() bool { return !r.ByID() && !r.ByName() }

// UnmarshalJSON accepts a number, a numeric string, or a name string.
func (r *FormRef) UnmarshalJSON(data []byte) error {
	*r = FormRef{}
	if string(data) == "null" {
		return nil
	}

	var id int64
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("form ref must be a number or string: %w", err)
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		r.ID = id
		return nil
	}
	r.Name = s
	return nil
}

// MarshalJSON emits the id when set, otherwise the name.
func (r FormRef) MarshalJSON() ([]byte, error) {
	if r.ID > 0 {
		return json.Marshal(r.ID)
	}
	if r.Name != "" {
		return json.Marshal(r.Name)
	}
	return []byte("null"), nil
}

// WorkflowSteps is the parsed steps document of a workflow. form_id
// and form_config are interpreted; any other keys round-trip through
// extra unchanged so create-full can rewrite references without
// dropping configuration it does not understand.
type WorkflowSteps struct {
	FormID     FormRef
	FormConfig *FormSchema

	extra map[string]json.RawMessage
}

// UnmarshalJSON parses a steps document, tolerating the legacy case
// where the document arrives double-encoded as a JSON string.
func (s *WorkflowSteps) UnmarshalJSON(data []byte) error {
	*s = WorkflowSteps{}
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	// Legacy rows stored the document as a JSON-encoded string.
	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return fmt.Errorf("parse steps string: %w", err)
		}
		data = []byte(inner)
	}

	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse steps document: %w", err)
	}

	if v, ok := raw["form_id"]; ok {
		if err := json.Unmarshal(v, &s.FormID); err != nil {
			return fmt.Errorf("parse steps form_id: %w", err)
		}
		delete(raw, "form_id")
	}
	if v, ok := raw["form_config"]; ok {
		var cfg FormSchema
		if err := json.Unmarshal(v, &cfg); err != nil {
			return fmt.Errorf("parse steps form_config: %w", err)
		}
		s.FormConfig = &cfg
		delete(raw, "form_config")
	}

	s.extra = raw
	return nil
}

// MarshalJSON re-emits the document with interpreted and passthrough
// keys merged.
func (s WorkflowSteps) MarshalJSON() ([]byte, error) {
	out := map[string]json.RawMessage{}
	for k, v := range s.extra {
		out[k] = v
	}
	if !s.FormID.Unresolved() {
		v, err := json.Marshal(s.FormID)
		if err != nil {
			return nil, err
		}
		out["form_id"] = v
	}
	if s.FormConfig != nil {
		v, err := json.Marshal(s.FormConfig)
		if err != nil {
			return nil, err
		}
		out["form_config"] = v
	}
	return json.Marshal(out)
}

// RewriteFormRef replaces a by-name form reference with the numeric id
// from nameToID. References already by id, or names the map does not
// know, are left alone.
func (s *WorkflowSteps) RewriteFormRef(nameToID map[string]int64) {
	if !s.FormID.ByName() {
		return
	}
	if id, ok := nameToID[s.FormID.Name]; ok {
		s.FormID = FormRef{ID: id}
	}
}

// Workflow is an ordered unit of work owned by an agent, optionally
// tied to a form through its steps document.
type Workflow struct {
	ID           int64
	AgentID      int64
	Name         string
	Description  string
	Steps        WorkflowSteps
	TriggerEvent string
	CreatedAt    time.Time
}
