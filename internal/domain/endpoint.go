package domain

import "time"

// Endpoint describes an external action an agent exposes. Execution is
// a stub: the invocation is logged and the definition echoed, the URL
// is never called.
type Endpoint struct {
	ID             int64
	AgentID        int64
	Name           string
	Method         string
	URL            string
	RequestSchema  map[string]any
	ResponseSchema map[string]any
	AuthRequired   bool
	CreatedAt      time.Time
}
