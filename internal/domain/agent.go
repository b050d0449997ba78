package domain

import "time"

// AgentCategory groups agents on the launcher page.
type AgentCategory string

const (
	AgentCategoryPindex AgentCategory = "Pindex"
	AgentCategoryCindex AgentCategory = "Cindex"
)

// Agent is a configurable unit of UI, workflows and data.
// The UUID is the externally stable handle; the numeric ID is the
// internal join key for all child tables.
type Agent struct {
	ID          int64
	UUID        string
	Name        string
	Description string
	Type        string
	Category    AgentCategory
	FirmID      *int64
	UserID      *int64
	Config      map[string]any
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullAgent is an agent merged with every child collection, the single
// payload the shell needs to render an agent.
type FullAgent struct {
	Agent
	Menus     []*Menu
	Workflows []*Workflow
	Endpoints []*Endpoint
	Forms     []*Form
	Views     []*View
}
