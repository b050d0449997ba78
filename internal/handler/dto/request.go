package dto

import (
	"encoding/json"

	"github.com/pindexlabs/agentpanel/internal/domain"
)

// SubmitFormRequest represents the body for POST /forms/:formId/submit.
type SubmitFormRequest struct {
	UserID         *int64         `json:"user_id"`
	FirmID         *int64         `json:"firm_id"`
	SubmissionData map[string]any `json:"submission_data"`
}

// ExecuteRequest represents the body for POST /execute/:endpointName.
type ExecuteRequest struct {
	UserID *int64         `json:"user_id"`
	FirmID *int64         `json:"firm_id"`
	Data   map[string]any `json:"data"`
}

// SendChatRequest represents the body for POST /chats.
type SendChatRequest struct {
	UserID  *int64 `json:"user_id"`
	Message string `json:"message"`
	Role    string `json:"role,omitempty"`
}

// CreateRecommendationRequest represents the body for POST /recommendations.
type CreateRecommendationRequest struct {
	UserID             *int64  `json:"user_id,omitempty"`
	RecommendationText string  `json:"recommendation_text"`
	Category           *string `json:"category,omitempty"`
}

// CreateFullRequest represents the body for POST /agents/create-full.
type CreateFullRequest struct {
	Agent     CreateAgentRequest      `json:"agent"`
	Menus     []CreateMenuRequest     `json:"menus,omitempty"`
	Workflows []CreateWorkflowRequest `json:"workflows,omitempty"`
	Endpoints []CreateEndpointRequest `json:"endpoints,omitempty"`
	Forms     []CreateFormRequest     `json:"forms,omitempty"`
}

// CreateAgentRequest is the agent portion of a bulk create.
type CreateAgentRequest struct {
	AgentUUID   string         `json:"agent_uuid"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Type        string         `json:"agent_type,omitempty"`
	Category    string         `json:"agent_category,omitempty"`
	FirmID      *int64         `json:"firm_id,omitempty"`
	UserID      *int64         `json:"user_id,omitempty"`
	Config      map[string]any `json:"config_json,omitempty"`
}

// CreateMenuRequest is one menu of a bulk create.
type CreateMenuRequest struct {
	MenuType string `json:"menu_type,omitempty"`
	Label    string `json:"label"`
	Route    string `json:"route,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Tooltip  string `json:"tooltip,omitempty"`
	Badge    string `json:"badge,omitempty"`
	OrderNo  int    `json:"order_no,omitempty"`
}

// CreateWorkflowRequest is one workflow of a bulk create. Steps may
// arrive as an object or a JSON-encoded string; both parse into the
// structured document.
type CreateWorkflowRequest struct {
	WorkflowName string          `json:"workflow_name"`
	Description  string          `json:"description,omitempty"`
	Steps        json.RawMessage `json:"steps_json,omitempty"`
	TriggerEvent string          `json:"trigger_event,omitempty"`
}

// CreateFormRequest is one form of a bulk create.
type CreateFormRequest struct {
	FormName        string            `json:"form_name"`
	Description     string            `json:"description,omitempty"`
	Schema          domain.FormSchema `json:"form_schema"`
	CreatedByUserID *int64            `json:"created_by_user_id,omitempty"`
	FirmID          *int64            `json:"firm_id,omitempty"`
}

// CreateEndpointRequest is one endpoint of a bulk create. AuthRequired
// defaults to true unless explicitly false.
type CreateEndpointRequest struct {
	EndpointName   string         `json:"endpoint_name"`
	Method         string         `json:"method,omitempty"`
	URL            string         `json:"url,omitempty"`
	RequestSchema  map[string]any `json:"request_schema,omitempty"`
	ResponseSchema map[string]any `json:"response_schema,omitempty"`
	AuthRequired   *bool          `json:"auth_required,omitempty"`
}
