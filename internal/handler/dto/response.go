package dto

import (
	"time"

	"github.com/pindexlabs/agentpanel/internal/domain"
)

// Envelope is the uniform response shape: success plus at most one of
// data/error, with an optional human message.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKMessage wraps data in a success envelope with a message.
func OKMessage(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// Fail wraps an error string in a failure envelope.
func Fail(message string) Envelope {
	return Envelope{Success: false, Error: message}
}

// AgentResponse represents an agent row.
type AgentResponse struct {
	ID          int64          `json:"id"`
	AgentUUID   string         `json:"agent_uuid"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Type        string         `json:"agent_type"`
	Category    string         `json:"agent_category"`
	FirmID      *int64         `json:"firm_id"`
	UserID      *int64         `json:"user_id"`
	Config      map[string]any `json:"config_json"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// FullAgentResponse merges an agent with every child collection.
type FullAgentResponse struct {
	AgentResponse
	Menus     []MenuResponse     `json:"menus"`
	Workflows []WorkflowResponse `json:"workflows"`
	Endpoints []EndpointResponse `json:"endpoints"`
	Forms     []FormResponse     `json:"forms"`
	Views     []ViewResponse     `json:"views"`
}

// MenuResponse represents a menu entry.
type MenuResponse struct {
	ID        int64     `json:"id"`
	AgentID   int64     `json:"agent_id"`
	MenuType  string    `json:"menu_type"`
	Label     string    `json:"label"`
	Route     string    `json:"route"`
	Icon      string    `json:"icon"`
	Tooltip   string    `json:"tooltip"`
	Badge     string    `json:"badge"`
	OrderNo   int       `json:"order_no"`
	CreatedAt time.Time `json:"created_at"`
}

// ViewResponse represents a view row.
type ViewResponse struct {
	ID        int64              `json:"id"`
	AgentID   int64              `json:"agent_id"`
	ViewID    string             `json:"view_id"`
	Route     string             `json:"route"`
	Charts    []domain.ChartSpec `json:"charts"`
	CreatedAt time.Time          `json:"created_at"`
}

// WorkflowResponse represents a workflow row. Steps round-trip through
// the structured document so a rewritten form reference serializes as
// its numeric id.
type WorkflowResponse struct {
	ID           int64                `json:"id"`
	AgentID      int64                `json:"agent_id"`
	WorkflowName string               `json:"workflow_name"`
	Description  string               `json:"description"`
	Steps        domain.WorkflowSteps `json:"steps_json"`
	TriggerEvent string               `json:"trigger_event"`
	CreatedAt    time.Time            `json:"created_at"`
}

// FormResponse represents a form row.
type FormResponse struct {
	ID              int64             `json:"id"`
	AgentID         int64             `json:"agent_id"`
	FormName        string            `json:"form_name"`
	Description     string            `json:"description"`
	Schema          domain.FormSchema `json:"form_schema"`
	CreatedByUserID *int64            `json:"created_by_user_id"`
	FirmID          *int64            `json:"firm_id"`
	CreatedAt       time.Time         `json:"created_at"`
}

// EndpointResponse represents an endpoint row.
type EndpointResponse struct {
	ID             int64          `json:"id"`
	AgentID        int64          `json:"agent_id"`
	EndpointName   string         `json:"endpoint_name"`
	Method         string         `json:"method"`
	URL            string         `json:"url"`
	RequestSchema  map[string]any `json:"request_schema"`
	ResponseSchema map[string]any `json:"response_schema"`
	AuthRequired   bool           `json:"auth_required"`
	CreatedAt      time.Time      `json:"created_at"`
}

// SubmissionResponse represents a stored form submission.
type SubmissionResponse struct {
	ID        int64          `json:"id"`
	AgentID   int64          `json:"agent_id"`
	FormID    int64          `json:"form_id"`
	UserID    int64          `json:"user_id"`
	FirmID    int64          `json:"firm_id"`
	Data      map[string]any `json:"submission_data"`
	CreatedAt time.Time      `json:"created_at"`
}

// ChatMessageResponse represents a chat message.
type ChatMessageResponse struct {
	ID        int64     `json:"id"`
	AgentID   int64     `json:"agent_id"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// RecommendationResponse represents a recommendation.
type RecommendationResponse struct {
	ID        int64     `json:"id"`
	AgentID   int64     `json:"agent_id"`
	UserID    *int64    `json:"user_id"`
	Text      string    `json:"recommendation_text"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitFormResponse carries the new submission id.
type SubmitFormResponse struct {
	SubmissionID int64 `json:"submission_id"`
}

// ExecuteResponse echoes the stored endpoint and the submitted payload.
type ExecuteResponse struct {
	Endpoint      EndpointResponse `json:"endpoint"`
	SubmittedData map[string]any   `json:"submittedData"`
}

// CreateFullResponse carries the per-collection counts of a bulk create.
type CreateFullResponse struct {
	AgentID   int64  `json:"agent_id"`
	AgentUUID string `json:"agent_uuid"`
	Menus     int    `json:"menus"`
	Forms     int    `json:"forms"`
	Workflows int    `json:"workflows"`
	Endpoints int    `json:"endpoints"`
}

// ToAgentResponse converts domain.Agent to AgentResponse.
func ToAgentResponse(a *domain.Agent) AgentResponse {
	return AgentResponse{
		ID:          a.ID,
		AgentUUID:   a.UUID,
		Name:        a.Name,
		Description: a.Description,
		Type:        a.Type,
		Category:    string(a.Category),
		FirmID:      a.FirmID,
		UserID:      a.UserID,
		Config:      a.Config,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToFullAgentResponse converts domain.FullAgent to FullAgentResponse.
func ToFullAgentResponse(fa *domain.FullAgent) FullAgentResponse {
	resp := FullAgentResponse{
		AgentResponse: ToAgentResponse(&fa.Agent),
		Menus:         make([]MenuResponse, 0, len(fa.Menus)),
		Workflows:     make([]WorkflowResponse, 0, len(fa.Workflows)),
		Endpoints:     make([]EndpointResponse, 0, len(fa.Endpoints)),
		Forms:         make([]FormResponse, 0, len(fa.Forms)),
		Views:         make([]ViewResponse, 0, len(fa.Views)),
	}
	for _, m := range fa.Menus {
		resp.Menus = append(resp.Menus, ToMenuResponse(m))
	}
	for _, w := range fa.Workflows {
		resp.Workflows = append(resp.Workflows, ToWorkflowResponse(w))
	}
	for _, e := range fa.Endpoints {
		resp.Endpoints = append(resp.Endpoints, ToEndpointResponse(e))
	}
	for _, f := range fa.Forms {
		resp.Forms = append(resp.Forms, ToFormResponse(f))
	}
	for _, v := range fa.Views {
		resp.Views = append(resp.Views, ToViewResponse(v))
	}
	return resp
}

// ToMenuResponse converts domain.Menu to MenuResponse.
func ToMenuResponse(m *domain.Menu) MenuResponse {
	return MenuResponse{
		ID:        m.ID,
		AgentID:   m.AgentID,
		MenuType:  string(m.Type),
		Label:     m.Label,
		Route:     m.Route,
		Icon:      m.Icon,
		Tooltip:   m.Tooltip,
		Badge:     m.Badge,
		OrderNo:   m.OrderNo,
		CreatedAt: m.CreatedAt,
	}
}

// ToViewResponse converts domain.View to ViewResponse.
func ToViewResponse(v *domain.View) ViewResponse {
	return ViewResponse{
		ID:        v.ID,
		AgentID:   v.AgentID,
		ViewID:    v.ViewID,
		Route:     v.Route,
		Charts:    v.Charts,
		CreatedAt: v.CreatedAt,
	}
}

// ToWorkflowResponse converts domain.Workflow to WorkflowResponse.
func ToWorkflowResponse(w *domain.Workflow) WorkflowResponse {
	return WorkflowResponse{
		ID:           w.ID,
		AgentID:      w.AgentID,
		WorkflowName: w.Name,
		Description:  w.Description,
		Steps:        w.Steps,
		TriggerEvent: w.TriggerEvent,
		CreatedAt:    w.CreatedAt,
	}
}

// ToFormResponse converts domain.Form to FormResponse.
func ToFormResponse(f *domain.Form) FormResponse {
	return FormResponse{
		ID:              f.ID,
		AgentID:         f.AgentID,
		FormName:        f.Name,
		Description:     f.Description,
		Schema:          f.Schema,
		CreatedByUserID: f.CreatedByUserID,
		FirmID:          f.FirmID,
		CreatedAt:       f.CreatedAt,
	}
}

// ToEndpointResponse converts domain.Endpoint to EndpointResponse.
func ToEndpointResponse(e *domain.Endpoint) EndpointResponse {
	return EndpointResponse{
		ID:             e.ID,
		AgentID:        e.AgentID,
		EndpointName:   e.Name,
		Method:         e.Method,
		URL:            e.URL,
		RequestSchema:  e.RequestSchema,
		ResponseSchema: e.ResponseSchema,
		AuthRequired:   e.AuthRequired,
		CreatedAt:      e.CreatedAt,
	}
}

// ToSubmissionResponse converts domain.Submission to SubmissionResponse.
func ToSubmissionResponse(s *domain.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:        s.ID,
		AgentID:   s.AgentID,
		FormID:    s.FormID,
		UserID:    s.UserID,
		FirmID:    s.FirmID,
		Data:      s.Data,
		CreatedAt: s.CreatedAt,
	}
}

// ToChatMessageResponse converts domain.ChatMessage to ChatMessageResponse.
func ToChatMessageResponse(m *domain.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID,
		AgentID:   m.AgentID,
		UserID:    m.UserID,
		Role:      string(m.Role),
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// ToRecommendationResponse converts domain.Recommendation to RecommendationResponse.
func ToRecommendationResponse(r *domain.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		ID:        r.ID,
		AgentID:   r.AgentID,
		UserID:    r.UserID,
		Text:      r.Text,
		Category:  r.Category,
		CreatedAt: r.CreatedAt,
	}
}
