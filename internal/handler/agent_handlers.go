package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/pindexlabs/agentpanel/internal/domain"
	"github.com/pindexlabs/agentpanel/internal/handler/dto"
	"github.com/pindexlabs/agentpanel/internal/repository"
	"github.com/pindexlabs/agentpanel/internal/service"
)

// handleListAgents returns agents with optional firm/category filters.
//
//	@Summary		List agents
//	@Description	Returns agents ordered by category then name, with optional firm_id and agent_category filters
//	@Tags			agents
//	@Produce		json
//	@Param			firm_id			query		int		false	"Filter by owning firm"
//	@Param			agent_category	query		string	false	"Filter by category (Pindex or Cindex)"
//	@Success		200	{object}	dto.Envelope{data=[]dto.AgentResponse}
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/agents [get]
func (h *Handler) handleListAgents(w http.ResponseWriter, r *http.Request) {
	filters := repository.AgentFilters{
		FirmID:   queryInt64(r, "firm_id"),
		Category: queryString(r, "agent_category"),
	}

	agents, err := h.agentRepo.List(r.Context(), filters)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]dto.AgentResponse, 0, len(agents))
	for _, a := range agents {
		resp = append(resp, dto.ToAgentResponse(a))
	}
	respondJSON(w, http.StatusOK, dto.OK(resp))
}

// handleGetFullAgent returns an agent merged with every child collection.
//
//	@Summary		Get full agent
//	@Description	Returns the agent row plus its menus, workflows, endpoints, forms and views
//	@Tags			agents
//	@Produce		json
//	@Param			agentUuid	path		string	true	"Agent UUID"
//	@Success		200	{object}	dto.Envelope{data=dto.FullAgentResponse}
//	@Failure		404	{object}	dto.Envelope
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/agents/{agentUuid} [get]
func (h *Handler) handleGetFullAgent(w http.ResponseWriter, r *http.Request) {
	full, err := h.agentService.GetFull(r.Context(), r.PathValue("agentUuid"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.OK(dto.ToFullAgentResponse(full)))
}

// handleListMenus returns an agent's menus, optionally filtered by zone.
//
//	@Summary		List agent menus
//	@Description	Returns menus ordered by order_no then id, optionally filtered by menu_type
//	@Tags			agents
//	@Produce		json
//	@Param			agentUuid	path		string	true	"Agent UUID"
//	@Param			menu_type	query		string	false	"Placement zone filter"
//	@Success		200	{object}	dto.Envelope{data=[]dto.MenuResponse}
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/agents/{agentUuid}/menus [get]
func (h *Handler) handleListMenus(w http.ResponseWriter, r *http.Request) {
	var menuType *domain.MenuType
	if raw := queryString(r, "menu_type"); raw != nil {
		t := domain.MenuType(*raw)
		menuType = &t
	}

	menus, err := h.menuRepo.ListByAgentUUID(r.Context(), r.PathValue("agentUuid"), menuType)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]dto.MenuResponse, 0, len(menus))
	for _, m := range menus {
		resp = append(resp, dto.ToMenuResponse(m))
	}
	respondJSON(w, http.StatusOK, dto.OK(resp))
}

// handleListViews returns an agent's views, optionally filtered by route.
//
//	@Summary		List agent views
//	@Description	Returns views, optionally filtered by exact route match
//	@Tags			agents
//	@Produce		json
//	@Param			agentUuid	path		string	true	"Agent UUID"
//	@Param			route		query		string	false	"Exact route filter"
//	@Success		200	{object}	dto.Envelope{data=[]dto.ViewResponse}
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/agents/{agentUuid}/views [get]
func (h *Handler) handleListViews(w http.ResponseWriter, r *http.Request) {
	views, err := h.viewRepo.ListByAgentUUID(r.Context(), r.PathValue("agentUuid"), queryString(r, "route"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]dto.ViewResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, dto.ToViewResponse(v))
	}
	respondJSON(w, http.StatusOK, dto.OK(resp))
}

// handleListWorkflows returns an agent's workflows.
//
//	@Summary		List agent workflows
//	@Tags			agents
//	@Produce		json
//	@Param			agentUuid	path		string	true	"Agent UUID"
//	@Success		200	{object}	dto.Envelope{data=[]dto.WorkflowResponse}
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/agents/{agentUuid}/workflows [get]
func (h *Handler) handleListWorkflows(w http.ResponseWriter, r *http.Request) {
	workflows, err := h.workflowRepo.ListByAgentUUID(r.Context(), r.PathValue("agentUuid"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]dto.WorkflowResponse, 0, len(workflows))
	for _, wf := range workflows {
		resp = append(resp, dto.ToWorkflowResponse(wf))
	}
	respondJSON(w, http.StatusOK, dto.OK(resp))
}

// handleGetWorkflow returns one workflow scoped to an agent.
//
//	@Summary		Get workflow
//	@Tags			agents
//	@Produce		json
//	@Param			agentUuid	path		string	true	"Agent UUID"
//	@Param			workflowId	path		int		true	"Workflow ID"
//	@Success		200	{object}	dto.Envelope{data=dto.WorkflowResponse}
//	@Failure		404	{object}	dto.Envelope
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/agents/{agentUuid}/workflows/{workflowId} [get]
func (h *Handler) handleGetWorkflow(w http.ResponseWriter, r *http.Request) {
	workflowID, ok := pathInt64(w, r, "workflowId")
	if !ok {
		return
	}

	workflow, err := h.workflowRepo.GetByID(r.Context(), r.PathValue("agentUuid"), workflowID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.OK(dto.ToWorkflowResponse(workflow)))
}

// handleCreateFull creates an agent and all provided children in one
// transaction.
//
//	@Summary		Create full agent
//	@Description	Creates an agent with its menus, forms, workflows and endpoints atomically; workflow form references by name are rewritten to the new form ids
//	@Tags			agents
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateFullRequest	true	"Agent and children"
//	@Success		201	{object}	dto.Envelope{data=dto.CreateFullResponse}
//	@Failure		400	{object}	dto.Envelope
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/agents/create-full [post]
func (h *Handler) handleCreateFull(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFullRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, dto.Fail("invalid JSON body"))
		return
	}

	params, err := toCreateFullParams(req)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	result, err := h.agentService.CreateFull(r.Context(), params)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := dto.CreateFullResponse{
		AgentID:   result.AgentID,
		AgentUUID: result.AgentUUID,
		Menus:     result.MenusCount,
		Forms:     result.FormsCount,
		Workflows: result.WorkflowsCount,
		Endpoints: result.EndpointsCount,
	}
	respondJSON(w, http.StatusCreated, dto.OKMessage(resp, "Agent created successfully"))
}

// toCreateFullParams maps the request body to service params, applying
// the request-level defaults and validating the agent UUID shape.
func toCreateFullParams(req dto.CreateFullRequest) (service.CreateFullParams, error) {
	var params service.CreateFullParams

	if req.Agent.AgentUUID != "" {
		if _, err := uuid.Parse(req.Agent.AgentUUID); err != nil {
			return params, fmt.Errorf("%w: agent_uuid must be a valid UUID", domain.ErrValidation)
		}
	}

	params.Agent = domain.Agent{
		UUID:        req.Agent.AgentUUID,
		Name:        req.Agent.Name,
		Description: req.Agent.Description,
		Type:        req.Agent.Type,
		Category:    domain.AgentCategory(req.Agent.Category),
		FirmID:      req.Agent.FirmID,
		UserID:      req.Agent.UserID,
		Config:      req.Agent.Config,
	}

	for _, m := range req.Menus {
		params.Menus = append(params.Menus, domain.Menu{
			Type:    domain.MenuType(m.MenuType),
			Label:   m.Label,
			Route:   m.Route,
			Icon:    m.Icon,
			Tooltip: m.Tooltip,
			Badge:   m.Badge,
			OrderNo: m.OrderNo,
		})
	}

	for _, f := range req.Forms {
		params.Forms = append(params.Forms, domain.Form{
			Name:            f.FormName,
			Description:     f.Description,
			Schema:          f.Schema,
			CreatedByUserID: f.CreatedByUserID,
			FirmID:          f.FirmID,
		})
	}

	for _, wf := range req.Workflows {
		workflow := domain.Workflow{
			Name:         wf.WorkflowName,
			Description:  wf.Description,
			TriggerEvent: wf.TriggerEvent,
		}
		if len(wf.Steps) > 0 {
			if err := json.Unmarshal(wf.Steps, &workflow.Steps); err != nil {
				return params, fmt.Errorf("%w: workflow %q: %s", domain.ErrValidation, wf.WorkflowName, err)
			}
		}
		params.Workflows = append(params.Workflows, workflow)
	}

	for _, ep := range req.Endpoints {
		authRequired := true
		if ep.AuthRequired != nil {
			authRequired = *ep.AuthRequired
		}
		params.Endpoints = append(params.Endpoints, domain.Endpoint{
			Name:           ep.EndpointName,
			Method:         ep.Method,
			URL:            ep.URL,
			RequestSchema:  ep.RequestSchema,
			ResponseSchema: ep.ResponseSchema,
			AuthRequired:   authRequired,
		})
	}

	return params, nil
}
