package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pindexlabs/agentpanel/internal/domain"
	"github.com/pindexlabs/agentpanel/internal/repository"
)

// AgentService coordinates the bulk agent creation flow.
type AgentService struct {
	pool         *pgxpool.Pool
	agentRepo    *repository.AgentRepository
	menuRepo     *repository.MenuRepository
	formRepo     *repository.FormRepository
	workflowRepo *repository.WorkflowRepository
	endpointRepo *repository.EndpointRepository
	viewRepo     *repository.ViewRepository
}

// NewAgentService creates a new AgentService.
func NewAgentService(
	pool *pgxpool.Pool,
	agentRepo *repository.AgentRepository,
	menuRepo *repository.MenuRepository,
	formRepo *repository.FormRepository,
	workflowRepo *repository.WorkflowRepository,
	endpointRepo *repository.EndpointRepository,
	viewRepo *repository.ViewRepository,
) *AgentService {
	return &AgentService{
		pool:         pool,
		agentRepo:    agentRepo,
		menuRepo:     menuRepo,
		formRepo:     formRepo,
		workflowRepo: workflowRepo,
		endpointRepo: endpointRepo,
		viewRepo:     viewRepo,
	}
}

// CreateFullParams carries an agent and all of its configuration
// children for one bulk-create transaction.
type CreateFullParams struct {
	Agent     domain.Agent
	Menus     []domain.Menu
	Forms     []domain.Form
	Workflows []domain.Workflow
	Endpoints []domain.Endpoint
}

// CreateFullResult reports what one bulk-create persisted.
type CreateFullResult struct {
	AgentID        int64
	AgentUUID      string
	MenusCount     int
	FormsCount     int
	WorkflowsCount int
	EndpointsCount int
}

// CreateFull persists an agent and all provided children in a single
// transaction. Forms are inserted before workflows so workflow steps
// that reference a form by name can be rewritten to the newly created
// numeric id. Any failure rolls back everything inserted in this
// request; partial agent creation is never visible.
func (s *AgentService) CreateFull(ctx context.Context, params CreateFullParams) (*CreateFullResult, error) {
	if params.Agent.UUID == "" || params.Agent.Name == "" {
		return nil, fmt.Errorf("%w: missing required agent fields: agent_uuid, name", domain.ErrValidation)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	agent := params.Agent
	if _, err := s.agentRepo.Create(ctx, tx, &agent); err != nil {
		return nil, err
	}

	for i := range params.Menus {
		menu := params.Menus[i]
		menu.AgentID = agent.ID
		if err := s.menuRepo.Create(ctx, tx, &menu); err != nil {
			return nil, err
		}
	}

	// Forms first: workflows may reference them by name.
	formIDByName := make(map[string]int64, len(params.Forms))
	for i := range params.Forms {
		form := params.Forms[i]
		form.AgentID = agent.ID
		if form.CreatedByUserID == nil {
			form.CreatedByUserID = agent.UserID
		}
		if form.FirmID == nil {
			form.FirmID = agent.FirmID
		}
		if err := s.formRepo.Create(ctx, tx, &form); err != nil {
			return nil, err
		}
		formIDByName[form.Name] = form.ID
	}

	for i := range params.Workflows {
		workflow := params.Workflows[i]
		workflow.AgentID = agent.ID
		workflow.Steps.RewriteFormRef(formIDByName)
		if err := s.workflowRepo.Create(ctx, tx, &workflow); err != nil {
			return nil, err
		}
	}

	for i := range params.Endpoints {
		ep := params.Endpoints[i]
		ep.AgentID = agent.ID
		if err := s.endpointRepo.Create(ctx, tx, &ep); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("agent created",
		"agent_id", agent.ID,
		"agent_uuid", agent.UUID,
		"menus", len(params.Menus),
		"forms", len(params.Forms),
		"workflows", len(params.Workflows),
		"endpoints", len(params.Endpoints),
	)

	return &CreateFullResult{
		AgentID:        agent.ID,
		AgentUUID:      agent.UUID,
		MenusCount:     len(params.Menus),
		FormsCount:     len(params.Forms),
		WorkflowsCount: len(params.Workflows),
		EndpointsCount: len(params.Endpoints),
	}, nil
}

// GetFull loads the agent row and every child collection for the
// single fetch the shell renders from. Not found on the agent itself
// is terminal; no children are fetched.
func (s *AgentService) GetFull(ctx context.Context, agentUUID string) (*domain.FullAgent, error) {
	agent, err := s.agentRepo.GetByUUID(ctx, agentUUID)
	if err != nil {
		return nil, err
	}

	full := &domain.FullAgent{Agent: *agent}

	if full.Menus, err = s.menuRepo.ListByAgentID(ctx, agent.ID); err != nil {
		return nil, err
	}
	if full.Workflows, err = s.workflowRepo.ListByAgentID(ctx, agent.ID); err != nil {
		return nil, err
	}
	if full.Endpoints, err = s.endpointRepo.ListByAgentID(ctx, agent.ID); err != nil {
		return nil, err
	}
	if full.Forms, err = s.formRepo.ListByAgentID(ctx, agent.ID); err != nil {
		return nil, err
	}
	if full.Views, err = s.viewRepo.ListByAgentID(ctx, agent.ID); err != nil {
		return nil, err
	}

	return full, nil
}
