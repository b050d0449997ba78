package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pindexlabs/agentpanel/internal/domain"
)

var workflowColumns = []string{
	"id", "agent_id", "workflow_name", "description", "steps_json",
	"trigger_event", "created_at",
}

// WorkflowRepository handles database operations for agent workflows.
type WorkflowRepository struct {
	pool *pgxpool.Pool
}

// NewWorkflowRepository creates a new WorkflowRepository.
func NewWorkflowRepository(pool *pgxpool.Pool) *WorkflowRepository {
	return &WorkflowRepository{pool: pool}
}

func scanWorkflow(row pgx.Row) (*domain.Workflow, error) {
	var workflow domain.Workflow
	var stepsJSON []byte

	err := row.Scan(
		&workflow.ID,
		&workflow.AgentID,
		&workflow.Name,
		&workflow.Description,
		&stepsJSON,
		&workflow.TriggerEvent,
		&workflow.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWorkflowNotFound
		}
		return nil, fmt.Errorf("scan workflow: %w", err)
	}

	if len(stepsJSON) > 0 {
		if err := json.Unmarshal(stepsJSON, &workflow.Steps); err != nil {
			return nil, fmt.Errorf("parse steps_json: %w", err)
		}
	}

	return &workflow, nil
}

func scanWorkflows(rows pgx.Rows) ([]*domain.Workflow, error) {
	defer rows.Close()

	var workflows []*domain.Workflow
	for rows.Next() {
		workflow, err := scanWorkflow(rows)
		if err != nil {
			return nil, err
		}
		workflows = append(workflows, workflow)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return workflows, nil
}

// ListByAgentUUID retrieves all workflows for an agent.
func (r *WorkflowRepository) ListByAgentUUID(ctx context.Context, agentUUID string) ([]*domain.Workflow, error) {
	query, args, err := psql.
		Select(prefixed("aw", workflowColumns)...).
		From("agent_workflows aw").
		Join("agents a ON aw.agent_id = a.id").
		Where(sq.Eq{"a.agent_uuid": agentUUID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByAgentUUID query for workflows: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query workflows: %w", err)
	}

	return scanWorkflows(rows)
}

// ListByAgentID retrieves all workflows for the full-agent payload.
func (r *WorkflowRepository) ListByAgentID(ctx context.Context, agentID int64) ([]*domain.Workflow, error) {
	query, args, err := psql.
		Select(workflowColumns...).
		From("agent_workflows").
		Where(sq.Eq{"agent_id": agentID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByAgentID query for workflows: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query workflows: %w", err)
	}

	return scanWorkflows(rows)
}

// GetByID retrieves one workflow scoped to an agent UUID.
func (r *WorkflowRepository) GetByID(ctx context.Context, agentUUID string, workflowID int64) (*domain.Workflow, error) {
	query, args, err := psql.
		Select(prefixed("aw", workflowColumns)...).
		From("agent_workflows aw").
		Join("agents a ON aw.agent_id = a.id").
		Where(sq.Eq{"a.agent_uuid": agentUUID, "aw.id": workflowID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for workflow: %w", err)
	}

	return scanWorkflow(r.pool.QueryRow(ctx, query, args...))
}

// Create creates a workflow within a transaction. The trigger event
// defaults to manual.
func (r *WorkflowRepository) Create(ctx context.Context, tx pgx.Tx, workflow *domain.Workflow) error {
	if workflow.TriggerEvent == "" {
		workflow.TriggerEvent = "manual"
	}

	stepsJSON, err := json.Marshal(workflow.Steps)
	if err != nil {
		return fmt.Errorf("marshal steps_json: %w", err)
	}

	query, args, err := psql.
		Insert("agent_workflows").
		Columns("agent_id", "workflow_name", "description", "steps_json", "trigger_event").
		Values(workflow.AgentID, workflow.Name, workflow.Description, stepsJSON, workflow.TriggerEvent).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for workflow: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&workflow.ID, &workflow.CreatedAt); err != nil {
		return fmt.Errorf("create workflow: %w", err)
	}
	return nil
}
