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

// agentColumns is the shared list of columns for agent queries.
var agentColumns = []string{
	"id", "agent_uuid", "name", "description", "agent_type", "agent_category",
	"firm_id", "user_id", "config_json", "created_at", "updated_at",
}

// AgentRepository handles database operations for agents.
type AgentRepository struct {
	pool *pgxpool.Pool
}

// NewAgentRepository creates a new AgentRepository.
func NewAgentRepository(pool *pgxpool.Pool) *AgentRepository {
	return &AgentRepository{pool: pool}
}

// AgentFilters holds the optional filters for agent listing.
type AgentFilters struct {
	FirmID   *int64
	Category *string
}

// scanAgent scans a single row into an Agent struct.
func scanAgent(row pgx.Row) (*domain.Agent, error) {
	var agent domain.Agent
	var configJSON []byte

	err := row.Scan(
		&agent.ID,
		&agent.UUID,
		&agent.Name,
		&agent.Description,
		&agent.Type,
		&agent.Category,
		&agent.FirmID,
		&agent.UserID,
		&configJSON,
		&agent.CreatedAt,
		&agent.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, fmt.Errorf("scan agent: %w", err)
	}

	if len(configJSON) > 0 {
		if err := json.Unmarshal(configJSON, &agent.Config); err != nil {
			return nil, fmt.Errorf("parse config_json: %w", err)
		}
	}

	return &agent, nil
}

// List retrieves agents with optional firm and category filters,
// ordered by category then name.
func (r *AgentRepository) List(ctx context.Context, filters AgentFilters) ([]*domain.Agent, error) {
	qb := psql.Select(agentColumns...).From("agents")

	if filters.FirmID != nil {
		qb = qb.Where(sq.Eq{"firm_id": *filters.FirmID})
	}
	if filters.Category != nil {
		qb = qb.Where(sq.Eq{"agent_category": *filters.Category})
	}

	qb = qb.OrderBy("agent_category", "name")

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query for agents: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query agents: %w", err)
	}
	defer rows.Close()

	var agents []*domain.Agent
	for rows.Next() {
		agent, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return agents, nil
}

// GetByUUID retrieves an agent by its stable UUID.
func (r *AgentRepository) GetByUUID(ctx context.Context, agentUUID string) (*domain.Agent, error) {
	query, args, err := psql.
		Select(agentColumns...).
		From("agents").
		Where(sq.Eq{"agent_uuid": agentUUID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByUUID query for agent: %w", err)
	}

	return scanAgent(r.pool.QueryRow(ctx, query, args...))
}

// ResolveID maps an agent UUID to the numeric join key. The Querier
// lets the lookup run on the pool or inside a writer's transaction.
func (r *AgentRepository) ResolveID(ctx context.Context, q Querier, agentUUID string) (int64, error) {
	query, args, err := psql.
		Select("id").
		From("agents").
		Where(sq.Eq{"agent_uuid": agentUUID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build ResolveID query for agent: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrAgentNotFound
		}
		return 0, fmt.Errorf("query agent id: %w", err)
	}
	return id, nil
}

// Create creates a new agent within a transaction. Returns the agent
// with ID, CreatedAt, and UpdatedAt populated.
func (r *AgentRepository) Create(ctx context.Context, tx pgx.Tx, agent *domain.Agent) (*domain.Agent, error) {
	if agent.Type == "" {
		agent.Type = "general"
	}
	if agent.Category == "" {
		agent.Category = domain.AgentCategoryPindex
	}
	if agent.Config == nil {
		agent.Config = map[string]any{}
	}

	configJSON, err := json.Marshal(agent.Config)
	if err != nil {
		return nil, fmt.Errorf("marshal config_json: %w", err)
	}

	query, args, err := psql.
		Insert("agents").
		Columns(
			"agent_uuid", "name", "description", "agent_type", "agent_category",
			"config_json", "firm_id", "user_id",
		).
		Values(
			agent.UUID,
			agent.Name,
			agent.Description,
			agent.Type,
			agent.Category,
			configJSON,
			agent.FirmID,
			agent.UserID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Create query for agent: %w", err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&agent.ID, &agent.CreatedAt, &agent.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	return agent, nil
}
