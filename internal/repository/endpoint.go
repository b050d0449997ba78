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

var endpointColumns = []string{
	"id", "agent_id", "endpoint_name", "method", "url", "request_schema",
	"response_schema", "auth_required", "created_at",
}

// EndpointRepository handles database operations for agent endpoints.
type EndpointRepository struct {
	pool *pgxpool.Pool
}

// NewEndpointRepository creates a new EndpointRepository.
func NewEndpointRepository(pool *pgxpool.Pool) *EndpointRepository {
	return &EndpointRepository{pool: pool}
}

func scanEndpoint(row pgx.Row) (*domain.Endpoint, error) {
	var ep domain.Endpoint
	var reqJSON, respJSON []byte

	err := row.Scan(
		&ep.ID,
		&ep.AgentID,
		&ep.Name,
		&ep.Method,
		&ep.URL,
		&reqJSON,
		&respJSON,
		&ep.AuthRequired,
		&ep.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEndpointNotFound
		}
		return nil, fmt.Errorf("scan endpoint: %w", err)
	}

	if len(reqJSON) > 0 {
		if err := json.Unmarshal(reqJSON, &ep.RequestSchema); err != nil {
			return nil, fmt.Errorf("parse request_schema: %w", err)
		}
	}
	if len(respJSON) > 0 {
		if err := json.Unmarshal(respJSON, &ep.ResponseSchema); err != nil {
			return nil, fmt.Errorf("parse response_schema: %w", err)
		}
	}

	return &ep, nil
}

// ListByAgentID retrieves all endpoints for the full-agent payload.
func (r *EndpointRepository) ListByAgentID(ctx context.Context, agentID int64) ([]*domain.Endpoint, error) {
	query, args, err := psql.
		Select(endpointColumns...).
		From("agent_endpoints").
		Where(sq.Eq{"agent_id": agentID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByAgentID query for endpoints: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query endpoints: %w", err)
	}
	defer rows.Close()

	var endpoints []*domain.Endpoint
	for rows.Next() {
		ep, err := scanEndpoint(rows)
		if err != nil {
			return nil, err
		}
		endpoints = append(endpoints, ep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return endpoints, nil
}

// GetByName retrieves an endpoint by name within an agent.
func (r *EndpointRepository) GetByName(ctx context.Context, agentID int64, name string) (*domain.Endpoint, error) {
	query, args, err := psql.
		Select(endpointColumns...).
		From("agent_endpoints").
		Where(sq.Eq{"agent_id": agentID, "endpoint_name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByName query for endpoint: %w", err)
	}

	return scanEndpoint(r.pool.QueryRow(ctx, query, args...))
}

// Create creates an endpoint within a transaction. The method defaults
// to POST.
func (r *EndpointRepository) Create(ctx context.Context, tx pgx.Tx, ep *domain.Endpoint) error {
	if ep.Method == "" {
		ep.Method = "POST"
	}
	if ep.RequestSchema == nil {
		ep.RequestSchema = map[string]any{}
	}
	if ep.ResponseSchema == nil {
		ep.ResponseSchema = map[string]any{}
	}

	reqJSON, err := json.Marshal(ep.RequestSchema)
	if err != nil {
		return fmt.Errorf("marshal request_schema: %w", err)
	}
	respJSON, err := json.Marshal(ep.ResponseSchema)
	if err != nil {
		return fmt.Errorf("marshal response_schema: %w", err)
	}

	query, args, err := psql.
		Insert("agent_endpoints").
		Columns("agent_id", "endpoint_name", "method", "url", "request_schema", "response_schema", "auth_required").
		Values(ep.AgentID, ep.Name, ep.Method, ep.URL, reqJSON, respJSON, ep.AuthRequired).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for endpoint: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&ep.ID, &ep.CreatedAt); err != nil {
		return fmt.Errorf("create endpoint: %w", err)
	}
	return nil
}
