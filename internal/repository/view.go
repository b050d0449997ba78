package repository

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pindexlabs/agentpanel/internal/domain"
)

var viewColumns = []string{"id", "agent_id", "view_id", "route", "charts", "created_at"}

// ViewRepository handles database operations for agent views.
type ViewRepository struct {
	pool *pgxpool.Pool
}

// NewViewRepository creates a new ViewRepository.
func NewViewRepository(pool *pgxpool.Pool) *ViewRepository {
	return &ViewRepository{pool: pool}
}

func scanViews(rows pgx.Rows) ([]*domain.View, error) {
	defer rows.Close()

	var views []*domain.View
	for rows.Next() {
		var view domain.View
		var chartsJSON []byte
		err := rows.Scan(
			&view.ID,
			&view.AgentID,
			&view.ViewID,
			&view.Route,
			&chartsJSON,
			&view.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan view: %w", err)
		}
		if len(chartsJSON) > 0 {
			if err := json.Unmarshal(chartsJSON, &view.Charts); err != nil {
				return nil, fmt.Errorf("parse charts: %w", err)
			}
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return views, nil
}

// ListByAgentUUID retrieves views for an agent, optionally filtered by
// exact route match.
func (r *ViewRepository) ListByAgentUUID(ctx context.Context, agentUUID string, route *string) ([]*domain.View, error) {
	qb := psql.
		Select(prefixed("av", viewColumns)...).
		From("agent_views av").
		Join("agents a ON av.agent_id = a.id").
		Where(sq.Eq{"a.agent_uuid": agentUUID})

	if route != nil {
		qb = qb.Where(sq.Eq{"av.route": *route})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByAgentUUID query for views: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query views: %w", err)
	}

	return scanViews(rows)
}

// ListByAgentID retrieves all views for the full-agent payload.
func (r *ViewRepository) ListByAgentID(ctx context.Context, agentID int64) ([]*domain.View, error) {
	query, args, err := psql.
		Select(viewColumns...).
		From("agent_views").
		Where(sq.Eq{"agent_id": agentID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByAgentID query for views: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query views: %w", err)
	}

	return scanViews(rows)
}
