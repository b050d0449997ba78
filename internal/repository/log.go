package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pindexlabs/agentpanel/internal/domain"
)

// ActionLogRepository handles the append-only audit trail.
type ActionLogRepository struct {
	pool *pgxpool.Pool
}

// NewActionLogRepository creates a new ActionLogRepository.
func NewActionLogRepository(pool *pgxpool.Pool) *ActionLogRepository {
	return &ActionLogRepository{pool: pool}
}

// Create appends an audit entry. The Querier lets the insert join a
// writer's transaction (form submission) or run standalone on the pool
// (endpoint execution).
func (r *ActionLogRepository) Create(ctx context.Context, q Querier, entry *domain.ActionLog) error {
	var inputJSON, outputJSON []byte
	var err error

	if entry.InputData != nil {
		if inputJSON, err = json.Marshal(entry.InputData); err != nil {
			return fmt.Errorf("marshal input_data: %w", err)
		}
	}
	if entry.OutputData != nil {
		if outputJSON, err = json.Marshal(entry.OutputData); err != nil {
			return fmt.Errorf("marshal output_data: %w", err)
		}
	}

	query, args, err := psql.
		Insert("agent_logs").
		Columns("agent_id", "user_id", "firm_id", "action", "input_data", "output_data").
		Values(entry.AgentID, entry.UserID, entry.FirmID, entry.Action, inputJSON, outputJSON).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for action log: %w", err)
	}

	if err := q.QueryRow(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return fmt.Errorf("create action log: %w", err)
	}
	return nil
}
