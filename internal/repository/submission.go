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

var submissionColumns = []string{
	"id", "agent_id", "form_id", "user_id", "firm_id", "submission_data", "created_at",
}

// SubmissionRepository handles database operations for form submissions.
type SubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository creates a new SubmissionRepository.
func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

// SubmissionFilters holds the optional filters for submission listing.
type SubmissionFilters struct {
	UserID *int64
	FormID *int64
}

// List retrieves submissions for an agent, newest first.
func (r *SubmissionRepository) List(ctx context.Context, agentUUID string, filters SubmissionFilters) ([]*domain.Submission, error) {
	qb := psql.
		Select(prefixed("afd", submissionColumns)...).
		From("agent_form_data afd").
		Join("agents a ON afd.agent_id = a.id").
		Where(sq.Eq{"a.agent_uuid": agentUUID})

	if filters.UserID != nil {
		qb = qb.Where(sq.Eq{"afd.user_id": *filters.UserID})
	}
	if filters.FormID != nil {
		qb = qb.Where(sq.Eq{"afd.form_id": *filters.FormID})
	}

	qb = qb.OrderBy("afd.created_at DESC")

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query for submissions: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*domain.Submission
	for rows.Next() {
		var sub domain.Submission
		var dataJSON []byte
		err := rows.Scan(
			&sub.ID,
			&sub.AgentID,
			&sub.FormID,
			&sub.UserID,
			&sub.FirmID,
			&dataJSON,
			&sub.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		if len(dataJSON) > 0 {
			if err := json.Unmarshal(dataJSON, &sub.Data); err != nil {
				return nil, fmt.Errorf("parse submission_data: %w", err)
			}
		}
		submissions = append(submissions, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return submissions, nil
}

// Create creates a submission within the submit transaction. Returns
// the submission with ID and CreatedAt populated.
func (r *SubmissionRepository) Create(ctx context.Context, tx pgx.Tx, sub *domain.Submission) error {
	dataJSON, err := json.Marshal(sub.Data)
	if err != nil {
		return fmt.Errorf("marshal submission_data: %w", err)
	}

	query, args, err := psql.
		Insert("agent_form_data").
		Columns("agent_id", "form_id", "user_id", "firm_id", "submission_data").
		Values(sub.AgentID, sub.FormID, sub.UserID, sub.FirmID, dataJSON).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for submission: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&sub.ID, &sub.CreatedAt); err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}
