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

var formColumns = []string{
	"id", "agent_id", "form_name", "description", "form_schema",
	"created_by_user_id", "firm_id", "created_at",
}

// FormRepository handles database operations for agent forms.
type FormRepository struct {
	pool *pgxpool.Pool
}

// NewFormRepository creates a new FormRepository.
func NewFormRepository(pool *pgxpool.Pool) *FormRepository {
	return &FormRepository{pool: pool}
}

func scanForm(row pgx.Row) (*domain.Form, error) {
	var form domain.Form
	var schemaJSON []byte

	err := row.Scan(
		&form.ID,
		&form.AgentID,
		&form.Name,
		&form.Description,
		&schemaJSON,
		&form.CreatedByUserID,
		&form.FirmID,
		&form.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFormNotFound
		}
		return nil, fmt.Errorf("scan form: %w", err)
	}

	if len(schemaJSON) > 0 {
		if err := json.Unmarshal(schemaJSON, &form.Schema); err != nil {
			return nil, fmt.Errorf("parse form_schema: %w", err)
		}
	}

	return &form, nil
}

func scanForms(rows pgx.Rows) ([]*domain.Form, error) {
	defer rows.Close()

	var forms []*domain.Form
	for rows.Next() {
		form, err := scanForm(rows)
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return forms, nil
}

// ListByAgentUUID retrieves all forms for an agent.
func (r *FormRepository) ListByAgentUUID(ctx context.Context, agentUUID string) ([]*domain.Form, error) {
	query, args, err := psql.
		Select(prefixed("af", formColumns)...).
		From("agent_forms af").
		Join("agents a ON af.agent_id = a.id").
		Where(sq.Eq{"a.agent_uuid": agentUUID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByAgentUUID query for forms: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query forms: %w", err)
	}

	return scanForms(rows)
}

// ListByAgentID retrieves all forms for the full-agent payload.
func (r *FormRepository) ListByAgentID(ctx context.Context, agentID int64) ([]*domain.Form, error) {
	query, args, err := psql.
		Select(formColumns...).
		From("agent_forms").
		Where(sq.Eq{"agent_id": agentID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByAgentID query for forms: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query forms: %w", err)
	}

	return scanForms(rows)
}

// GetByID retrieves one form scoped to an agent UUID.
func (r *FormRepository) GetByID(ctx context.Context, agentUUID string, formID int64) (*domain.Form, error) {
	query, args, err := psql.
		Select(prefixed("af", formColumns)...).
		From("agent_forms af").
		Join("agents a ON af.agent_id = a.id").
		Where(sq.Eq{"a.agent_uuid": agentUUID, "af.id": formID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for form: %w", err)
	}

	return scanForm(r.pool.QueryRow(ctx, query, args...))
}

// BelongsToAgent reports whether the form exists and is owned by the
// agent. Runs inside the submission transaction.
func (r *FormRepository) BelongsToAgent(ctx context.Context, q Querier, formID, agentID int64) (bool, error) {
	query, args, err := psql.
		Select("id").
		From("agent_forms").
		Where(sq.Eq{"id": formID, "agent_id": agentID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build BelongsToAgent query for form: %w", err)
	}

	var id int64
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("query form ownership: %w", err)
	}
	return true, nil
}

// Create creates a form within a transaction. Returns the form with
// ID and CreatedAt populated; the caller uses the ID to rewrite
// workflow references by name.
func (r *FormRepository) Create(ctx context.Context, tx pgx.Tx, form *domain.Form) error {
	if err := form.Schema.Validate(); err != nil {
		return fmt.Errorf("form %q: %w", form.Name, err)
	}

	schemaJSON, err := json.Marshal(form.Schema)
	if err != nil {
		return fmt.Errorf("marshal form_schema: %w", err)
	}

	query, args, err := psql.
		Insert("agent_forms").
		Columns("agent_id", "form_name", "description", "form_schema", "created_by_user_id", "firm_id").
		Values(form.AgentID, form.Name, form.Description, schemaJSON, form.CreatedByUserID, form.FirmID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for form: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&form.ID, &form.CreatedAt); err != nil {
		return fmt.Errorf("create form: %w", err)
	}
	return nil
}
