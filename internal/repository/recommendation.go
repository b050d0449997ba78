package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pindexlabs/agentpanel/internal/domain"
)

var recommendationColumns = []string{
	"id", "agent_id", "user_id", "recommendation_text", "category", "created_at",
}

// RecommendationRepository handles database operations for recommendations.
type RecommendationRepository struct {
	pool *pgxpool.Pool
}

// NewRecommendationRepository creates a new RecommendationRepository.
func NewRecommendationRepository(pool *pgxpool.Pool) *RecommendationRepository {
	return &RecommendationRepository{pool: pool}
}

// RecommendationFilters holds the optional filters for listing.
type RecommendationFilters struct {
	UserID   *int64
	Category *string
	Limit    int
}

// List retrieves recommendations for an agent, newest first. A
// recommendation with no owning user is visible to every user, so the
// user filter matches rows where user_id equals the caller OR is NULL.
func (r *RecommendationRepository) List(ctx context.Context, agentUUID string, filters RecommendationFilters) ([]*domain.Recommendation, error) {
	qb := psql.
		Select(prefixed("ar", recommendationColumns)...).
		From("agent_recommendations ar").
		Join("agents a ON ar.agent_id = a.id").
		Where(sq.Eq{"a.agent_uuid": agentUUID})

	if filters.UserID != nil {
		qb = qb.Where(sq.Or{
			sq.Eq{"ar.user_id": *filters.UserID},
			sq.Eq{"ar.user_id": nil},
		})
	}
	if filters.Category != nil {
		qb = qb.Where(sq.Eq{"ar.category": *filters.Category})
	}

	qb = qb.OrderBy("ar.created_at DESC").Limit(uint64(filters.Limit))

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query for recommendations: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recommendations: %w", err)
	}
	defer rows.Close()

	var recs []*domain.Recommendation
	for rows.Next() {
		var rec domain.Recommendation
		err := rows.Scan(
			&rec.ID,
			&rec.AgentID,
			&rec.UserID,
			&rec.Text,
			&rec.Category,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		recs = append(recs, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return recs, nil
}

// Create appends a recommendation. Single-statement insert on the pool.
func (r *RecommendationRepository) Create(ctx context.Context, rec *domain.Recommendation) error {
	query, args, err := psql.
		Insert("agent_recommendations").
		Columns("agent_id", "user_id", "recommendation_text", "category").
		Values(rec.AgentID, rec.UserID, rec.Text, rec.Category).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for recommendation: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return fmt.Errorf("create recommendation: %w", err)
	}
	return nil
}
