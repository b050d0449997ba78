package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pindexlabs/agentpanel/internal/domain"
)

var chatColumns = []string{"id", "agent_id", "user_id", "role", "message", "created_at"}

// ChatRepository handles database operations for chat messages.
type ChatRepository struct {
	pool *pgxpool.Pool
}

// NewChatRepository creates a new ChatRepository.
func NewChatRepository(pool *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{pool: pool}
}

// ListRecent retrieves the limit most recent messages for an agent,
// optionally scoped to a user, returned in chronological order. The
// limit is applied on the newest-first query before the re-ordering so
// "N most recent" is preserved.
func (r *ChatRepository) ListRecent(ctx context.Context, agentUUID string, userID *int64, limit int) ([]*domain.ChatMessage, error) {
	qb := psql.
		Select(prefixed("ac", chatColumns)...).
		From("agent_chats ac").
		Join("agents a ON ac.agent_id = a.id").
		Where(sq.Eq{"a.agent_uuid": agentUUID})

	if userID != nil {
		qb = qb.Where(sq.Eq{"ac.user_id": *userID})
	}

	qb = qb.OrderBy("ac.created_at DESC").Limit(uint64(limit))

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListRecent query for chats: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query chats: %w", err)
	}
	defer rows.Close()

	var messages []*domain.ChatMessage
	for rows.Next() {
		var msg domain.ChatMessage
		err := rows.Scan(
			&msg.ID,
			&msg.AgentID,
			&msg.UserID,
			&msg.Role,
			&msg.Message,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		messages = append(messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	// Reverse to oldest-first for display.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// Create appends a chat message. Single-statement insert on the pool;
// the connection is acquired and released internally.
func (r *ChatRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	if msg.Role == "" {
		msg.Role = domain.ChatRoleUser
	}

	query, args, err := psql.
		Insert("agent_chats").
		Columns("agent_id", "user_id", "role", "message").
		Values(msg.AgentID, msg.UserID, msg.Role, msg.Message).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for chat message: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&msg.ID, &msg.CreatedAt); err != nil {
		return fmt.Errorf("create chat message: %w", err)
	}
	return nil
}
