package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pindexlabs/agentpanel/internal/domain"
)

var menuColumns = []string{
	"id", "agent_id", "menu_type", "label", "route", "icon", "tooltip",
	"badge", "order_no", "created_at",
}

// MenuRepository handles database operations for agent menus.
type MenuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository creates a new MenuRepository.
func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

func scanMenus(rows pgx.Rows) ([]*domain.Menu, error) {
	defer rows.Close()

	var menus []*domain.Menu
	for rows.Next() {
		var menu domain.Menu
		err := rows.Scan(
			&menu.ID,
			&menu.AgentID,
			&menu.Type,
			&menu.Label,
			&menu.Route,
			&menu.Icon,
			&menu.Tooltip,
			&menu.Badge,
			&menu.OrderNo,
			&menu.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		menus = append(menus, &menu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return menus, nil
}

// prefixed qualifies a column list with a table alias for joins.
func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

// ListByAgentUUID retrieves menus for an agent, optionally filtered by
// placement zone, ordered by order_no then id.
func (r *MenuRepository) ListByAgentUUID(ctx context.Context, agentUUID string, menuType *domain.MenuType) ([]*domain.Menu, error) {
	qb := psql.
		Select(prefixed("am", menuColumns)...).
		From("agent_menus am").
		Join("agents a ON am.agent_id = a.id").
		Where(sq.Eq{"a.agent_uuid": agentUUID})

	if menuType != nil {
		qb = qb.Where(sq.Eq{"am.menu_type": *menuType})
	}

	qb = qb.OrderBy("am.order_no", "am.id")

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByAgentUUID query for menus: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query menus: %w", err)
	}

	return scanMenus(rows)
}

// ListByAgentID retrieves all menus for the full-agent payload,
// ordered by zone then display order.
func (r *MenuRepository) ListByAgentID(ctx context.Context, agentID int64) ([]*domain.Menu, error) {
	query, args, err := psql.
		Select(menuColumns...).
		From("agent_menus").
		Where(sq.Eq{"agent_id": agentID}).
		OrderBy("menu_type", "order_no", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListByAgentID query for menus: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query menus: %w", err)
	}

	return scanMenus(rows)
}

// Create creates a menu within a transaction. An empty menu type
// defaults to the sidebar zone.
func (r *MenuRepository) Create(ctx context.Context, tx pgx.Tx, menu *domain.Menu) error {
	if menu.Type == "" {
		menu.Type = domain.MenuTypeSidebar
	}
	if !menu.Type.IsValid() {
		return fmt.Errorf("%w: unknown menu_type %q", domain.ErrValidation, menu.Type)
	}

	query, args, err := psql.
		Insert("agent_menus").
		Columns("agent_id", "menu_type", "label", "route", "icon", "tooltip", "badge", "order_no").
		Values(menu.AgentID, menu.Type, menu.Label, menu.Route, menu.Icon, menu.Tooltip, menu.Badge, menu.OrderNo).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for menu: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&menu.ID, &menu.CreatedAt); err != nil {
		return fmt.Errorf("create menu: %w", err)
	}
	return nil
}
