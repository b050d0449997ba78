package domain

import "time"

// MenuType is the placement zone of a menu entry.
type MenuType string

const (
	MenuTypeHeader         MenuType = "header"
	MenuTypeSidebar        MenuType = "sidebar"
	MenuTypeFooter         MenuType = "footer"
	MenuTypeFloating       MenuType = "floating"
	MenuTypeDashboard      MenuType = "dashboard"
	MenuTypeChat           MenuType = "chat"
	MenuTypeRecommendation MenuType = "recommendation"
)

// MenuTypes lists every placement zone in shell rendering order.
var MenuTypes = []MenuType{
	MenuTypeHeader,
	MenuTypeSidebar,
	MenuTypeFooter,
	MenuTypeFloating,
	MenuTypeDashboard,
	MenuTypeChat,
	MenuTypeRecommendation,
}

// IsValid checks if the menu type is one of the allowed zones.
func (t MenuType) IsValid() bool {
	switch t {
	case MenuTypeHeader, MenuTypeSidebar, MenuTypeFooter, MenuTypeFloating,
		MenuTypeDashboard, MenuTypeChat, MenuTypeRecommendation:
		return true
	default:
		return false
	}
}

// Menu is a single navigation entry owned by an agent.
type Menu struct {
	ID        int64
	AgentID   int64
	Type      MenuType
	Label     string
	Route     string
	Icon      string
	Tooltip   string
	Badge     string
	OrderNo   int
	CreatedAt time.Time
}
