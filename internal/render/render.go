// Package render produces the server-rendered HTML shell: the agent
// launcher page, the per-agent shell with its seven menu zones, and
// the dynamic form markup driven by stored form schemas.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/pindexlabs/agentpanel/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer holds the parsed shell templates.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates. Parse failures are programmer
// errors, surfaced at startup.
func New() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"zoneTitle": zoneTitle,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// AgentListData feeds the launcher page.
type AgentListData struct {
	Agents   []*domain.Agent
	Category string
	Identity domain.Identity
}

// AgentList renders the launcher page with optional category filter.
func (r *Renderer) AgentList(w io.Writer, data AgentListData) error {
	if err := r.templates.ExecuteTemplate(w, "agent_list.tmpl", data); err != nil {
		return fmt.Errorf("render agent list: %w", err)
	}
	return nil
}

// Zone is one menu placement area of the shell with its entries.
type Zone struct {
	Type  domain.MenuType
	Menus []*domain.Menu
}

// ShellData feeds the per-agent shell page. Step is the shared
// positional index every zone highlights; the workflow and form belong
// to that index.
type ShellData struct {
	Agent           *domain.FullAgent
	Identity        domain.Identity
	Zones           []Zone
	Step            int
	Workflow        *domain.Workflow
	FormID          int64
	FormHTML        template.HTML
	FormError       string
	Chats           []*domain.ChatMessage
	Recommendations []*domain.Recommendation
}

// AgentShell renders the per-agent page.
func (r *Renderer) AgentShell(w io.Writer, data ShellData) error {
	if err := r.templates.ExecuteTemplate(w, "agent_shell.tmpl", data); err != nil {
		return fmt.Errorf("render agent shell: %w", err)
	}
	return nil
}

// PartitionMenus splits menus into the seven placement zones, in shell
// rendering order. Zones with no entries are still present so the
// template's layout stays stable.
func PartitionMenus(menus []*domain.Menu) []Zone {
	byType := make(map[domain.MenuType][]*domain.Menu, len(domain.MenuTypes))
	for _, m := range menus {
		byType[m.Type] = append(byType[m.Type], m)
	}

	zones := make([]Zone, 0, len(domain.MenuTypes))
	for _, t := range domain.MenuTypes {
		zones = append(zones, Zone{Type: t, Menus: byType[t]})
	}
	return zones
}

func zoneTitle(t domain.MenuType) string {
	switch t {
	case domain.MenuTypeHeader:
		return "Header"
	case domain.MenuTypeSidebar:
		return "Sidebar"
	case domain.MenuTypeFooter:
		return "Footer"
	case domain.MenuTypeFloating:
		return "Floating"
	case domain.MenuTypeDashboard:
		return "Dashboard"
	case domain.MenuTypeChat:
		return "Chat"
	case domain.MenuTypeRecommendation:
		return "Recommendations"
	default:
		return string(t)
	}
}
