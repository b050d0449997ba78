package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pindexlabs/agentpanel/internal/domain"
	"github.com/pindexlabs/agentpanel/internal/middleware"
	"github.com/pindexlabs/agentpanel/internal/render"
	"github.com/pindexlabs/agentpanel/internal/repository"
	"github.com/pindexlabs/agentpanel/internal/resolver"
)

// handleShellAgentList renders the launcher page.
func (h *Handler) handleShellAgentList(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	filters := repository.AgentFilters{}
	if category != "" {
		filters.Category = &category
	}

	agents, err := h.agentRepo.List(r.Context(), filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := render.AgentListData{
		Agents:   agents,
		Category: category,
		Identity: middleware.IdentityFromContext(r.Context()),
	}
	if err := h.renderer.AgentList(w, data); err != nil {
		slog.Error("failed to render agent list", "error", err)
	}
}

// handleShellAgent renders the per-agent shell. The step query
// parameter is the single navigation index shared by every menu zone
// and by the workflow selection.
func (h *Handler) handleShellAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	agentUUID := r.PathValue("agentUuid")
	identity := middleware.IdentityFromContext(ctx)

	full, err := h.agentService.GetFull(ctx, agentUUID)
	if err != nil {
		if errors.Is(err, domain.ErrAgentNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	step := 0
	if raw := r.URL.Query().Get("step"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			step = v
		}
	}

	data := render.ShellData{
		Agent:    full,
		Identity: identity,
		Zones:    render.PartitionMenus(full.Menus),
		Step:     step,
	}

	if step < len(full.Workflows) {
		data.Workflow = full.Workflows[step]

		res, err := resolver.Resolve(data.Workflow, full.Forms)
		switch {
		case err != nil:
			data.FormError = err.Error()
		case res.Form == nil:
			data.FormError = domain.ErrFormNotFound.Error()
		default:
			data.FormID = res.FormID
			html, err := h.renderer.Form(&res.Form.Schema)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			data.FormHTML = html
		}
	}

	if data.Chats, err = h.chatRepo.ListRecent(ctx, agentUUID, &identity.UserID, defaultChatLimit); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	recFilters := repository.RecommendationFilters{UserID: &identity.UserID, Limit: defaultRecommendationLimit}
	if data.Recommendations, err = h.recommendationRepo.List(ctx, agentUUID, recFilters); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.renderer.AgentShell(w, data); err != nil {
		slog.Error("failed to render agent shell", "error", err)
	}
}

// handleShellSubmit accepts the shell's form post, submits through the
// same transactional path as the API, and redirects back to the page.
func (h *Handler) handleShellSubmit(w http.ResponseWriter, r *http.Request) {
	agentUUID := r.PathValue("agentUuid")
	identity := middleware.IdentityFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	formID, err := strconv.ParseInt(r.PostForm.Get("form_id"), 10, 64)
	if err != nil {
		http.Error(w, "form_id must be numeric", http.StatusBadRequest)
		return
	}

	// Flat name to value mapping, the same shape the API accepts.
	data := make(map[string]any, len(r.PostForm))
	for name, values := range r.PostForm {
		if name == "form_id" || len(values) == 0 {
			continue
		}
		data[name] = values[0]
	}

	_, err = h.submissionService.SubmitForm(r.Context(), agentUUID, formID, identity.UserID, identity.FirmID, data)
	if err != nil {
		status, message := statusForShellError(err)
		http.Error(w, message, status)
		return
	}

	target := "/agents/" + agentUUID
	if step := r.URL.Query().Get("step"); step != "" {
		target += "?step=" + step
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func statusForShellError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrAgentNotFound), errors.Is(err, domain.ErrFormNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
