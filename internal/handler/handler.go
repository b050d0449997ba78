package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/pindexlabs/agentpanel/docs" // Import generated docs
	"github.com/pindexlabs/agentpanel/internal/handler/dto"
	"github.com/pindexlabs/agentpanel/internal/render"
	"github.com/pindexlabs/agentpanel/internal/repository"
	"github.com/pindexlabs/agentpanel/internal/service"
	"github.com/pindexlabs/agentpanel/internal/static"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	pool               *pgxpool.Pool
	agentService       *service.AgentService
	submissionService  *service.SubmissionService
	agentRepo          *repository.AgentRepository
	menuRepo           *repository.MenuRepository
	viewRepo           *repository.ViewRepository
	workflowRepo       *repository.WorkflowRepository
	formRepo           *repository.FormRepository
	submissionRepo     *repository.SubmissionRepository
	endpointRepo       *repository.EndpointRepository
	chatRepo           *repository.ChatRepository
	recommendationRepo *repository.RecommendationRepository
	logRepo            *repository.ActionLogRepository
	renderer           *render.Renderer
}

// New creates a new Handler instance with all dependencies.
func New(pool *pgxpool.Pool) (*Handler, error) {
	// Create repositories
	agentRepo := repository.NewAgentRepository(pool)
	menuRepo := repository.NewMenuRepository(pool)
	viewRepo := repository.NewViewRepository(pool)
	workflowRepo := repository.NewWorkflowRepository(pool)
	formRepo := repository.NewFormRepository(pool)
	submissionRepo := repository.NewSubmissionRepository(pool)
	endpointRepo := repository.NewEndpointRepository(pool)
	chatRepo := repository.NewChatRepository(pool)
	recommendationRepo := repository.NewRecommendationRepository(pool)
	logRepo := repository.NewActionLogRepository(pool)

	// Create services
	agentService := service.NewAgentService(pool, agentRepo, menuRepo, formRepo, workflowRepo, endpointRepo, viewRepo)
	submissionService := service.NewSubmissionService(pool, agentRepo, formRepo, submissionRepo, endpointRepo, logRepo)

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	return &Handler{
		pool:               pool,
		agentService:       agentService,
		submissionService:  submissionService,
		agentRepo:          agentRepo,
		menuRepo:           menuRepo,
		viewRepo:           viewRepo,
		workflowRepo:       workflowRepo,
		formRepo:           formRepo,
		submissionRepo:     submissionRepo,
		endpointRepo:       endpointRepo,
		chatRepo:           chatRepo,
		recommendationRepo: recommendationRepo,
		logRepo:            logRepo,
		renderer:           renderer,
	}, nil
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /api/health", h.handleHealth)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	// Embedded shell assets
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static.Assets)))

	// Agent API
	mux.HandleFunc("GET /api/agents", h.handleListAgents)
	mux.HandleFunc("POST /api/agents/create-full", h.handleCreateFull)
	mux.HandleFunc("GET /api/agents/{agentUuid}", h.handleGetFullAgent)
	mux.HandleFunc("GET /api/agents/{agentUuid}/menus", h.handleListMenus)
	mux.HandleFunc("GET /api/agents/{agentUuid}/views", h.handleListViews)
	mux.HandleFunc("GET /api/agents/{agentUuid}/workflows", h.handleListWorkflows)
	mux.HandleFunc("GET /api/agents/{agentUuid}/workflows/{workflowId}", h.handleGetWorkflow)
	mux.HandleFunc("GET /api/agents/{agentUuid}/forms", h.handleListForms)
	mux.HandleFunc("GET /api/agents/{agentUuid}/forms/{formId}", h.handleGetForm)
	mux.HandleFunc("POST /api/agents/{agentUuid}/forms/{formId}/submit", h.handleSubmitForm)
	mux.HandleFunc("GET /api/agents/{agentUuid}/submissions", h.handleListSubmissions)
	mux.HandleFunc("POST /api/agents/{agentUuid}/execute/{endpointName}", h.handleExecuteEndpoint)
	mux.HandleFunc("GET /api/agents/{agentUuid}/chats", h.handleListChats)
	mux.HandleFunc("POST /api/agents/{agentUuid}/chats", h.handleSendChat)
	mux.HandleFunc("GET /api/agents/{agentUuid}/recommendations", h.handleListRecommendations)
	mux.HandleFunc("POST /api/agents/{agentUuid}/recommendations", h.handleCreateRecommendation)

	// Server-rendered shell
	mux.HandleFunc("GET /{$}", h.handleShellAgentList)
	mux.HandleFunc("GET /agents/{agentUuid}", h.handleShellAgent)
	mux.HandleFunc("POST /agents/{agentUuid}/workflows/{workflowId}/submit", h.handleShellSubmit)
}

// handleHealth probes database connectivity.
//
//	@Summary		Health check
//	@Description	Returns success when the server and database are reachable
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	dto.Envelope
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/health [get]
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var one int
	if err := h.pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		slog.Error("database health check failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, dto.Fail("database unavailable"))
		return
	}

	respondJSON(w, http.StatusOK, dto.OKMessage(nil, "Server and database are healthy"))
}

// Ping checks if the database is reachable (used for testing).
func (h *Handler) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondDomainError maps a domain error to a status and writes the
// failure envelope.
func respondDomainError(w http.ResponseWriter, err error) {
	status, message := dto.MapDomainError(err)
	respondJSON(w, status, dto.Fail(message))
}

// queryInt64 parses an optional int64 query parameter. Returns nil when
// absent or unparseable.
func queryInt64(r *http.Request, name string) *int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// queryString returns an optional string query parameter.
func queryString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// queryLimit parses a limit query parameter with a fallback default.
func queryLimit(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// pathInt64 extracts a numeric path parameter. Returns (0, false) and
// responds with 400 when the value is not an integer.
func pathInt64(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	v, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, dto.Fail(name+" must be numeric"))
		return 0, false
	}
	return v, true
}
