package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pindexlabs/agentpanel/internal/domain"
	"github.com/pindexlabs/agentpanel/internal/handler/dto"
	"github.com/pindexlabs/agentpanel/internal/repository"
)

const (
	defaultChatLimit           = 50
	defaultRecommendationLimit = 10
)

// handleListChats returns the most recent chat messages in
// chronological order.
//
//	@Summary		List chat messages
//	@Description	Returns the limit most recent messages, oldest first, optionally scoped to a user
//	@Tags			chats
//	@Produce		json
//	@Param			agentUuid	path		string	true	"Agent UUID"
//	@Param			user_id		query		int		false	"Filter by user"
//	@Param			limit		query		int		false	"Maximum messages (default 50)"
//	@Success		200	{object}	dto.Envelope{data=[]dto.ChatMessageResponse}
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/agents/{agentUuid}/chats [get]
func (h *Handler) handleListChats(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chatRepo.ListRecent(
		r.Context(),
		r.PathValue("agentUuid"),
		queryInt64(r, "user_id"),
		queryLimit(r, defaultChatLimit),
	)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, dto.ToChatMessageResponse(m))
	}
	respondJSON(w, http.StatusOK, dto.OK(resp))
}

// handleSendChat appends a chat message.
//
//	@Summary		Send chat message
//	@Description	Appends one message; role defaults to user
//	@Tags			chats
//	@Accept			json
//	@Produce		json
//	@Param			agentUuid	path		string				true	"Agent UUID"
//	@Param			request		body		dto.SendChatRequest	true	"Message"
//	@Success		201	{object}	dto.Envelope{data=dto.ChatMessageResponse}
//	@Failure		400	{object}	dto.Envelope
//	@Failure		404	{object}	dto.Envelope
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/agents/{agentUuid}/chats [post]
func (h *Handler) handleSendChat(w http.ResponseWriter, r *http.Request) {
	var req dto.SendChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, dto.Fail("invalid JSON body"))
		return
	}
	if req.UserID == nil || req.Message == "" {
		respondJSON(w, http.StatusBadRequest, dto.Fail("user_id and message are required"))
		return
	}

	role := domain.ChatRole(req.Role)
	if req.Role != "" && !role.IsValid() {
		respondJSON(w, http.StatusBadRequest, dto.Fail("role must be user or assistant"))
		return
	}

	agentID, err := h.agentRepo.ResolveID(r.Context(), h.pool, r.PathValue("agentUuid"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	msg := &domain.ChatMessage{
		AgentID: agentID,
		UserID:  *req.UserID,
		Role:    role,
		Message: req.Message,
	}
	if err := h.chatRepo.Create(r.Context(), msg); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.OK(dto.ToChatMessageResponse(msg)))
}

// handleListRecommendations returns recommendations visible to the
// requesting user.
//
//	@Summary		List recommendations
//	@Description	Returns recommendations newest first; the user filter also matches rows owned by no user
//	@Tags			recommendations
//	@Produce		json
//	@Param			agentUuid	path		string	true	"Agent UUID"
//	@Param			user_id		query		int		false	"Filter by user (NULL-user rows always included)"
//	@Param			category	query		string	false	"Filter by category"
//	@Param			limit		query		int		false	"Maximum rows (default 10)"
//	@Success		200	{object}	dto.Envelope{data=[]dto.RecommendationResponse}
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/agents/{agentUuid}/recommendations [get]
func (h *Handler) handleListRecommendations(w http.ResponseWriter, r *http.Request) {
	filters := repository.RecommendationFilters{
		UserID:   queryInt64(r, "user_id"),
		Category: queryString(r, "category"),
		Limit:    queryLimit(r, defaultRecommendationLimit),
	}

	recs, err := h.recommendationRepo.List(r.Context(), r.PathValue("agentUuid"), filters)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]dto.RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, dto.ToRecommendationResponse(rec))
	}
	respondJSON(w, http.StatusOK, dto.OK(resp))
}

// handleCreateRecommendation appends a recommendation.
//
//	@Summary		Create recommendation
//	@Description	Appends one recommendation; user and category are optional, a missing user makes it visible to everyone
//	@Tags			recommendations
//	@Accept			json
//	@Produce		json
//	@Param			agentUuid	path		string							true	"Agent UUID"
//	@Param			request		body		dto.CreateRecommendationRequest	true	"Recommendation"
//	@Success		201	{object}	dto.Envelope{data=dto.RecommendationResponse}
//	@Failure		400	{object}	dto.Envelope
//	@Failure		404	{object}	dto.Envelope
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/agents/{agentUuid}/recommendations [post]
func (h *Handler) handleCreateRecommendation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, dto.Fail("invalid JSON body"))
		return
	}
	if req.RecommendationText == "" {
		respondJSON(w, http.StatusBadRequest, dto.Fail("recommendation_text is required"))
		return
	}

	agentID, err := h.agentRepo.ResolveID(r.Context(), h.pool, r.PathValue("agentUuid"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	rec := &domain.Recommendation{
		AgentID:  agentID,
		UserID:   req.UserID,
		Text:     req.RecommendationText,
		Category: req.Category,
	}
	if err := h.recommendationRepo.Create(r.Context(), rec); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.OK(dto.ToRecommendationResponse(rec)))
}
