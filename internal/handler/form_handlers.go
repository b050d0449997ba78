package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pindexlabs/agentpanel/internal/handler/dto"
	"github.com/pindexlabs/agentpanel/internal/repository"
)

// handleListForms returns an agent's forms.
//
//	@Summary		List agent forms
//	@Tags			forms
//	@Produce		json
//	@Param			agentUuid	path		string	true	"Agent UUID"
//	@Success		200	{object}	dto.Envelope{data=[]dto.FormResponse}
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/agents/{agentUuid}/forms [get]
func (h *Handler) handleListForms(w http.ResponseWriter, r *http.Request) {
	forms, err := h.formRepo.ListByAgentUUID(r.Context(), r.PathValue("agentUuid"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]dto.FormResponse, 0, len(forms))
	for _, f := range forms {
		resp = append(resp, dto.ToFormResponse(f))
	}
	respondJSON(w, http.StatusOK, dto.OK(resp))
}

// handleGetForm returns one form scoped to an agent.
//
//	@Summary		Get form
//	@Tags			forms
//	@Produce		json
//	@Param			agentUuid	path		string	true	"Agent UUID"
//	@Param			formId		path		int		true	"Form ID"
//	@Success		200	{object}	dto.Envelope{data=dto.FormResponse}
//	@Failure		404	{object}	dto.Envelope
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/agents/{agentUuid}/forms/{formId} [get]
func (h *Handler) handleGetForm(w http.ResponseWriter, r *http.Request) {
	formID, ok := pathInt64(w, r, "formId")
	if !ok {
		return
	}

	form, err := h.formRepo.GetByID(r.Context(), r.PathValue("agentUuid"), formID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.OK(dto.ToFormResponse(form)))
}

// handleSubmitForm persists a submission plus its audit log entry in a
// single transaction.
//
//	@Summary		Submit form
//	@Description	Validates the payload, verifies the form belongs to the agent, and inserts the submission and its audit log row atomically
//	@Tags			forms
//	@Accept			json
//	@Produce		json
//	@Param			agentUuid	path		string					true	"Agent UUID"
//	@Param			formId		path		int						true	"Form ID"
//	@Param			request		body		dto.SubmitFormRequest	true	"Submission payload"
//	@Success		201	{object}	dto.Envelope{data=dto.SubmitFormResponse}
//	@Failure		400	{object}	dto.Envelope
//	@Failure		404	{object}	dto.Envelope
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/agents/{agentUuid}/forms/{formId}/submit [post]
func (h *Handler) handleSubmitForm(w http.ResponseWriter, r *http.Request) {
	formID, ok := pathInt64(w, r, "formId")
	if !ok {
		return
	}

	var req dto.SubmitFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, dto.Fail("invalid JSON body"))
		return
	}
	if req.UserID == nil || req.FirmID == nil || req.SubmissionData == nil {
		respondJSON(w, http.StatusBadRequest, dto.Fail("user_id, firm_id and submission_data are required"))
		return
	}

	submissionID, err := h.submissionService.SubmitForm(
		r.Context(),
		r.PathValue("agentUuid"),
		formID,
		*req.UserID,
		*req.FirmID,
		req.SubmissionData,
	)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := dto.SubmitFormResponse{SubmissionID: submissionID}
	respondJSON(w, http.StatusCreated, dto.OKMessage(resp, "Form submitted successfully"))
}

// handleListSubmissions returns an agent's submissions, newest first.
//
//	@Summary		List submissions
//	@Tags			forms
//	@Produce		json
//	@Param			agentUuid	path		string	true	"Agent UUID"
//	@Param			user_id		query		int		false	"Filter by submitting user"
//	@Param			form_id		query		int		false	"Filter by form"
//	@Success		200	{object}	dto.Envelope{data=[]dto.SubmissionResponse}
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/agents/{agentUuid}/submissions [get]
func (h *Handler) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	filters := repository.SubmissionFilters{
		UserID: queryInt64(r, "user_id"),
		FormID: queryInt64(r, "form_id"),
	}

	submissions, err := h.submissionRepo.List(r.Context(), r.PathValue("agentUuid"), filters)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := make([]dto.SubmissionResponse, 0, len(submissions))
	for _, s := range submissions {
		resp = append(resp, dto.ToSubmissionResponse(s))
	}
	respondJSON(w, http.StatusOK, dto.OK(resp))
}

// handleExecuteEndpoint logs the invocation and echoes the stored
// endpoint definition plus the submitted payload.
//
//	@Summary		Execute endpoint
//	@Description	Resolves the endpoint by name within the agent, logs the invocation with its input, and echoes the definition; no external call is made
//	@Tags			endpoints
//	@Accept			json
//	@Produce		json
//	@Param			agentUuid		path		string				true	"Agent UUID"
//	@Param			endpointName	path		string				true	"Endpoint name"
//	@Param			request			body		dto.ExecuteRequest	true	"Invocation payload"
//	@Success		200	{object}	dto.Envelope{data=dto.ExecuteResponse}
//	@Failure		404	{object}	dto.Envelope
//	@Failure		500	{object}	dto.Envelope
//	@Router			/api/agents/{agentUuid}/execute/{endpointName} [post]
func (h *Handler) handleExecuteEndpoint(w http.ResponseWriter, r *http.Request) {
	var req dto.ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, dto.Fail("invalid JSON body"))
		return
	}

	endpointName := r.PathValue("endpointName")
	endpoint, err := h.submissionService.ExecuteEndpoint(
		r.Context(),
		r.PathValue("agentUuid"),
		endpointName,
		req.UserID,
		req.FirmID,
		req.Data,
	)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	resp := dto.ExecuteResponse{
		Endpoint:      dto.ToEndpointResponse(endpoint),
		SubmittedData: req.Data,
	}
	respondJSON(w, http.StatusOK, dto.OKMessage(resp, endpointName+" executed successfully"))
}
