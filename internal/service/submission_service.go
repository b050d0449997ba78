package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pindexlabs/agentpanel/internal/domain"
	"github.com/pindexlabs/agentpanel/internal/repository"
)

// SubmissionService coordinates form submission and endpoint
// execution, the two audited action paths.
type SubmissionService struct {
	pool           *pgxpool.Pool
	agentRepo      *repository.AgentRepository
	formRepo       *repository.FormRepository
	submissionRepo *repository.SubmissionRepository
	endpointRepo   *repository.EndpointRepository
	logRepo        *repository.ActionLogRepository
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(
	pool *pgxpool.Pool,
	agentRepo *repository.AgentRepository,
	formRepo *repository.FormRepository,
	submissionRepo *repository.SubmissionRepository,
	endpointRepo *repository.EndpointRepository,
	logRepo *repository.ActionLogRepository,
) *SubmissionService {
	return &SubmissionService{
		pool:           pool,
		agentRepo:      agentRepo,
		formRepo:       formRepo,
		submissionRepo: submissionRepo,
		endpointRepo:   endpointRepo,
		logRepo:        logRepo,
	}
}

// SubmitForm persists one form submission plus its audit entry in a
// single transaction. The form must belong to the addressed agent; any
// failure rolls back both rows.
func (s *SubmissionService) SubmitForm(
	ctx context.Context,
	agentUUID string,
	formID int64,
	userID, firmID int64,
	data map[string]any,
) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	agentID, err := s.agentRepo.ResolveID(ctx, tx, agentUUID)
	if err != nil {
		return 0, err
	}

	owned, err := s.formRepo.BelongsToAgent(ctx, tx, formID, agentID)
	if err != nil {
		return 0, err
	}
	if !owned {
		return 0, domain.ErrFormNotFound
	}

	sub := &domain.Submission{
		AgentID: agentID,
		FormID:  formID,
		UserID:  userID,
		FirmID:  firmID,
		Data:    data,
	}
	if err := s.submissionRepo.Create(ctx, tx, sub); err != nil {
		return 0, err
	}

	entry := &domain.ActionLog{
		AgentID:    agentID,
		UserID:     &userID,
		FirmID:     &firmID,
		Action:     domain.ActionFormSubmission,
		InputData:  map[string]any{"form_id": formID},
		OutputData: map[string]any{"submission_id": sub.ID},
	}
	if err := s.logRepo.Create(ctx, tx, entry); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("form submitted",
		"agent_uuid", agentUUID,
		"form_id", formID,
		"submission_id", sub.ID,
		"user_id", userID,
	)

	return sub.ID, nil
}

// ExecuteEndpoint resolves a stored endpoint definition, logs the
// invocation (input only, there is no output yet), and returns the
// definition for the caller to echo. No external call is made; this is
// the extension point where per-endpoint business logic would plug in.
func (s *SubmissionService) ExecuteEndpoint(
	ctx context.Context,
	agentUUID, endpointName string,
	userID, firmID *int64,
	data map[string]any,
) (*domain.Endpoint, error) {
	agentID, err := s.agentRepo.ResolveID(ctx, s.pool, agentUUID)
	if err != nil {
		return nil, err
	}

	endpoint, err := s.endpointRepo.GetByName(ctx, agentID, endpointName)
	if err != nil {
		return nil, err
	}

	entry := &domain.ActionLog{
		AgentID:   agentID,
		UserID:    userID,
		FirmID:    firmID,
		Action:    endpointName,
		InputData: data,
	}
	if err := s.logRepo.Create(ctx, s.pool, entry); err != nil {
		return nil, err
	}

	slog.Info("endpoint executed",
		"agent_uuid", agentUUID,
		"endpoint", endpointName,
		"log_id", entry.ID,
	)

	return endpoint, nil
}
