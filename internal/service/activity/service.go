// Package activity records learner query-execution attempts in the learner
// store.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sqlcoach/sqlcoach-backend/internal/domain"
)

// activityRepo defines the repository interface needed by the service.
type activityRepo interface {
	Create(ctx context.Context, rec *domain.ActivityRecord) (*domain.ActivityRecord, error)
}

// LogInput holds parameters for one activity-log entry. LoginID is opaque
// text: emails and legacy identifiers are both accepted, and nothing checks
// that the identity exists in the user store. ExecutionResult may be any
// JSON-serializable value.
type LogInput struct {
	LoginID         string
	SQLQuery        string
	ExecutionResult any
	Success         bool
}

// Service implements the activity recorder.
type Service struct {
	log  *slog.Logger
	repo activityRepo
}

// NewService creates an activity service.
func NewService(logger *slog.Logger, repo activityRepo) *Service {
	return &Service{
		log:  logger.With("service", "activity"),
		repo: repo,
	}
}

// Log serializes the execution result and appends one activity record,
// returning it with the store-assigned id and timestamp.
func (s *Service) Log(ctx context.Context, input LogInput) (*domain.ActivityRecord, error) {
	payload, err := json.Marshal(input.ExecutionResult)
	if err != nil {
		return nil, fmt.Errorf("activity.Log marshal result: %w", err)
	}

	rec, err := s.repo.Create(ctx, &domain.ActivityRecord{
		LoginID:         input.LoginID,
		SQLQuery:        input.SQLQuery,
		ExecutionResult: string(payload),
		Success:         input.Success,
	})
	if err != nil {
		return nil, fmt.Errorf("activity.Log: %w", err)
	}

	s.log.DebugContext(ctx, "activity recorded",
		slog.Int64("activity_id", rec.ID),
		slog.Bool("success", rec.Success))

	return rec, nil
}
