package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/sqlcoach/sqlcoach-backend/internal/domain"
	"github.com/sqlcoach/sqlcoach-backend/internal/service/activity"
)

// activityService defines the minimal interface needed by ActivityHandler.
type activityService interface {
	Log(ctx context.Context, input activity.LogInput) (*domain.ActivityRecord, error)
}

// ActivityHandler serves the activity logging endpoint.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

type logActivityRequest struct {
	LoginID         string `json:"loginId"`
	SQLQuery        string `json:"sqlQuery"`
	ExecutionResult any    `json:"executionResult"`
	Success         bool   `json:"success"`
}

type logActivityResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Activity activityResponse `json:"activity"`
}

type activityResponse struct {
	ID              int64     `json:"id"`
	LoginID         string    `json:"loginId"`
	SQLQuery        string    `json:"sqlQuery"`
	ExecutionResult string    `json:"executionResult"`
	Success         bool      `json:"success"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Log handles POST /api/log-activity.
func (h *ActivityHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req logActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.svc.Log(r.Context(), activity.LogInput{
		LoginID:         req.LoginID,
		SQLQuery:        req.SQLQuery,
		ExecutionResult: req.ExecutionResult,
		Success:         req.Success,
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "activity logging failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, logActivityResponse{
		Success: true,
		Message: "Activity logged successfully",
		Activity: activityResponse{
			ID:              record.ID,
			LoginID:         record.LoginID,
			SQLQuery:        record.SQLQuery,
			ExecutionResult: record.ExecutionResult,
			Success:         record.Success,
			CreatedAt:       record.CreatedAt,
		},
	})
}
