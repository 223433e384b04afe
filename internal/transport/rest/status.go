package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
)

// timeQuerier defines the minimal interface for the store round-trip probe.
type timeQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StatusHandler serves the plain connectivity test endpoints.
type StatusHandler struct {
	learner timeQuerier
	log     *slog.Logger
}

// NewStatusHandler creates a StatusHandler.
func NewStatusHandler(learner timeQuerier, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{learner: learner, log: logger.With("handler", "status")}
}

type testResponse struct {
	Message string `json:"message"`
}

type storeTestResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Test handles GET /api/test. It answers without touching any store.
func (h *StatusHandler) Test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, testResponse{Message: "Server is running"})
}

// TestStore handles GET /api/test-supabase. It runs a round trip
// against the learner store and reports the store's clock.
func (h *StatusHandler) TestStore(w http.ResponseWriter, r *http.Request) {
	var now time.Time
	if err := h.learner.QueryRow(r.Context(), "SELECT NOW()").Scan(&now); err != nil {
		h.log.ErrorContext(r.Context(), "store probe failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, storeTestResponse{
		Success: true,
		Message: "Learner store connection successful",
		Time:    now,
	})
}
