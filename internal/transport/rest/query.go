package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sqlcoach/sqlcoach-backend/internal/domain"
)

// queryService defines the minimal interface needed by QueryHandler.
type queryService interface {
	Run(ctx context.Context, sqlText string) (*domain.QueryResult, error)
}

// QueryHandler serves the query proxy endpoint.
type QueryHandler struct {
	svc queryService
	log *slog.Logger
}

// NewQueryHandler creates a QueryHandler.
func NewQueryHandler(svc queryService, logger *slog.Logger) *QueryHandler {
	return &QueryHandler{svc: svc, log: logger.With("handler", "query")}
}

type queryRequest struct {
	SQL string `json:"sql"`
}

type queryResponse struct {
	Success  bool             `json:"success"`
	Data     []map[string]any `json:"data"`
	RowCount int              `json:"rowCount"`
}

// Run handles POST /api/query.
func (h *QueryHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Run(r.Context(), req.SQL)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, queryResponse{
		Success:  true,
		Data:     result.Rows,
		RowCount: result.RowCount,
	})
}

func (h *QueryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "query execution failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
