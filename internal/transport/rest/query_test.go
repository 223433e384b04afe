package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sqlcoach/sqlcoach-backend/internal/domain"
)

type queryServiceMock struct {
	runFn func(ctx context.Context, sqlText string) (*domain.QueryResult, error)
}

func (m *queryServiceMock) Run(ctx context.Context, sqlText string) (*domain.QueryResult, error) {
	return m.runFn(ctx, sqlText)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestQueryHandler_Run_Success(t *testing.T) {
	t.Parallel()

	svc := &queryServiceMock{
		runFn: func(_ context.Context, sqlText string) (*domain.QueryResult, error) {
			if sqlText != "SELECT id FROM orders" {
				t.Errorf("unexpected sql forwarded: %q", sqlText)
			}
			return &domain.QueryResult{
				Rows: []map[string]any{
					{"id": int64(1)},
					{"id": int64(2)},
				},
				RowCount: 2,
			}, nil
		},
	}
	h := NewQueryHandler(svc, testLogger())

	body := bytes.NewBufferString(`{"sql":"SELECT id FROM orders"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/query", body)
	rec := httptest.NewRecorder()

	h.Run(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp queryResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.RowCount != 2 {
		t.Errorf("expected rowCount 2, got %d", resp.RowCount)
	}
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 data rows, got %d", len(resp.Data))
	}
}

func TestQueryHandler_Run_ValidationError(t *testing.T) {
	t.Parallel()

	svc := &queryServiceMock{
		runFn: func(_ context.Context, _ string) (*domain.QueryResult, error) {
			return nil, domain.NewValidationError("sql", "Only SELECT queries are allowed")
		},
	}
	h := NewQueryHandler(svc, testLogger())

	body := bytes.NewBufferString(`{"sql":"DELETE FROM orders"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/query", body)
	rec := httptest.NewRecorder()

	h.Run(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != "Only SELECT queries are allowed" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

func TestQueryHandler_Run_ExecutionError(t *testing.T) {
	t.Parallel()

	svc := &queryServiceMock{
		runFn: func(_ context.Context, _ string) (*domain.QueryResult, error) {
			return nil, errors.New(`relation "nope" does not exist`)
		},
	}
	h := NewQueryHandler(svc, testLogger())

	body := bytes.NewBufferString(`{"sql":"SELECT * FROM nope"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/query", body)
	rec := httptest.NewRecorder()

	h.Run(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != `relation "nope" does not exist` {
		t.Errorf("expected raw store message in body, got %q", resp["error"])
	}
}

func TestQueryHandler_Run_InvalidBody(t *testing.T) {
	t.Parallel()

	svc := &queryServiceMock{
		runFn: func(_ context.Context, _ string) (*domain.QueryResult, error) {
			t.Error("service should not be called for malformed body")
			return nil, nil
		},
	}
	h := NewQueryHandler(svc, testLogger())

	body := bytes.NewBufferString(`{not json`)
	req := httptest.NewRequest(http.MethodPost, "/api/query", body)
	rec := httptest.NewRecorder()

	h.Run(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
