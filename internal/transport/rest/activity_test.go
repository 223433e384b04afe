package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sqlcoach/sqlcoach-backend/internal/domain"
	"github.com/sqlcoach/sqlcoach-backend/internal/service/activity"
)

type activityServiceMock struct {
	logFn func(ctx context.Context, input activity.LogInput) (*domain.ActivityRecord, error)
}

func (m *activityServiceMock) Log(ctx context.Context, input activity.LogInput) (*domain.ActivityRecord, error) {
	return m.logFn(ctx, input)
}

func TestActivityHandler_Log_Success(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &activityServiceMock{
		logFn: func(_ context.Context, input activity.LogInput) (*domain.ActivityRecord, error) {
			if input.LoginID != "student-42" {
				t.Errorf("expected loginId student-42, got %q", input.LoginID)
			}
			return &domain.ActivityRecord{
				ID:              7,
				LoginID:         input.LoginID,
				SQLQuery:        input.SQLQuery,
				ExecutionResult: `{"rowCount":3}`,
				Success:         input.Success,
				CreatedAt:       created,
			}, nil
		},
	}
	h := NewActivityHandler(svc, testLogger())

	body := bytes.NewBufferString(`{"loginId":"student-42","sqlQuery":"SELECT 1","executionResult":{"rowCount":3},"success":true}`)
	req := httptest.NewRequest(http.MethodPost, "/api/log-activity", body)
	rec := httptest.NewRecorder()

	h.Log(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp logActivityResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Activity.ID != 7 {
		t.Errorf("expected store-assigned id 7, got %d", resp.Activity.ID)
	}
	if !resp.Activity.CreatedAt.Equal(created) {
		t.Errorf("expected store-assigned timestamp, got %v", resp.Activity.CreatedAt)
	}
}

func TestActivityHandler_Log_StoreError(t *testing.T) {
	t.Parallel()

	svc := &activityServiceMock{
		logFn: func(_ context.Context, _ activity.LogInput) (*domain.ActivityRecord, error) {
			return nil, errors.New("insert failed")
		},
	}
	h := NewActivityHandler(svc, testLogger())

	body := bytes.NewBufferString(`{"loginId":"x","sqlQuery":"SELECT 1","executionResult":null,"success":false}`)
	req := httptest.NewRequest(http.MethodPost, "/api/log-activity", body)
	rec := httptest.NewRecorder()

	h.Log(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != "insert failed" {
		t.Errorf("expected raw store message, got %q", resp["error"])
	}
}
