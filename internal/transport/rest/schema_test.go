package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sqlcoach/sqlcoach-backend/internal/domain"
)

type schemaServiceMock struct {
	describeFn func(ctx context.Context, table string) (*domain.TableSchema, error)
	listFn     func(ctx context.Context) ([]domain.Table, error)
}

func (m *schemaServiceMock) DescribeTable(ctx context.Context, table string) (*domain.TableSchema, error) {
	return m.describeFn(ctx, table)
}

func (m *schemaServiceMock) ListTables(ctx context.Context) ([]domain.Table, error) {
	return m.listFn(ctx)
}

func TestSchemaHandler_DescribeTable_Success(t *testing.T) {
	t.Parallel()

	def := "nextval('orders_id_seq')"
	svc := &schemaServiceMock{
		describeFn: func(_ context.Context, table string) (*domain.TableSchema, error) {
			if table != "orders" {
				t.Errorf("expected table orders, got %q", table)
			}
			return &domain.TableSchema{
				Table: "orders",
				Columns: []domain.Column{
					{Name: "id", DataType: "bigint", IsNullable: false, ColumnDefault: &def, IsPrimaryKey: true},
					{Name: "amount", DataType: "numeric", IsNullable: true},
				},
			}, nil
		},
	}
	h := NewSchemaHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/schema/orders", nil)
	req.SetPathValue("tableName", "orders")
	rec := httptest.NewRecorder()

	h.DescribeTable(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp tableSchemaResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.TableName != "orders" {
		t.Errorf("expected tableName orders, got %q", resp.TableName)
	}
	if len(resp.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(resp.Columns))
	}
	if !resp.Columns[0].IsPrimaryKey || resp.Columns[1].IsPrimaryKey {
		t.Error("expected primary-key flag only on first column")
	}
	if resp.Columns[0].ColumnDefault == nil || *resp.Columns[0].ColumnDefault != def {
		t.Error("expected column default to round-trip")
	}
}

func TestSchemaHandler_DescribeTable_UnknownTable(t *testing.T) {
	t.Parallel()

	svc := &schemaServiceMock{
		describeFn: func(_ context.Context, table string) (*domain.TableSchema, error) {
			return &domain.TableSchema{Table: table, Columns: []domain.Column{}}, nil
		},
	}
	h := NewSchemaHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/schema/nonexistent_table", nil)
	req.SetPathValue("tableName", "nonexistent_table")
	rec := httptest.NewRecorder()

	h.DescribeTable(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for unknown table, got %d", rec.Code)
	}

	var resp tableSchemaResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if len(resp.Columns) != 0 {
		t.Errorf("expected empty columns, got %d", len(resp.Columns))
	}
}

func TestSchemaHandler_DescribeTable_StoreError(t *testing.T) {
	t.Parallel()

	svc := &schemaServiceMock{
		describeFn: func(_ context.Context, _ string) (*domain.TableSchema, error) {
			return nil, errors.New("connection reset by peer")
		},
	}
	h := NewSchemaHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/schema/orders", nil)
	req.SetPathValue("tableName", "orders")
	rec := httptest.NewRecorder()

	h.DescribeTable(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != "connection reset by peer" {
		t.Errorf("expected raw store message, got %q", resp["error"])
	}
}

func TestSchemaHandler_ListTables(t *testing.T) {
	t.Parallel()

	svc := &schemaServiceMock{
		listFn: func(_ context.Context) ([]domain.Table, error) {
			return []domain.Table{{Name: "customers"}, {Name: "orders"}}, nil
		},
	}
	h := NewSchemaHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/tables", nil)
	rec := httptest.NewRecorder()

	h.ListTables(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp tableListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(resp.Tables))
	}
	if resp.Tables[0].Name != "customers" || resp.Tables[1].Name != "orders" {
		t.Errorf("unexpected table list: %+v", resp.Tables)
	}
}

func TestSchemaHandler_ListTables_StoreError(t *testing.T) {
	t.Parallel()

	svc := &schemaServiceMock{
		listFn: func(_ context.Context) ([]domain.Table, error) {
			return nil, errors.New("timeout")
		},
	}
	h := NewSchemaHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/tables", nil)
	rec := httptest.NewRecorder()

	h.ListTables(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}
