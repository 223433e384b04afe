package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sqlcoach/sqlcoach-backend/internal/domain"
)

// schemaService defines the minimal interface needed by SchemaHandler.
type schemaService interface {
	DescribeTable(ctx context.Context, table string) (*domain.TableSchema, error)
	ListTables(ctx context.Context) ([]domain.Table, error)
}

// SchemaHandler serves the catalog introspection endpoints.
type SchemaHandler struct {
	svc schemaService
	log *slog.Logger
}

// NewSchemaHandler creates a SchemaHandler.
func NewSchemaHandler(svc schemaService, logger *slog.Logger) *SchemaHandler {
	return &SchemaHandler{svc: svc, log: logger.With("handler", "schema")}
}

type columnResponse struct {
	Name          string  `json:"name"`
	DataType      string  `json:"dataType"`
	IsNullable    bool    `json:"isNullable"`
	ColumnDefault *string `json:"columnDefault"`
	IsPrimaryKey  bool    `json:"isPrimaryKey"`
}

type tableSchemaResponse struct {
	Success   bool             `json:"success"`
	TableName string           `json:"tableName"`
	Columns   []columnResponse `json:"columns"`
}

type tableResponse struct {
	Name string `json:"name"`
}

type tableListResponse struct {
	Tables []tableResponse `json:"tables"`
}

// DescribeTable handles GET /api/schema/{tableName}.
func (h *SchemaHandler) DescribeTable(w http.ResponseWriter, r *http.Request) {
	tableName := r.PathValue("tableName")

	schema, err := h.svc.DescribeTable(r.Context(), tableName)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	columns := make([]columnResponse, 0, len(schema.Columns))
	for _, c := range schema.Columns {
		columns = append(columns, columnResponse{
			Name:          c.Name,
			DataType:      c.DataType,
			IsNullable:    c.IsNullable,
			ColumnDefault: c.ColumnDefault,
			IsPrimaryKey:  c.IsPrimaryKey,
		})
	}

	writeJSON(w, http.StatusOK, tableSchemaResponse{
		Success:   true,
		TableName: schema.Table,
		Columns:   columns,
	})
}

// ListTables handles GET /api/tables.
func (h *SchemaHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.svc.ListTables(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := tableListResponse{Tables: make([]tableResponse, 0, len(tables))}
	for _, t := range tables {
		resp.Tables = append(resp.Tables, tableResponse{Name: t.Name})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *SchemaHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "catalog lookup failed", slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, err.Error())
}
