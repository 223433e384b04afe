// Package schemainfo assembles table descriptions from warehouse catalog
// metadata.
package schemainfo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sqlcoach/sqlcoach-backend/internal/domain"
)

// catalogRepo defines the repository interface needed by the service.
type catalogRepo interface {
	Columns(ctx context.Context, table string) ([]domain.Column, error)
	PrimaryKeyColumns(ctx context.Context, table string) ([]string, error)
	Tables(ctx context.Context) ([]domain.Table, error)
}

// Service implements schema introspection and table listing.
type Service struct {
	log     *slog.Logger
	catalog catalogRepo
}

// NewService creates a schemainfo service.
func NewService(logger *slog.Logger, catalog catalogRepo) *Service {
	return &Service{
		log:     logger.With("service", "schemainfo"),
		catalog: catalog,
	}
}

// DescribeTable returns the ordered column descriptors of a table with
// primary-key membership merged in by exact column-name match.
//
// There is no existence check on the table name: an unknown table comes back
// as an empty column list, mirroring the empty catalog result. Callers treat
// that as success.
func (s *Service) DescribeTable(ctx context.Context, table string) (*domain.TableSchema, error) {
	columns, err := s.catalog.Columns(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", table, err)
	}

	keyColumns, err := s.catalog.PrimaryKeyColumns(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", table, err)
	}

	keys := make(map[string]struct{}, len(keyColumns))
	for _, name := range keyColumns {
		keys[name] = struct{}{}
	}

	for i := range columns {
		_, columns[i].IsPrimaryKey = keys[columns[i].Name]
	}

	return &domain.TableSchema{Table: table, Columns: columns}, nil
}

// ListTables enumerates the base tables of the warehouse schema in
// alphabetical order.
func (s *Service) ListTables(ctx context.Context) ([]domain.Table, error) {
	tables, err := s.catalog.Tables(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}
