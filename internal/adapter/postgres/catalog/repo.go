// Package catalog reads table and column metadata from the warehouse's
// information_schema views, scoped to a single configured schema.
package catalog

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/sqlcoach/sqlcoach-backend/internal/adapter/postgres"
	"github.com/sqlcoach/sqlcoach-backend/internal/domain"
)

// psql builds statements with PostgreSQL-style $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides catalog introspection backed by information_schema.
type Repo struct {
	db     postgres.Querier
	schema string
}

// New creates a catalog repository scoped to the given schema namespace.
func New(db postgres.Querier, schema string) *Repo {
	return &Repo{db: db, schema: schema}
}

// Columns returns the column metadata of a table ordered by physical
// position. An unknown table yields an empty slice, not an error: the
// catalog view simply has no rows for it.
func (r *Repo) Columns(ctx context.Context, table string) ([]domain.Column, error) {
	query, args, err := psql.
		Select("column_name", "data_type", "is_nullable", "column_default").
		From("information_schema.columns").
		Where(sq.Eq{"table_schema": r.schema, "table_name": table}).
		OrderBy("ordinal_position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build columns query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "catalog columns")
	}
	defer rows.Close()

	columns := make([]domain.Column, 0)
	for rows.Next() {
		var (
			col        domain.Column
			isNullable string
		)
		if err := rows.Scan(&col.Name, &col.DataType, &isNullable, &col.ColumnDefault); err != nil {
			return nil, postgres.MapError(err, "catalog columns")
		}
		col.IsNullable = isNullable == "YES"
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "catalog columns")
	}

	return columns, nil
}

// PrimaryKeyColumns returns the names of the columns participating in the
// table's PRIMARY KEY constraint. Key-usage rows are joined against the
// constraint metadata on constraint name and schema so that only rows of the
// matching table contribute.
func (r *Repo) PrimaryKeyColumns(ctx context.Context, table string) ([]string, error) {
	query, args, err := psql.
		Select("kcu.column_name").
		From("information_schema.key_column_usage AS kcu").
		Join("information_schema.table_constraints AS tc ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema").
		Where(sq.Eq{
			"tc.constraint_type": "PRIMARY KEY",
			"tc.table_schema":    r.schema,
			"tc.table_name":      table,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build primary key query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "catalog primary keys")
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, postgres.MapError(err, "catalog primary keys")
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "catalog primary keys")
	}

	return names, nil
}

// Tables enumerates base table names in the schema, alphabetically ordered.
func (r *Repo) Tables(ctx context.Context) ([]domain.Table, error) {
	query, args, err := psql.
		Select("table_name").
		From("information_schema.tables").
		Where(sq.Eq{"table_schema": r.schema, "table_type": "BASE TABLE"}).
		OrderBy("table_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tables query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "catalog tables")
	}
	defer rows.Close()

	tables := make([]domain.Table, 0)
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.Name); err != nil {
			return nil, postgres.MapError(err, "catalog tables")
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "catalog tables")
	}

	return tables, nil
}
