// Package proxy implements the query-proxy repository: it forwards
// already-validated SQL text to the warehouse verbatim and collects the
// result rows.
package proxy

import (
	"context"

	postgres "github.com/sqlcoach/sqlcoach-backend/internal/adapter/postgres"
	"github.com/sqlcoach/sqlcoach-backend/internal/domain"
)

// Repo executes pass-through queries against the warehouse.
type Repo struct {
	db postgres.Querier
}

// New creates a new proxy repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Run executes sqlText and returns every result row as a column-name keyed
// map. No statement inspection happens here; the gate sits in the service
// layer. Any store error (syntax, permission, timeout) is returned wrapped
// with the underlying message intact.
func (r *Repo) Run(ctx context.Context, sqlText string) (*domain.QueryResult, error) {
	rows, err := r.db.Query(ctx, sqlText)
	if err != nil {
		return nil, postgres.MapError(err, "query")
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	collected := make([]map[string]any, 0)

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, postgres.MapError(err, "query")
		}

		row := make(map[string]any, len(fields))
		for i, fd := range fields {
			row[fd.Name] = values[i]
		}
		collected = append(collected, row)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "query")
	}

	return &domain.QueryResult{
		Rows:     collected,
		RowCount: len(collected),
	}, nil
}
