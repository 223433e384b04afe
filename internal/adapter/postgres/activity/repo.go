// Package activity implements the append-only learner activity log on the
// learner store.
package activity

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/sqlcoach/sqlcoach-backend/internal/adapter/postgres"
	"github.com/sqlcoach/sqlcoach-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides activity-record persistence backed by the learner store.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// activityRow mirrors the learner_activity table.
type activityRow struct {
	ID              int64     `db:"id"`
	LoginID         string    `db:"login_id"`
	SQLQuery        string    `db:"sql_query"`
	ExecutionResult string    `db:"execution_result"`
	Success         bool      `db:"success"`
	CreatedAt       time.Time `db:"created_at"`
}

// Create appends one activity record and returns it with the store-assigned
// id and timestamp. LoginID is stored as given; records are never mutated or
// deleted afterwards.
func (r *Repo) Create(ctx context.Context, rec *domain.ActivityRecord) (*domain.ActivityRecord, error) {
	query, args, err := psql.
		Insert("learner_activity").
		Columns("login_id", "sql_query", "execution_result", "success").
		Values(rec.LoginID, rec.SQLQuery, rec.ExecutionResult, rec.Success).
		Suffix("RETURNING id, login_id, sql_query, execution_result, success, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert activity: %w", err)
	}

	var row activityRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "activity_record")
	}

	return &domain.ActivityRecord{
		ID:              row.ID,
		LoginID:         row.LoginID,
		SQLQuery:        row.SQLQuery,
		ExecutionResult: row.ExecutionResult,
		Success:         row.Success,
		CreatedAt:       row.CreatedAt,
	}, nil
}
