// Package user implements learner-account persistence on the learner store.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/sqlcoach/sqlcoach-backend/internal/adapter/postgres"
	"github.com/sqlcoach/sqlcoach-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides user persistence backed by the learner store.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// userRow mirrors the users table.
type userRow struct {
	ID           uuid.UUID `db:"id"`
	LoginID      string    `db:"login_id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FullName     string    `db:"full_name"`
	CreatedAt    time.Time `db:"created_at"`
}

// Create inserts a new user and returns the persisted record. Email
// uniqueness is enforced by the store's constraint: a duplicate surfaces as
// domain.ErrAlreadyExists, which makes the insert itself the conflict check.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := psql.
		Insert("users").
		Columns("id", "login_id", "email", "password_hash", "full_name", "created_at").
		Values(u.ID, u.LoginID, u.Email, u.PasswordHash, u.FullName, u.CreatedAt).
		Suffix("RETURNING id, login_id, email, password_hash, full_name, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return toDomain(row), nil
}

// GetByEmail returns a user by exact email match, including the stored
// password hash for credential verification.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query, args, err := psql.
		Select("id", "login_id", "email", "password_hash", "full_name", "created_at").
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return toDomain(row), nil
}

func toDomain(row userRow) *domain.User {
	return &domain.User{
		ID:           row.ID,
		LoginID:      row.LoginID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		FullName:     row.FullName,
		CreatedAt:    row.CreatedAt,
	}
}
