// Package queryproxy gates and executes learner-supplied SQL against the
// warehouse.
//
// The gate is a textual prefix check only: it blocks statements that do not
// start with SELECT, but it is not a security boundary: SELECT-based side
// channels (nested data-modifying CTEs, volatile functions) are not defended
// against. The warehouse role's own grants are the real line of defense.
package queryproxy

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sqlcoach/sqlcoach-backend/internal/domain"
)

// Validator decides whether a piece of SQL text may be forwarded to the
// warehouse. Returning an error (normally a *domain.ValidationError) rejects
// the text before any pool access. The predicate is injectable so a stricter
// policy can be substituted without touching callers.
type Validator func(sqlText string) error

// SelectOnly is the default Validator: after trimming, the first token must
// be "select", case-insensitively.
func SelectOnly(sqlText string) error {
	trimmed := strings.TrimSpace(sqlText)
	if trimmed == "" {
		return domain.NewValidationError("sql", "SQL query is required")
	}
	if !strings.HasPrefix(strings.ToLower(trimmed), "select") {
		return domain.NewValidationError("sql", "Only SELECT queries are allowed")
	}
	return nil
}

// runner defines the repository interface needed by the proxy service.
type runner interface {
	Run(ctx context.Context, sqlText string) (*domain.QueryResult, error)
}

// Service implements the query-proxy operation.
type Service struct {
	log      *slog.Logger
	repo     runner
	validate Validator
}

// NewService creates a query-proxy service. A nil validate falls back to
// SelectOnly.
func NewService(logger *slog.Logger, repo runner, validate Validator) *Service {
	if validate == nil {
		validate = SelectOnly
	}
	return &Service{
		log:      logger.With("service", "queryproxy"),
		repo:     repo,
		validate: validate,
	}
}

// Run validates sqlText and forwards it to the warehouse, returning all
// result rows and the row count.
func (s *Service) Run(ctx context.Context, sqlText string) (*domain.QueryResult, error) {
	if err := s.validate(sqlText); err != nil {
		return nil, err
	}

	result, err := s.repo.Run(ctx, sqlText)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "query executed",
		slog.Int("row_count", result.RowCount))

	return result, nil
}
