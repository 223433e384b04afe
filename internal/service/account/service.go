// Package account implements learner signup and login against the learner
// store, using the email address as the unique identity. The email is also
// stored in a separate login_id field, which the activity log references.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sqlcoach/sqlcoach-backend/internal/domain"
)

// userRepo defines the repository interface needed by the account service.
type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Service implements account operations. No session or token is issued on
// success; the caller treats a successful response as proof of
// authentication and keeps no further server-side state.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates an account service.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "account"),
		users: users,
	}
}

// SignUp creates a new learner account. Passwords are bcrypt-hashed before
// storage. Duplicate emails are detected by the store's unique constraint,
// so the insert itself is the conflict check: there is no separate
// check-then-insert step to race against.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*domain.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FullName = strings.TrimSpace(input.FullName)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("account.SignUp hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		LoginID:      input.Email,
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("account.SignUp: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("account.SignUp: %w", err)
	}

	s.log.InfoContext(ctx, "learner signed up",
		slog.String("user_id", user.ID.String()))

	user.PasswordHash = ""
	return user, nil
}

// Login authenticates a learner by email and password. Unknown email and
// wrong password are indistinguishable to the caller: both return
// domain.ErrUnauthorized. The comparison is constant-time via bcrypt.
func (s *Service) Login(ctx context.Context, input LoginInput) (*domain.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("account.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	s.log.InfoContext(ctx, "learner logged in",
		slog.String("user_id", user.ID.String()))

	user.PasswordHash = ""
	return user, nil
}
