package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sqlcoach/sqlcoach-backend/internal/domain"
	"github.com/sqlcoach/sqlcoach-backend/internal/service/account"
)

// accountService defines the minimal interface needed by AccountHandler.
type accountService interface {
	SignUp(ctx context.Context, input account.SignUpInput) (*domain.User, error)
	Login(ctx context.Context, input account.LoginInput) (*domain.User, error)
}

// AccountHandler serves the signup and login endpoints.
type AccountHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type userResponse struct {
	ID       string `json:"id"`
	LoginID  string `json:"loginId"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// SignUp handles POST /api/signup.
func (h *AccountHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.SignUp(r.Context(), account.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, accountResponse{
		Success: true,
		Message: "User created successfully",
		User:    toUserResponse(user),
	})
}

// Login handles POST /api/login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.Login(r.Context(), account.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, accountResponse{
		Success: true,
		Message: "Login successful",
		User:    toUserResponse(user),
	})
}

func (h *AccountHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, "User with this email already exists")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	default:
		h.log.ErrorContext(r.Context(), "account operation failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:       user.ID.String(),
		LoginID:  user.LoginID,
		Email:    user.Email,
		FullName: user.FullName,
	}
}
