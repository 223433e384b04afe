package account

import (
	"regexp"

	"github.com/sqlcoach/sqlcoach-backend/internal/domain"
)

// emailPattern is a deliberately simple local@domain.tld shape check, not an
// RFC 5322 validator.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SignUpInput holds parameters for the signup operation.
type SignUpInput struct {
	Email    string
	Password string
	FullName string
}

// Validate validates the signup input.
func (i SignUpInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	} else if !emailPattern.MatchString(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Invalid email format"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password is required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password is required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
