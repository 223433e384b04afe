package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a learner account in the learner store.
// LoginID is a separate stored login identifier; in the current design it
// always equals the email address.
type User struct {
	ID       uuid.UUID
	LoginID  string
	Email    string
	FullName string

	// PasswordHash is the bcrypt hash of the account password. It never
	// leaves the service layer.
	PasswordHash string

	CreatedAt time.Time
}
