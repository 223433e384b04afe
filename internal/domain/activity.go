package domain

import "time"

// ActivityRecord is an append-only log entry tying a learner identity to one
// query execution attempt. LoginID is stored as opaque text: it is usually an
// email but legacy identifiers are accepted without validation, and no
// foreign key against users is enforced at this layer.
type ActivityRecord struct {
	ID              int64
	LoginID         string
	SQLQuery        string
	ExecutionResult string
	Success         bool
	CreatedAt       time.Time
}
