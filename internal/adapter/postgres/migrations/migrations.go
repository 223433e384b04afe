// Package migrations embeds the goose migrations for the learner store.
// The warehouse is never migrated by this service; it is read-only.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
