package rest

import "net/http"

// Handlers groups the REST handlers wired into the router.
type Handlers struct {
	Status   *StatusHandler
	Query    *QueryHandler
	Schema   *SchemaHandler
	Account  *AccountHandler
	Activity *ActivityHandler
	Health   *HealthHandler
}

// NewRouter builds the HTTP route table for the API surface.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/test", h.Status.Test)
	mux.HandleFunc("GET /api/test-supabase", h.Status.TestStore)
	mux.HandleFunc("GET /api/tables", h.Schema.ListTables)
	mux.HandleFunc("GET /api/schema/{tableName}", h.Schema.DescribeTable)
	mux.HandleFunc("POST /api/query", h.Query.Run)
	mux.HandleFunc("POST /api/signup", h.Account.SignUp)
	mux.HandleFunc("POST /api/login", h.Account.Login)
	mux.HandleFunc("POST /api/log-activity", h.Activity.Log)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /live", h.Health.Live)

	return mux
}
