package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/sqlcoach/sqlcoach-backend/pkg/ctxutil"
)

// RequestIDHeader is the HTTP header used to propagate request identifiers.
const RequestIDHeader = "X-Request-Id"

// RequestID ensures every request carries an identifier: it reuses the
// incoming X-Request-Id header when present, generates a UUID otherwise,
// and echoes the value back on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
