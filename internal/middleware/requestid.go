package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"SensorGrid.mongoDB/internal/logging"
)

// RequestID generates a unique id for each request, honoring an
// X-Request-ID header set by an upstream proxy, and attaches a
// request-scoped logger carrying the id to the request context. The id
// travels on the response header and in every log line written through
// logging.Ctx.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)

		requestLogger := logging.Logger().With().Str("request_id", requestID).Logger()
		ctx := requestLogger.WithContext(r.Context())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
