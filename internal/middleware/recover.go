package middleware

import (
	"net/http"
	"runtime/debug"

	"SensorGrid.mongoDB/internal/logging"
	"SensorGrid.mongoDB/internal/models"
	"SensorGrid.mongoDB/internal/utils"
)

// Recover converts a handler panic into a generic 500 response. The panic
// value and stack stay in the server-side log.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logging.Ctx(r.Context()).Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")
				utils.RespondWithError(w, models.Internal())
			}
		}()
		next.ServeHTTP(w, r)
	})
}
