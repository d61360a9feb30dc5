package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/bricksandmortarstudio/idealpostcodes/internal/interfaces/rest"
)

// Recovery turns a panic in a handler into a 500 error envelope. The request
// ID is echoed in the error details so a host can match the reply to the log.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					requestID := RequestID(r.Context())
					logger.Error(
						"panic recovered",
						"panic", rec,
						"method", r.Method,
						"path", r.URL.Path,
						"request_id", requestID,
						"stack", string(debug.Stack()),
					)

					err := rest.NewInternalError(fmt.Errorf("panic: %v", rec))
					if requestID != "" {
						err.Details = map[string]string{"request_id": requestID}
					}
					rest.WriteError(w, err, logger)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
