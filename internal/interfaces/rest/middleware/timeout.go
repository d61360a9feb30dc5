package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bricksandmortarstudio/idealpostcodes/internal/interfaces/rest"
)

// Timeout bounds how long a client waits for a response. On expiry the client
// gets a 503 JSON error; the verify handler detaches its lookup from the
// request context, so an in-flight lookup is not cancelled.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	body, _ := json.Marshal(rest.ErrorResponse{
		Error: rest.ErrorDetail{Code: rest.ErrCodeTimeout, Message: "Request timeout"},
	})

	return func(next http.Handler) http.Handler {
		th := http.TimeoutHandler(next, timeout, string(body))
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// TimeoutHandler writes its body straight to w; a handler that
			// finishes in time overwrites this with its own headers.
			w.Header().Set("Content-Type", "application/json")
			th.ServeHTTP(w, r)
		})
	}
}
