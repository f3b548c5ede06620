package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout puts a deadline on the request context, processor round trip
// included. Handlers observe it through their context and answer 504 with a
// TIMEOUT code. A zero timeout disables it.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
