// Package auth provides the bearer shared-secret middleware protecting the
// webhook endpoint.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"proclubs-notify/internal/handler/http/respond"
)

const bearerPrefix = "Bearer "

// Bearer returns middleware that requires a bearer token matching the
// configured shared secret.
//
// A missing Authorization header, or one without the "Bearer " prefix,
// yields 401; a well-formed header with the wrong token yields 403. Tokens
// are trimmed before comparison and compared in constant time. Neither the
// received nor the expected token is ever logged.
func Bearer(secret string) func(http.Handler) http.Handler {
	expected := []byte(strings.TrimSpace(secret))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
				respond.Error(w, http.StatusUnauthorized,
					"Authorization header with Bearer token required")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
			if subtle.ConstantTimeCompare([]byte(token), expected) != 1 {
				respond.Error(w, http.StatusForbidden, "Invalid API token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
