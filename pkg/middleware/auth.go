package middleware

import (
	"context"
	"net/http"

	"stayhub/pkg/logger"
)

const UserIDKey contextKey = "user_id"

// UserIDHeader carries the caller identity resolved by the upstream auth
// gateway. This service never parses credentials itself.
const UserIDHeader = "X-User-ID"

// Authentication rejects requests that arrive without a resolved identity
// and makes the identity available to handlers through the context.
func Authentication(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get(UserIDHeader)
			if userID == "" {
				log.Warn("Request without resolved user identity",
					"request_id", requestIDFrom(r.Context()),
					"path", r.URL.Path,
					"method", r.Method,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Missing authenticated user identity"}`))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFrom returns the authenticated caller identity, or "" when the
// request skipped the Authentication middleware.
func UserIDFrom(ctx context.Context) string {
	if v := ctx.Value(UserIDKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
