package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sejanpass/sejanpass-go/internal/crypto"
)

type contextKey string

const (
	subjectKey   contextKey = "subject"
	requestIDKey contextKey = "requestID"
)

// RequireScope returns middleware that validates a Bearer token from the
// Authorization header and checks that it carries scope.
func RequireScope(secret, scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			if claims.Scope != scope {
				writeJSONError(w, http.StatusForbidden, "insufficient scope")
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SubjectFromContext extracts the authenticated token subject.
func SubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(subjectKey).(string)
	return sub, ok
}
