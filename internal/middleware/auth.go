package middleware

import (
	"net/http"
	"strings"

	"github.com/weiliang-c/account-be/internal/auth"
	"github.com/weiliang-c/account-be/internal/http/respond"
)

// RequireAuth gates a handler behind a bearer token. Verified claims are
// placed on the request context for the handler to read.
func RequireAuth(tokens *auth.TokenManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "missing or malformed authorization header")
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.ContextWithClaims(r.Context(), claims)))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
