package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/userdash-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (userID int64, role string, err error)
}

// Auth returns middleware that resolves the Authorization header into a
// context identity (user ID and role). Requests without a bearer token pass
// through as anonymous; handlers decide whether an identity is required.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, role, err := validator.ValidateAccessToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithUserRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken returns the bearer token from the Authorization header,
// or an empty string when the header is absent or uses another scheme.
// The scheme name is matched case-insensitively per RFC 7235.
func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) < len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return auth[len(prefix):]
}
