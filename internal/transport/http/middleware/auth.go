package middleware

import (
	"context"
	"net/http"

	"github.com/vedran77/feedline/internal/auth"
)

type contextKey string

const authResultKey contextKey = "auth_result"

// Auth resolves the Authorization header into an auth.Result and
// attaches it to the request context. It never rejects a request:
// deciding whether authentication was required is up to the services,
// so unauthenticated requests flow through with a zero Result.
func Auth(issuer *auth.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result := auth.Resolve(r.Header.Get("Authorization"), issuer)
			ctx := context.WithValue(r.Context(), authResultKey, result)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAuthResult extracts the resolver's result from request context.
// Requests that never went through Auth read as unauthenticated.
func GetAuthResult(ctx context.Context) auth.Result {
	if result, ok := ctx.Value(authResultKey).(auth.Result); ok {
		return result
	}
	return auth.Result{}
}
