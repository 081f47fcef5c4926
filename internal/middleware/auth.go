package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"donatehub/internal/security"
)

type identityContextKey struct{}

var identityKey = identityContextKey{}

// TokenVerifier validates a bearer token and returns the identity it carries.
type TokenVerifier interface {
	Verify(token string) (*security.Identity, error)
}

// Auth rejects requests without a valid bearer token and stores the
// verified identity in the request context. Credentials travel with each
// request; nothing is cached between calls.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "missing authorization header")
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				unauthorized(w, "invalid authorization header")
				return
			}
			identity, err := verifier.Verify(parts[1])
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}

// IdentityFromContext returns the verified identity, or nil when the
// request was not authenticated.
func IdentityFromContext(ctx context.Context) *security.Identity {
	if v, ok := ctx.Value(identityKey).(*security.Identity); ok {
		return v
	}
	return nil
}

// ContextWithIdentity injects an identity, primarily for tests.
func ContextWithIdentity(ctx context.Context, id *security.Identity) context.Context {
	if id == nil {
		return ctx
	}
	return context.WithValue(ctx, identityKey, id)
}
