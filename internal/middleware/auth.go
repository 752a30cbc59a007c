// Package middleware provides the HTTP middleware chain, including the
// access guard resolving bearer tokens into a request principal.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/confiance888/BlogMagment/internal/apperrors"
	"github.com/confiance888/BlogMagment/internal/auth"
	"github.com/confiance888/BlogMagment/internal/models"
)

type contextKey string

const principalKey contextKey = "principal"

// Authenticate resolves an `Authorization: Bearer <token>` header into a
// Principal stored in the request context. Requests without a token, or with
// an invalid one, pass through unauthenticated; protected endpoints reject
// them via RequireAuth.
func Authenticate(tokenGenerator *auth.TokenGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokenGenerator.ValidateAccessToken(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			principal := &models.Principal{
				ID:       claims.UserID,
				Username: claims.Username,
				Roles:    claims.Roles,
			}
			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects unauthenticated requests with a 401 envelope
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetPrincipal(r.Context()); !ok {
			respondError(w, r, apperrors.Unauthenticated("authentication required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects requests whose principal lacks the given role with a
// 403 envelope. Must run after RequireAuth.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetPrincipal(r.Context())
			if !ok {
				respondError(w, r, apperrors.Unauthenticated("authentication required"))
				return
			}
			if !principal.HasRole(role) {
				respondError(w, r, apperrors.Forbidden("insufficient permissions"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetPrincipal retrieves the authenticated principal from context
func GetPrincipal(ctx context.Context) (*models.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(*models.Principal)
	return principal, ok
}

// WithPrincipal returns a context carrying the given principal. Used by tests.
func WithPrincipal(ctx context.Context, principal *models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// bearerToken extracts the token from the Authorization header, if any
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	// Expected format: "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}
