// Package middleware provides the HTTP middleware stack.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dpramana/apotek/pkg/auth"
	"github.com/dpramana/apotek/pkg/response"
)

type claimsKey struct{}

// Auth validates the Bearer token and stores the claims in the request
// context for UserIDFromCtx / NameFromCtx / RoleFromCtx.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithClaims stores claims in the context the same way Auth does.
// Handlers under test can use it instead of minting a real token.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromCtx returns the JWT claims stored by Auth.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return c, ok
}

// UserIDFromCtx returns the authenticated user's ID.
func UserIDFromCtx(ctx context.Context) (uint, bool) {
	if c, ok := ClaimsFromCtx(ctx); ok {
		return c.UserID, true
	}
	return 0, false
}

// NameFromCtx returns the authenticated user's display name.
func NameFromCtx(ctx context.Context) (string, bool) {
	if c, ok := ClaimsFromCtx(ctx); ok {
		return c.Name, true
	}
	return "", false
}

// RoleFromCtx returns the authenticated user's role.
func RoleFromCtx(ctx context.Context) (string, bool) {
	if c, ok := ClaimsFromCtx(ctx); ok {
		return c.Role, true
	}
	return "", false
}
