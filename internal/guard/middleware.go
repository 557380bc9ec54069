// Package guard provides the request-gating middleware chain: token
// verification, role checks and self-match checks, composed per route.
package guard

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/niladhikari/house-hunter-server/internal/platform/httpx"
)

// TokenVerifier validates a raw token string and returns its claims.
type TokenVerifier interface {
	Verify(raw string) (jwt.MapClaims, error)
}

// RoleSource resolves the role held by an identity. It returns the empty
// string when the identity has no account.
type RoleSource interface {
	RoleOf(ctx context.Context, email string) (string, error)
}

// Middleware wires the authorization guards for HTTP handlers.
type Middleware struct {
	Tokens TokenVerifier
	Roles  RoleSource
	Logger *slog.Logger
}

// RequireToken rejects requests without a valid Bearer token and attaches
// the decoded claims to the request context. Every failure mode maps to the
// same 401 body.
func (m Middleware) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			httpx.Message(w, http.StatusUnauthorized, httpx.MsgUnauthorized)
			return
		}
		claims, err := m.Tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			httpx.Message(w, http.StatusUnauthorized, httpx.MsgUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	})
}

// RequireRole ensures the authenticated identity holds the given role.
// Must run after RequireToken.
func (m Middleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := EmailFromContext(r.Context())
			if email == "" {
				httpx.Message(w, http.StatusUnauthorized, httpx.MsgUnauthorized)
				return
			}
			held, err := m.Roles.RoleOf(r.Context(), email)
			if err != nil {
				if m.Logger != nil {
					m.Logger.Error("guard: resolve role", slog.Any("error", err))
				}
				httpx.RespondError(w, err)
				return
			}
			if held != role {
				httpx.Message(w, http.StatusForbidden, httpx.MsgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSelf ensures the path parameter matches the authenticated identity.
// It consults no directory; the token itself is the evidence. Must run after
// RequireToken.
func (m Middleware) RequireSelf(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := EmailFromContext(r.Context())
			if email == "" {
				httpx.Message(w, http.StatusUnauthorized, httpx.MsgUnauthorized)
				return
			}
			if chi.URLParam(r, param) != email {
				httpx.Message(w, http.StatusForbidden, httpx.MsgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
