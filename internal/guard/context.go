package guard

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey struct{}

// ContextWithClaims returns a context carrying the verified token claims.
func ContextWithClaims(ctx context.Context, claims jwt.MapClaims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

// ClaimsFromContext extracts the verified token claims, or nil when the
// request did not pass RequireToken.
func ClaimsFromContext(ctx context.Context) jwt.MapClaims {
	claims, _ := ctx.Value(ctxKey{}).(jwt.MapClaims)
	return claims
}

// EmailFromContext extracts the identity email from the verified claims.
func EmailFromContext(ctx context.Context) string {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
