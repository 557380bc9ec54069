// Package token issues and verifies the signed identity tokens that
// authenticate API callers.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure. Malformed,
// tampered and expired tokens are deliberately indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid token")

// Service signs and verifies identity tokens with a shared HMAC secret.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService constructs a Service. ttl is the validity window stamped into
// every issued token.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue signs the supplied claims, adding an expiry of now+ttl. No claim
// shape is enforced beyond being JSON-serializable.
func (s *Service) Issue(claims map[string]any) (string, error) {
	mapped := make(jwt.MapClaims, len(claims)+1)
	for k, v := range claims {
		mapped[k] = v
	}
	mapped["exp"] = jwt.NewNumericDate(s.now().Add(s.ttl))

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, mapped)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a signed token, returning its claims.
func (s *Service) Verify(raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
