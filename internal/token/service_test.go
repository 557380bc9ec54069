package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService("topsecret", time.Hour)

	signed, err := svc.Issue(map[string]any{"email": "a@x.com", "name": "A"})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["email"])
	assert.Equal(t, "A", claims["name"])
	assert.Contains(t, claims, "exp")
}

func TestVerifyExpired(t *testing.T) {
	svc := NewService("topsecret", time.Hour)

	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issuedAt }
	signed, err := svc.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	// Still inside the window from the issuer's clock.
	svc.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, err = svc.Verify(signed)
	require.NoError(t, err)

	// Past the window.
	svc.now = time.Now
	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTampered(t *testing.T) {
	svc := NewService("topsecret", time.Hour)

	signed, err := svc.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	signed, err := NewService("one", time.Hour).Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	_, err = NewService("other", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformed(t *testing.T) {
	svc := NewService("topsecret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := svc.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", raw)
	}
}
