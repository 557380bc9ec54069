package guard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RoleCache is a short-TTL Redis lookaside in front of a RoleSource. Cache
// trouble is never fatal: any Redis failure falls through to the source.
type RoleCache struct {
	client *redis.Client
	source RoleSource
	ttl    time.Duration
	logger *slog.Logger
}

// NewRoleCache wraps a RoleSource with a Redis cache.
func NewRoleCache(client *redis.Client, source RoleSource, ttl time.Duration, logger *slog.Logger) *RoleCache {
	return &RoleCache{client: client, source: source, ttl: ttl, logger: logger}
}

func roleKey(email string) string {
	return "role:" + email
}

// RoleOf returns the cached role for an email, falling back to the source.
// The empty role for an unknown account is cached too, so repeated probes
// for identities without accounts do not hit the directory.
func (c *RoleCache) RoleOf(ctx context.Context, email string) (string, error) {
	cached, err := c.client.Get(ctx, roleKey(email)).Result()
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis.Nil) && c.logger != nil {
		c.logger.Warn("guard: role cache read", slog.Any("error", err))
	}

	role, err := c.source.RoleOf(ctx, email)
	if err != nil {
		return "", err
	}
	if err := c.client.Set(ctx, roleKey(email), role, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Warn("guard: role cache write", slog.Any("error", err))
	}
	return role, nil
}

// Invalidate drops the cached role for an email. Called when an account is
// created so a fresh role is visible within the same request cycle.
func (c *RoleCache) Invalidate(ctx context.Context, email string) error {
	return c.client.Del(ctx, roleKey(email)).Err()
}

var _ RoleSource = (*RoleCache)(nil)
