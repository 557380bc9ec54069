package guard_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niladhikari/house-hunter-server/internal/guard"
)

type countingRoles struct {
	roles map[string]string
	calls int
}

func (c *countingRoles) RoleOf(ctx context.Context, email string) (string, error) {
	c.calls++
	return c.roles[email], nil
}

func newRoleCache(t *testing.T, source guard.RoleSource) (*guard.RoleCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return guard.NewRoleCache(client, source, time.Minute, nil), mr
}

func TestRoleCacheServesFromCache(t *testing.T) {
	source := &countingRoles{roles: map[string]string{"owner@x.com": "houseOwner"}}
	cache, _ := newRoleCache(t, source)

	role, err := cache.RoleOf(context.Background(), "owner@x.com")
	require.NoError(t, err)
	assert.Equal(t, "houseOwner", role)

	role, err = cache.RoleOf(context.Background(), "owner@x.com")
	require.NoError(t, err)
	assert.Equal(t, "houseOwner", role)

	assert.Equal(t, 1, source.calls, "second lookup should hit the cache")
}

func TestRoleCacheCachesUnknownIdentity(t *testing.T) {
	source := &countingRoles{roles: map[string]string{}}
	cache, _ := newRoleCache(t, source)

	for range 3 {
		role, err := cache.RoleOf(context.Background(), "ghost@x.com")
		require.NoError(t, err)
		assert.Empty(t, role)
	}
	assert.Equal(t, 1, source.calls)
}

func TestRoleCacheInvalidate(t *testing.T) {
	source := &countingRoles{roles: map[string]string{"a@x.com": "standard"}}
	cache, _ := newRoleCache(t, source)

	_, err := cache.RoleOf(context.Background(), "a@x.com")
	require.NoError(t, err)

	source.roles["a@x.com"] = "houseOwner"
	require.NoError(t, cache.Invalidate(context.Background(), "a@x.com"))

	role, err := cache.RoleOf(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "houseOwner", role)
	assert.Equal(t, 2, source.calls)
}

func TestRoleCacheFallsThroughWhenRedisDown(t *testing.T) {
	source := &countingRoles{roles: map[string]string{"a@x.com": "standard"}}
	cache, mr := newRoleCache(t, source)
	mr.Close()

	role, err := cache.RoleOf(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "standard", role)
}

func TestRoleCacheExpires(t *testing.T) {
	source := &countingRoles{roles: map[string]string{"a@x.com": "standard"}}
	cache, mr := newRoleCache(t, source)

	_, err := cache.RoleOf(context.Background(), "a@x.com")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = cache.RoleOf(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}
