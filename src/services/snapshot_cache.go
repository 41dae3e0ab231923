package services

import (
	"context"
	"errors"
	"time"

	"fingenius/src/schemas"
	"fingenius/src/utils"
	redis_utils "fingenius/src/utils/redis"
)

// SnapshotCache holds the last built dashboard snapshot.
type SnapshotCache interface {
	Get(ctx context.Context) (*schemas.DashboardView, bool, error)
	Set(ctx context.Context, view *schemas.DashboardView) error
	Invalidate(ctx context.Context) error
}

type MemorySnapshotCache struct {
	cache *utils.Cache[*schemas.DashboardView]
	ttl   time.Duration
}

func NewMemorySnapshotCache(ttl time.Duration) *MemorySnapshotCache {
	return &MemorySnapshotCache{
		cache: utils.NewCache[*schemas.DashboardView](),
		ttl:   ttl,
	}
}

func (c *MemorySnapshotCache) Get(ctx context.Context) (*schemas.DashboardView, bool, error) {
	view, ok := c.cache.Get()
	if !ok || view == nil {
		return nil, false, nil
	}
	return view, true, nil
}

func (c *MemorySnapshotCache) Set(ctx context.Context, view *schemas.DashboardView) error {
	c.cache.Set(view, c.ttl)
	return nil
}

func (c *MemorySnapshotCache) Invalidate(ctx context.Context) error {
	c.cache.Clear()
	return nil
}

// RedisSnapshotCache stores the snapshot as JSON under a key derived from
// scope, so several deployments can share one Redis.
type RedisSnapshotCache struct {
	redis *redis_utils.RedisHandler
	key   string
	ttl   time.Duration
}

func NewRedisSnapshotCache(handler *redis_utils.RedisHandler, ttl time.Duration, scope ...string) *RedisSnapshotCache {
	return &RedisSnapshotCache{
		redis: handler,
		key:   "dashboard:snapshot:" + redis_utils.GenerateUUID(scope...),
		ttl:   ttl,
	}
}

func (c *RedisSnapshotCache) Key() string {
	return c.key
}

func (c *RedisSnapshotCache) Get(ctx context.Context) (*schemas.DashboardView, bool, error) {
	var view schemas.DashboardView
	if err := c.redis.Get(ctx, c.key, &view); err != nil {
		if errors.Is(err, redis_utils.ErrKeyNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &view, true, nil
}

func (c *RedisSnapshotCache) Set(ctx context.Context, view *schemas.DashboardView) error {
	return c.redis.Set(ctx, c.key, view, c.ttl)
}

func (c *RedisSnapshotCache) Invalidate(ctx context.Context) error {
	return c.redis.Delete(ctx, c.key)
}
