package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AnsarulIslam10/MediCamp-Server/pkg/logger"
)

// Cache wraps the Redis client. All methods degrade gracefully when Redis
// is unreachable: caching becomes a no-op and no token can be treated as
// revoked, but requests never fail because of it.
type Cache struct {
	client *redis.Client
}

// NewCache connects to Redis. A failed ping is logged and tolerated.
func NewCache(addr, password string) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logger.Warn().Err(err).Msg("Failed to connect to Redis; caching and token revocation disabled")
		return &Cache{}
	}

	logger.Info().Str("addr", addr).Msg("Connected to Redis")
	return &Cache{client: client}
}

// Available reports whether a Redis connection is live.
func (c *Cache) Available() bool {
	return c != nil && c.client != nil
}

// Set marshals value as JSON and stores it under key with an expiration.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if !c.Available() {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, expiration).Err()
}

// Get unmarshals the cached JSON under key into dest.
// Returns redis.Nil when the key is absent.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	if !c.Available() {
		return redis.Nil
	}
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Delete removes cached keys, used for invalidation on writes.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if !c.Available() {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Warn().Err(err).Strs("keys", keys).Msg("Cache invalidation failed")
	}
}

// BlacklistToken marks a JWT ID as revoked until the token would expire anyway.
func (c *Cache) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if !c.Available() || jti == "" {
		return nil
	}
	return c.client.Set(ctx, "token_blacklist:"+jti, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether a JWT ID has been revoked via logout.
func (c *Cache) IsTokenBlacklisted(ctx context.Context, jti string) bool {
	if !c.Available() || jti == "" {
		return false
	}
	n, err := c.client.Exists(ctx, "token_blacklist:"+jti).Result()
	if err != nil {
		return false
	}
	return n > 0
}

// Ping probes the Redis connection for health checks.
func (c *Cache) Ping(ctx context.Context) error {
	if !c.Available() {
		return redis.Nil
	}
	return c.client.Ping(ctx).Err()
}
