// Package cache provides the small key-value cache backing server-side
// session records and per-session view markers. Redis when configured, an
// in-process map otherwise.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache defines the caching interface
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Config holds cache configuration
type Config struct {
	Provider        string        // "memory" or "redis"
	RedisURL        string
	CleanupInterval time.Duration // expiry sweep interval for the memory cache
}

// DefaultConfig returns a default cache configuration
func DefaultConfig() Config {
	return Config{
		Provider:        "memory",
		CleanupInterval: 5 * time.Minute,
	}
}

// New creates a Cache for the configured provider.
func New(cfg Config, logger *zap.Logger) (Cache, error) {
	switch cfg.Provider {
	case "redis":
		return newRedisCache(cfg, logger)
	default:
		return newMemoryCache(cfg, logger), nil
	}
}

type memoryItem struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

type memoryCache struct {
	mu     sync.RWMutex
	items  map[string]memoryItem
	done   chan struct{}
	logger *zap.Logger
}

func newMemoryCache(cfg Config, logger *zap.Logger) *memoryCache {
	c := &memoryCache{
		items:  make(map[string]memoryItem),
		done:   make(chan struct{}),
		logger: logger,
	}
	interval := cfg.CleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go c.sweep(interval)
	return c
}

func (c *memoryCache) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for k, item := range c.items {
				if !item.expiresAt.IsZero() && now.After(item.expiresAt) {
					delete(c.items, k)
				}
			}
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, bool) {
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return "", false
	}
	return item.value, true
}

func (c *memoryCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	item := memoryItem{value: value}
	if ttl > 0 {
		item.expiresAt = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.items[key] = item
	c.mu.Unlock()
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
	return nil
}

func (c *memoryCache) Close() error {
	close(c.done)
	return nil
}

type redisCache struct {
	client *redis.Client
	logger *zap.Logger
}

func newRedisCache(cfg Config, logger *zap.Logger) (*redisCache, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	logger.Info("connected to redis", zap.String("addr", opts.Addr))
	return &redisCache{client: client, logger: logger}, nil
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.logger.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return val, true
}

func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
