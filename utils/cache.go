// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"brightwater/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the shared Redis client. It stays nil when Redis is not
// configured; callers must treat a nil client as "feature disabled".
var CacheClient *redis.Client

// InitCache connects the shared Redis client. Unlike the record store the
// connection is verified up front so a misconfigured address surfaces at
// startup rather than on the first enqueue.
func InitCache() error {
	if config.AppConfig.RedisAddr == "" {
		return fmt.Errorf("redis address not configured")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	CacheClient = client
	return nil
}

// GetCacheClient returns the shared Redis client, or nil when disabled.
func GetCacheClient() *redis.Client {
	return CacheClient
}
