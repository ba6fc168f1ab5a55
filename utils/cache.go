package utils

import (
	"context"
	"time"

	"khadamat/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// CacheClient holds prefill drafts.
	CacheClient *redis.Client
	// LockClient holds submission locks.
	LockClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Fatal("Failed to connect to Redis", zap.String("client", name), zap.Int("db", db), zap.Error(err))
	}
	return client
}

// InitCache initializes the Redis client for prefill drafts.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "cache")
}

// GetCacheClient returns the cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitLockCache initializes the Redis client for submission locks.
func InitLockCache() {
	LockClient = newRedisClient(config.AppConfig.RedisLockDB, "lock")
}

// GetLockClient returns the submission lock client.
func GetLockClient() *redis.Client {
	if LockClient == nil {
		InitLockCache()
	}
	return LockClient
}
