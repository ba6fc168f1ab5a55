package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Database  bool      `json:"database"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth pings every backend once and stores the result.
func CheckHealth(ctx context.Context, redisClients []*redis.Client, pingDB func(context.Context) error) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	redisHealth := make([]bool, 0, len(redisClients))
	for _, client := range redisClients {
		redisHealth = append(redisHealth, client.Ping(ctx).Err() == nil)
	}
	status := HealthStatus{
		Database:  pingDB == nil || pingDB(ctx) == nil,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// Healthy reports whether every backend answered in s.
func (s HealthStatus) Healthy() bool {
	if !s.Database {
		return false
	}
	for _, ok := range s.Redis {
		if !ok {
			return false
		}
	}
	return true
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, redisClients []*redis.Client, pingDB func(context.Context) error) {
	CheckHealth(ctx, redisClients, pingDB)
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, redisClients, pingDB)
			}
		}
	}()
}
