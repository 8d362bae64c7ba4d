package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus represents current status of external collaborators.
type HealthStatus struct {
	Database  bool      `json:"database"`
	Redis     bool      `json:"redis"`
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

// StartHealthMonitor performs periodic health checks, updates the in-memory
// snapshot, and logs a warning when a collaborator drops out. Either client
// may be nil when the corresponding collaborator is not configured.
func StartHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ctx := context.Background()
		check := func() {
			status := HealthStatus{CheckedAt: time.Now()}
			if mongoClient != nil {
				status.Database = mongoClient.Ping(ctx, nil) == nil
			}
			if redisClient != nil {
				status.Redis = redisClient.Ping(ctx).Err() == nil
			}

			mu.Lock()
			prev := currentHealth
			currentHealth = status
			mu.Unlock()

			if prev.Database && !status.Database {
				GetLogger().Warn("Health monitor: database connection lost")
			}
			if prev.Redis && !status.Redis {
				GetLogger().Warn("Health monitor: redis connection lost",
					zap.Time("checkedAt", status.CheckedAt))
			}
		}

		check()
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			check()
		}
	}()
}
