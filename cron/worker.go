package cron

import (
	"context"
	"encoding/json"
	"time"

	"khadamat/config"
	"khadamat/models"
	"khadamat/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt is the asynq connection shared by the client and the worker.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReservationWorker runs the notification worker in background and
// returns the server so main can shut it down. The queue monitor stops with ctx.
func InitReservationWorker(ctx context.Context, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReservationCreated, handleReservationCreated(logger))

	go monitorRedisConnection(ctx, newQueueClient(), logger, 30*time.Second)

	go func() {
		logger.Info("Starting reservation worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				break
			}
			logger.Error("Reservation worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Reservation worker gave up; notifications stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handleReservationCreated(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReservationCreatedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reservation payload", zap.Error(err))
			return asynq.SkipRetry
		}
		logger.Info("New reservation to follow up",
			zap.String("table", p.Table),
			zap.String("reservationId", p.ReservationID),
			zap.String("firstname", p.Firstname),
			zap.String("phone", p.Phone),
			zap.Float64("finalPrice", p.FinalPrice))
		return nil
	}
}

func newQueueClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

// monitorRedisConnection pings the queue Redis every interval until ctx is
// done, then closes the client.
func monitorRedisConnection(ctx context.Context, client *redis.Client, logger *zap.Logger, interval time.Duration) {
	defer client.Close()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := client.Ping(ctx).Err(); err != nil && ctx.Err() == nil {
			logger.Warn("Queue Redis connection lost", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
