package cron

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"khadamat/models"
	"khadamat/services/tasks"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHandleReservationCreated(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	handler := handleReservationCreated(zap.New(core))

	task, _, err := tasks.NewReservationCreatedTask(models.ReservationCreatedPayload{
		Table: "menage_reservations", ReservationID: "r-1", Phone: "0600", FinalPrice: 32,
	})
	require.NoError(t, err)
	require.NoError(t, handler(context.Background(), task))

	entries := logs.FilterMessage("New reservation to follow up").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "r-1", fields["reservationId"])
	require.Equal(t, 32.0, fields["finalPrice"])
}

func TestHandleReservationCreatedBadPayload(t *testing.T) {
	t.Parallel()

	handler := handleReservationCreated(zap.NewNop())
	err := handler(context.Background(), asynq.NewTask(tasks.TypeReservationCreated, json.RawMessage(`{`)))
	require.True(t, errors.Is(err, asynq.SkipRetry))
}

func TestMonitorRedisConnectionStopsWithContext(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	core, logs := observer.New(zap.WarnLevel)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		monitorRedisConnection(ctx, client, zap.New(core), 10*time.Millisecond)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop after cancel")
	}
	require.Zero(t, logs.Len())
	require.ErrorIs(t, client.Ping(context.Background()).Err(), redis.ErrClosed)
}
