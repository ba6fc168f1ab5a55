package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"khadamat/models"

	"github.com/hibiken/asynq"
)

const TypeReservationCreated = "reservation:created"

func NewReservationCreatedTask(payload models.ReservationCreatedPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReservationCreated, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}

// Enqueuer is the part of *asynq.Client the notifier needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqNotifier queues a reservation:created task per recorded reservation.
type AsynqNotifier struct {
	Client Enqueuer
}

func NewAsynqNotifier(client Enqueuer) *AsynqNotifier {
	return &AsynqNotifier{Client: client}
}

func (n *AsynqNotifier) ReservationCreated(ctx context.Context, payload models.ReservationCreatedPayload) error {
	task, opts, err := NewReservationCreatedTask(payload)
	if err != nil {
		return fmt.Errorf("build reservation task: %w", err)
	}
	if _, err := n.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue reservation task: %w", err)
	}
	return nil
}
