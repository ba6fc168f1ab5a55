package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"khadamat/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "t-1"}, nil
}

func TestAsynqNotifier(t *testing.T) {
	t.Parallel()

	enq := &fakeEnqueuer{}
	payload := models.ReservationCreatedPayload{Table: "piscine_reservations", ReservationID: "r-9", Firstname: "Omar", FinalPrice: 120}
	require.NoError(t, NewAsynqNotifier(enq).ReservationCreated(context.Background(), payload))

	require.Len(t, enq.tasks, 1)
	require.Equal(t, TypeReservationCreated, enq.tasks[0].Type())

	var got models.ReservationCreatedPayload
	require.NoError(t, json.Unmarshal(enq.tasks[0].Payload(), &got))
	require.Equal(t, payload, got)
}

func TestAsynqNotifierEnqueueError(t *testing.T) {
	t.Parallel()

	enq := &fakeEnqueuer{err: errors.New("redis down")}
	err := NewAsynqNotifier(enq).ReservationCreated(context.Background(), models.ReservationCreatedPayload{})
	require.ErrorContains(t, err, "redis down")
}
