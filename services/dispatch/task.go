package dispatch

import (
	"encoding/json"
	"fmt"

	"dialhub/config"
	"dialhub/models"

	"github.com/hibiken/asynq"
)

const TypeDispatchTick = "dispatch:tick"

// NewTickTask builds a dispatch tick for one user.
func NewTickTask(userID string) (*asynq.Task, error) {
	b, err := json.Marshal(models.DispatchPayload{UserID: userID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDispatchTick, b), nil
}

// Enqueuer hands ticks to the queue. The HTTP layer uses it so a
// dashboard "dial now" press never places calls in-request.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer connects an asynq client to the dispatch queue DB.
func NewEnqueuer() *Enqueuer {
	return &Enqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisDispatchDB,
		}),
	}
}

// EnqueueTick schedules one dispatch pass for the user.
func (e *Enqueuer) EnqueueTick(userID string) error {
	task, err := NewTickTask(userID)
	if err != nil {
		return fmt.Errorf("failed to build dispatch task: %w", err)
	}
	if _, err := e.client.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue dispatch task: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (e *Enqueuer) Close() error {
	return e.client.Close()
}
