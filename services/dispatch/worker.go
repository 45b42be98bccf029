package dispatch

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"dialhub/config"
	contactRepo "dialhub/database/repository/contact"
	"dialhub/models"
	"dialhub/services/assistant"
	"dialhub/services/calllog"
	"dialhub/services/schedule"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Worker consumes dispatch ticks: it resolves the active assignment
// for the user and, if an assistant is on duty, places calls to the
// next batch of queued contacts. The resolver itself stays pure; this
// is the only place it meets I/O.
type Worker struct {
	Schedule   schedule.Service
	Assistants assistant.AssistantService
	Contacts   contactRepo.ContactRepository
	CallLogs   calllog.CallLogService
	Logger     *zap.Logger
}

// InitDispatchWorker runs the async worker in background.
func InitDispatchWorker(w *Worker) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDispatchDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeDispatchTick, w.HandleTick)

	// Start async worker with retry logic
	go func() {
		log.Println("[DispatchWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[DispatchWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[DispatchWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// HandleTick processes one dispatch pass for one user.
func (w *Worker) HandleTick(ctx context.Context, task *asynq.Task) error {
	var p models.DispatchPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		w.Logger.Error("dispatch: invalid payload", zap.Error(err))
		return err
	}

	active, err := w.Schedule.Current(p.UserID)
	if err != nil {
		return err
	}
	if active.CurrentSlot == nil {
		// Nothing on duty right now; the common case, not an error.
		w.Logger.Debug("dispatch: no active assignment",
			zap.String("userId", p.UserID),
			zap.String("day", active.CurrentDay))
		return nil
	}

	batch := config.AppConfig.DispatchBatchSize
	contacts, err := w.Contacts.ListByStatus(p.UserID, models.ContactStatusQueued, batch)
	if err != nil {
		return err
	}

	slot := active.CurrentSlot
	for _, contact := range contacts {
		callID, err := w.Assistants.StartCall(ctx, slot.AssistantID, contact.Phone)
		status := models.CallStatusQueued
		if err != nil {
			w.Logger.Warn("dispatch: provider call failed",
				zap.String("userId", p.UserID),
				zap.String("contactId", contact.ID),
				zap.Error(err))
			status = models.CallStatusFailed
		} else {
			w.Logger.Info("dispatch: call placed",
				zap.String("userId", p.UserID),
				zap.String("contactId", contact.ID),
				zap.String("providerCallId", callID))
		}

		if _, err := w.CallLogs.Append(p.UserID, models.CallLogRequest{
			ContactID:     contact.ID,
			ContactPhone:  contact.Phone,
			AssistantID:   slot.AssistantID,
			AssistantName: slot.AssistantName,
			Status:        status,
			StartedAt:     time.Now(),
		}); err != nil {
			w.Logger.Error("dispatch: failed to record call log", zap.Error(err))
		}

		if status != models.CallStatusFailed {
			contact.Status = models.ContactStatusCalled
			if err := w.Contacts.Update(&contact); err != nil {
				w.Logger.Error("dispatch: failed to advance contact status",
					zap.String("contactId", contact.ID), zap.Error(err))
			}
		}
	}
	return nil
}
