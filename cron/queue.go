package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"slotwise/config"
	"slotwise/models"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingConfirmed = "booking:confirmed"
	TypeBookingReminder  = "booking:reminder"
)

// TaskQueue enqueues booking email jobs.
type TaskQueue struct {
	client *asynq.Client
}

// NewTaskQueue constructs a queue client against the configured Redis.
func NewTaskQueue() *TaskQueue {
	return &TaskQueue{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// EnqueueBookingConfirmed queues the confirmation email (and invoice, when
// the booking type has invoicing enabled) for immediate processing.
func (q *TaskQueue) EnqueueBookingConfirmed(b models.Booking) error {
	payload, err := json.Marshal(models.BookingTaskPayload{BookingID: b.ID, OrgID: b.OrgID})
	if err != nil {
		return fmt.Errorf("failed to marshal booking task payload: %w", err)
	}
	_, err = q.client.Enqueue(asynq.NewTask(TypeBookingConfirmed, payload), asynq.MaxRetry(5))
	return err
}

// EnqueueBookingReminder schedules the reminder email at the configured lead
// time before the booking starts. Bookings made inside the lead window get
// no reminder.
func (q *TaskQueue) EnqueueBookingReminder(b models.Booking) error {
	fireAt := b.Start.Add(-time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour)
	if !fireAt.After(time.Now()) {
		return nil
	}
	payload, err := json.Marshal(models.BookingTaskPayload{BookingID: b.ID, OrgID: b.OrgID})
	if err != nil {
		return fmt.Errorf("failed to marshal booking task payload: %w", err)
	}
	_, err = q.client.Enqueue(asynq.NewTask(TypeBookingReminder, payload),
		asynq.ProcessAt(fireAt), asynq.MaxRetry(5))
	return err
}

// Close releases the underlying client.
func (q *TaskQueue) Close() error {
	return q.client.Close()
}
