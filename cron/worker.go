package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"slotwise/config"
	bookingRepo "slotwise/database/repository/booking"
	orgRepo "slotwise/database/repository/org"
	"slotwise/models"
	"slotwise/services/billing"
	"slotwise/services/notification"

	"github.com/hibiken/asynq"
)

// WorkerDeps carries everything the email worker needs.
type WorkerDeps struct {
	Bookings bookingRepo.BookingRepository
	Orgs     orgRepo.OrgRepository
	Notifier notification.NotificationService
	Invoices billing.InvoiceService
}

// InitBookingWorker runs the async worker in background.
func InitBookingWorker(deps WorkerDeps) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(TypeBookingConfirmed, handleBookingConfirmed(deps))
	mux.HandleFunc(TypeBookingReminder, handleBookingReminder(deps))

	// Start async worker with retry logic
	go func() {
		log.Println("[BookingWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BookingWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BookingWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// loadBookingContext resolves the payload to current booking state. A
// cancelled booking short-circuits: no email, no invoice.
func loadBookingContext(ctx context.Context, deps WorkerDeps, task *asynq.Task) (*models.Organisation, *models.BookingType, *models.Booking, error) {
	var p models.BookingTaskPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[BookingWorker] invalid payload: %v", err)
		return nil, nil, nil, err
	}
	b, err := deps.Bookings.GetByID(ctx, p.OrgID, p.BookingID)
	if err != nil {
		return nil, nil, nil, err
	}
	if b.Status != models.BookingStatusConfirmed {
		return nil, nil, nil, nil
	}
	org, err := deps.Orgs.GetOrganisation(ctx, p.OrgID)
	if err != nil {
		return nil, nil, nil, err
	}
	bt, err := deps.Orgs.GetBookingType(ctx, p.OrgID, b.BookingTypeID)
	if err != nil {
		return nil, nil, nil, err
	}
	return org, bt, b, nil
}

func handleBookingConfirmed(deps WorkerDeps) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		org, bt, b, err := loadBookingContext(ctx, deps, task)
		if err != nil || b == nil {
			return err
		}

		if bt.InvoiceEnabled && deps.Invoices != nil && b.InvoiceID == "" {
			invoiceID, err := deps.Invoices.CreateBookingInvoice(ctx, org, bt, b)
			if err != nil {
				log.Printf("[BookingWorker] failed to create invoice for booking %s: %v", b.ID, err)
				return err
			}
			if err := deps.Bookings.SetInvoiceID(ctx, b.ID, invoiceID); err != nil {
				log.Printf("[BookingWorker] failed to record invoice id for booking %s: %v", b.ID, err)
			}
		}

		if err := deps.Notifier.SendBookingConfirmation(ctx, org, bt, b); err != nil {
			log.Printf("[BookingWorker] failed to send confirmation for booking %s: %v", b.ID, err)
			return err
		}
		return nil
	}
}

func handleBookingReminder(deps WorkerDeps) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		org, bt, b, err := loadBookingContext(ctx, deps, task)
		if err != nil || b == nil {
			return err
		}
		if err := deps.Notifier.SendBookingReminder(ctx, org, bt, b); err != nil {
			log.Printf("[BookingWorker] failed to send reminder for booking %s: %v", b.ID, err)
			return err
		}
		return nil
	}
}
