package notification

import (
	"context"
	"fmt"
	"time"

	"slotwise/models"
	"slotwise/utils"

	"go.uber.org/zap"
)

// NotificationService sends booking emails to clients.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, org *models.Organisation, bt *models.BookingType, b *models.Booking) error
	SendBookingReminder(ctx context.Context, org *models.Organisation, bt *models.BookingType, b *models.Booking) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Sender EmailSender
}

func NewDefaultNotificationService(sender EmailSender) (*DefaultNotificationService, error) {
	if sender == nil {
		return nil, fmt.Errorf("notification service initialization error: email sender is nil")
	}
	return &DefaultNotificationService{Sender: sender}, nil
}

// localStart renders the booking start in the organisation's timezone, the
// one the client booked in.
func localStart(org *models.Organisation, b *models.Booking) string {
	loc, err := time.LoadLocation(org.Timezone)
	if err != nil {
		return b.Start.Format("Mon, 2 Jan 2006 at 15:04 MST")
	}
	return b.Start.In(loc).Format("Mon, 2 Jan 2006 at 15:04")
}

func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, org *models.Organisation, bt *models.BookingType, b *models.Booking) error {
	subject := fmt.Sprintf("Booking confirmed: %s with %s", bt.Name, org.Name)
	body := fmt.Sprintf(
		"Hi %s,\n\nYour %s with %s is confirmed for %s.\n\nSee you then!\n",
		b.ClientName, bt.Name, org.Name, localStart(org, b),
	)
	if err := s.Sender.Send(b.ClientEmail, subject, body); err != nil {
		return fmt.Errorf("SendBookingConfirmation: could not email %s: %w", b.ClientEmail, err)
	}
	utils.GetLogger().Info("sent booking confirmation",
		zap.String("bookingId", b.ID), zap.String("to", b.ClientEmail))
	return nil
}

func (s *DefaultNotificationService) SendBookingReminder(ctx context.Context, org *models.Organisation, bt *models.BookingType, b *models.Booking) error {
	subject := fmt.Sprintf("Reminder: %s with %s", bt.Name, org.Name)
	body := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder of your %s with %s on %s.\n",
		b.ClientName, bt.Name, org.Name, localStart(org, b),
	)
	if err := s.Sender.Send(b.ClientEmail, subject, body); err != nil {
		return fmt.Errorf("SendBookingReminder: could not email %s: %w", b.ClientEmail, err)
	}
	utils.GetLogger().Info("sent booking reminder",
		zap.String("bookingId", b.ID), zap.String("to", b.ClientEmail))
	return nil
}
