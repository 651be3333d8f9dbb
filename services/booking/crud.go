package booking

import (
	"context"
	"fmt"
	"time"

	"slotwise/models"
)

func (s *DefaultBookingService) GetBooking(ctx context.Context, orgID, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, orgID, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	return b, nil
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, orgID, bookingID string) error {
	if err := s.Repo.UpdateStatus(ctx, orgID, bookingID, models.BookingStatusCancelled); err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", bookingID, err)
	}
	return nil
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, orgID string, from, to time.Time) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByOrg(ctx, orgID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
