package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "slotwise/database/repository/booking"
	"slotwise/models"
	"slotwise/utils"

	"go.uber.org/zap"
)

// CreateBooking reserves a slot. Availability is recomputed fresh and the
// requested start must be an exact member of the recomputed slot set; the
// unique index in the booking store then settles any race that slips between
// the recheck and the insert.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, orgID string, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	requested, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("malformed start instant %q, want RFC 3339", req.Start))
	}

	slots, bt, err := s.Availability.FreshSlots(ctx, orgID, req.BookingTypeID, req.Date)
	if err != nil {
		return nil, err
	}

	var found bool
	var end time.Time
	for _, slot := range slots {
		if slot.Start.Equal(requested) {
			found = true
			end = slot.End
			break
		}
	}
	if !found {
		return nil, NewConflictError("the requested slot is no longer available, please pick another time")
	}

	b := &models.Booking{
		OrgID:         orgID,
		ProviderID:    bt.ProviderID,
		BookingTypeID: bt.ID,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		Start:         requested,
		End:           end,
		Status:        models.BookingStatusConfirmed,
	}
	if err := s.Repo.Insert(ctx, b); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, NewConflictError("the requested slot was just booked by someone else")
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	logger.Info("booking created",
		zap.String("bookingId", b.ID),
		zap.String("orgId", orgID),
		zap.String("providerId", b.ProviderID),
		zap.Time("start", b.Start))

	// Email delivery is best-effort from the booking's point of view: the
	// reservation stands even if the queue is down.
	if s.Queue != nil {
		if err := s.Queue.EnqueueBookingConfirmed(*b); err != nil {
			logger.Warn("failed to enqueue confirmation email", zap.String("bookingId", b.ID), zap.Error(err))
		}
		if err := s.Queue.EnqueueBookingReminder(*b); err != nil {
			logger.Warn("failed to enqueue reminder email", zap.String("bookingId", b.ID), zap.Error(err))
		}
	}
	return b, nil
}
