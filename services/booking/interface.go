package booking

import (
	"context"
	"time"

	"slotwise/cron"
	bookingRepo "slotwise/database/repository/booking"
	orgRepo "slotwise/database/repository/org"
	scheduleRepo "slotwise/database/repository/schedule"
	"slotwise/models"
	"slotwise/services/availability"
	"slotwise/services/calendar"

	"github.com/go-redis/redis/v8"
)

// AvailabilityService resolves an organisation, booking type and date into
// the bookable slots for that day.
type AvailabilityService interface {
	GetAvailableSlots(ctx context.Context, orgID, bookingTypeID, date string) (*models.AvailabilityResponse, error)
	// FreshSlots always recomputes, bypassing the response cache. The
	// booking-creation flow uses it to re-check a chosen slot right before
	// the insert.
	FreshSlots(ctx context.Context, orgID, bookingTypeID, date string) ([]availability.AvailableSlot, *models.BookingType, error)
}

// BookingService creates and manages reservations.
type BookingService interface {
	CreateBooking(ctx context.Context, orgID string, req models.BookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, orgID, bookingID string) error
	GetBooking(ctx context.Context, orgID, bookingID string) (*models.Booking, error)
	ListBookings(ctx context.Context, orgID string, from, to time.Time) ([]models.Booking, error)
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	OrgRepo      orgRepo.OrgRepository
	ScheduleRepo scheduleRepo.ScheduleRepository
	BookingRepo  bookingRepo.BookingRepository
	Recurrence   RecurrenceResolver
	BusyTimes    calendar.BusyTimeProvider
	CacheClient  *redis.Client
	CacheTTL     time.Duration
	// Now is the injected clock; availability itself never reads one.
	Now func() time.Time
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	OrgRepo      orgRepo.OrgRepository
	Availability AvailabilityService
	Queue        *cron.TaskQueue
}
