package calendar

import (
	"context"
	"time"

	"slotwise/models"
	"slotwise/services/availability"
)

// BusyTimeProvider fetches busy intervals from a provider's external
// calendar. Returned ranges are absolute instants and are trusted as correct;
// the availability engine performs no validation of calendar data origin.
type BusyTimeProvider interface {
	BusyTimes(ctx context.Context, account *models.CalendarAccount, from, to time.Time) ([]availability.TimeRange, error)
}

// NoopBusyTimeProvider reports no busy time. Used for providers without a
// connected calendar and in tests.
type NoopBusyTimeProvider struct{}

func (NoopBusyTimeProvider) BusyTimes(ctx context.Context, account *models.CalendarAccount, from, to time.Time) ([]availability.TimeRange, error) {
	return nil, nil
}
