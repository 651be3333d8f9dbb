package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slotwise/models"
	"slotwise/services/availability"
	"slotwise/utils"

	"go.uber.org/zap"
)

func availabilityCacheKey(orgID, bookingTypeID, date string) string {
	return fmt.Sprintf("avail:%s:%s:%s", orgID, bookingTypeID, date)
}

// GetAvailableSlots serves the public slot query. Responses are cached
// briefly; the cache only absorbs read bursts, booking creation always goes
// through FreshSlots.
func (s *DefaultAvailabilityService) GetAvailableSlots(ctx context.Context, orgID, bookingTypeID, date string) (*models.AvailabilityResponse, error) {
	logger := utils.GetLogger()

	if s.CacheClient != nil {
		cached, err := s.CacheClient.Get(ctx, availabilityCacheKey(orgID, bookingTypeID, date)).Result()
		if err == nil {
			var resp models.AvailabilityResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
			logger.Warn("discarding unreadable cached availability",
				zap.String("orgId", orgID), zap.String("date", date))
		}
	}

	slots, bt, err := s.FreshSlots(ctx, orgID, bookingTypeID, date)
	if err != nil {
		return nil, err
	}

	org, err := s.OrgRepo.GetOrganisation(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organisation %s: %w", orgID, err)
	}

	resp := &models.AvailabilityResponse{
		OrgID:         orgID,
		BookingTypeID: bt.ID,
		Date:          date,
		Timezone:      org.Timezone,
		Slots:         make([]models.SlotResponse, 0, len(slots)),
	}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, models.SlotResponse{
			Start: slot.Start.Format(time.RFC3339),
			End:   slot.End.Format(time.RFC3339),
		})
	}

	if s.CacheClient != nil && s.CacheTTL > 0 {
		data, err := json.Marshal(resp)
		if err == nil {
			if err := s.CacheClient.Set(ctx, availabilityCacheKey(orgID, bookingTypeID, date), data, s.CacheTTL).Err(); err != nil {
				logger.Warn("failed to cache availability response", zap.Error(err))
			}
		}
	}
	return resp, nil
}

// FreshSlots gathers the day's constraint data and runs the pure engine.
func (s *DefaultAvailabilityService) FreshSlots(ctx context.Context, orgID, bookingTypeID, date string) ([]availability.AvailableSlot, *models.BookingType, error) {
	org, err := s.OrgRepo.GetOrganisation(ctx, orgID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch organisation %s: %w", orgID, err)
	}
	loc, err := time.LoadLocation(org.Timezone)
	if err != nil {
		return nil, nil, NewValidationError(fmt.Sprintf("unsupported timezone %q", org.Timezone))
	}
	dayStart, err := time.ParseInLocation(availability.DateLayout, date, loc)
	if err != nil {
		return nil, nil, NewValidationError(fmt.Sprintf("malformed date %q, want YYYY-MM-DD", date))
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	bt, err := s.OrgRepo.GetBookingType(ctx, orgID, bookingTypeID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch booking type %s: %w", bookingTypeID, err)
	}
	if bt.DurationMins <= 0 {
		return nil, nil, NewValidationError("booking type has no duration")
	}
	provider, err := s.OrgRepo.GetProvider(ctx, orgID, bt.ProviderID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch provider %s: %w", bt.ProviderID, err)
	}

	workingHours, err := s.ScheduleRepo.GetWorkingHours(ctx, orgID, provider.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch working hours: %w", err)
	}

	overrides, err := s.ScheduleRepo.GetOverridesForDate(ctx, orgID, provider.ID, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch overrides: %w", err)
	}
	recurring, err := s.ScheduleRepo.GetRecurringOverrides(ctx, orgID, provider.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch recurring overrides: %w", err)
	}
	overrides = append(overrides, s.Recurrence.Resolve(recurring, date)...)

	busy, err := s.BusyTimes.BusyTimes(ctx, provider.Calendar, dayStart, dayEnd)
	if err != nil {
		// Missing busy data must fail the query rather than silently offer
		// slots the provider's calendar already occupies.
		return nil, nil, fmt.Errorf("failed to fetch calendar busy times: %w", err)
	}

	buffer := time.Duration(bt.BufferMins) * time.Minute
	// A booking that ended just before midnight can push its buffer into this
	// day, so the fetch window starts a buffer early.
	confirmed, err := s.BookingRepo.GetConfirmedForRange(ctx, provider.ID, dayStart.Add(-buffer), dayEnd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch existing bookings: %w", err)
	}
	bookingRanges := make([]availability.TimeRange, 0, len(confirmed))
	for _, b := range confirmed {
		bookingRanges = append(bookingRanges, availability.TimeRange{Start: b.Start, End: b.End})
	}

	in := availability.Input{
		Date:         date,
		Location:     loc,
		WorkingHours: workingHours,
		Overrides:    overrides,
		BusyEvents:   busy,
		Bookings:     bookingRanges,
		Duration:     time.Duration(bt.DurationMins) * time.Minute,
		Buffer:       buffer,
		MinNotice:    time.Duration(bt.MinNoticeMins) * time.Minute,
		Now:          s.now(),
	}
	return availability.ComputeSlots(in), bt, nil
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
