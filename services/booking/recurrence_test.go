package booking

import (
	"testing"
	"time"

	"slotwise/models"
)

func TestWeeklyRecurrenceResolver(t *testing.T) {
	defs := []models.RecurringOverride{
		{
			ID:         "rec-1",
			Kind:       models.OverrideBlocked,
			Weekday:    time.Wednesday,
			StartClock: "12:00",
			EndClock:   "13:00",
			StartDate:  "2026-01-01",
		},
		{
			ID:         "rec-2",
			Kind:       models.OverrideAvailable,
			Weekday:    time.Saturday,
			StartClock: "10:00",
			EndClock:   "14:00",
			StartDate:  "2026-01-01",
		},
		{
			ID:         "rec-3",
			Kind:       models.OverrideBlocked,
			Weekday:    time.Wednesday,
			StartClock: "09:00",
			EndClock:   "10:00",
			StartDate:  "2026-01-01",
			EndDate:    "2026-02-01", // expired before the target date
		},
	}

	// 2026-04-01 is a Wednesday.
	resolved := WeeklyRecurrenceResolver{}.Resolve(defs, "2026-04-01")
	if len(resolved) != 1 {
		t.Fatalf("expected 1 resolved override, got %d", len(resolved))
	}
	ov := resolved[0]
	if ov.ID != "rec-1" || ov.Date != "2026-04-01" || ov.Kind != models.OverrideBlocked {
		t.Fatalf("unexpected resolved override: %+v", ov)
	}
}

func TestWeeklyRecurrenceResolver_BeforeStartDate(t *testing.T) {
	defs := []models.RecurringOverride{{
		Kind:       models.OverrideBlocked,
		Weekday:    time.Wednesday,
		StartClock: "12:00",
		EndClock:   "13:00",
		StartDate:  "2026-06-01",
	}}
	if got := (WeeklyRecurrenceResolver{}).Resolve(defs, "2026-04-01"); len(got) != 0 {
		t.Fatalf("expected no overrides before the pattern starts, got %d", len(got))
	}
}
