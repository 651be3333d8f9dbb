package booking

import (
	"time"

	"slotwise/models"
	"slotwise/services/availability"
)

// RecurrenceResolver expands recurring override definitions into the
// zero-or-one concrete Override each yields for a specific date. The
// availability engine only ever sees resolved, date-specific overrides.
type RecurrenceResolver interface {
	Resolve(defs []models.RecurringOverride, date string) []models.Override
}

// WeeklyRecurrenceResolver handles the weekly pattern, the only recurrence
// the dashboard currently produces. Richer recurrence expressions would slot
// in behind the same interface.
type WeeklyRecurrenceResolver struct{}

func (WeeklyRecurrenceResolver) Resolve(defs []models.RecurringOverride, date string) []models.Override {
	day, err := time.Parse(availability.DateLayout, date)
	if err != nil {
		return nil
	}

	var resolved []models.Override
	for _, def := range defs {
		if def.Weekday != day.Weekday() {
			continue
		}
		if def.StartDate != "" && date < def.StartDate {
			continue
		}
		if def.EndDate != "" && date > def.EndDate {
			continue
		}
		resolved = append(resolved, models.Override{
			ID:         def.ID,
			OrgID:      def.OrgID,
			ProviderID: def.ProviderID,
			Date:       date,
			Kind:       def.Kind,
			StartClock: def.StartClock,
			EndClock:   def.EndClock,
			Reason:     def.Reason,
		})
	}
	return resolved
}
