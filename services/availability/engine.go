package availability

import (
	"time"

	"slotwise/models"
)

// Input carries everything one availability computation needs. It is built
// fresh per invocation from upstream queries; the engine reads no clock and
// keeps no state, so identical inputs always yield identical slots.
type Input struct {
	Date     string // "2006-01-02" in Location
	Location *time.Location

	WorkingHours []models.WorkingHourSlot // all weekdays; filtered to Date's weekday here
	Overrides    []models.Override        // already resolved to Date
	BusyEvents   []TimeRange              // external calendar busy times, absolute instants
	Bookings     []TimeRange              // confirmed bookings, absolute instants

	Duration  time.Duration // slot length
	Buffer    time.Duration // idle time appended after each booking's end
	MinNotice time.Duration // shortest lead time before a slot start
	Now       time.Time     // caller-supplied, never read from a system clock
}

// AvailableSlot is one bookable window. End - Start always equals the
// requested duration.
type AvailableSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// OpenRanges reduces the day's constraints to the final set of open time
// ranges, applying them in fixed precedence order:
//
//  1. working hours for the date's weekday form the baseline
//  2. available overrides merge in (a window already inside working hours
//     adds nothing)
//  3. blocked overrides subtract, winning over available overrides
//  4. calendar busy events subtract
//  5. bookings subtract, each widened by the buffer on its trailing edge only
//  6. range starts clip to now+minNotice; emptied ranges drop
//
// Every step leaves the set disjoint and sorted. Degenerate inputs produce
// zero availability, never an error.
func OpenRanges(in Input) []TimeRange {
	if in.Location == nil {
		return nil
	}
	day, err := time.ParseInLocation(DateLayout, in.Date, in.Location)
	if err != nil {
		return nil
	}
	weekday := day.Weekday()

	var open []TimeRange
	for _, wh := range in.WorkingHours {
		if wh.Weekday != weekday {
			continue
		}
		if r, ok := clockRange(day, wh.StartClock, wh.EndClock, in.Location); ok {
			open = append(open, r)
		}
	}
	open = Merge(open)

	var extra, blocked []TimeRange
	for _, ov := range in.Overrides {
		r, ok := clockRange(day, ov.StartClock, ov.EndClock, in.Location)
		if !ok {
			continue
		}
		switch ov.Kind {
		case models.OverrideAvailable:
			extra = append(extra, r)
		case models.OverrideBlocked:
			blocked = append(blocked, r)
		}
	}
	if len(extra) > 0 {
		open = Merge(append(open, extra...))
	}
	open = Subtract(open, blocked)

	open = Subtract(open, in.BusyEvents)

	if len(in.Bookings) > 0 {
		buffered := make([]TimeRange, 0, len(in.Bookings))
		for _, b := range in.Bookings {
			buffered = append(buffered, TimeRange{Start: b.Start, End: b.End.Add(in.Buffer)})
		}
		open = Subtract(open, buffered)
	}

	earliest := in.Now.Add(in.MinNotice)
	clipped := make([]TimeRange, 0, len(open))
	for _, r := range open {
		if r.Start.Before(earliest) {
			r.Start = earliest
		}
		if !r.IsZero() {
			clipped = append(clipped, r)
		}
	}
	return clipped
}

// Slots walks each open range in order and greedily emits consecutive
// duration-long slots aligned to the range's own start, discarding any
// trailing remainder shorter than one full duration. Ranges are disjoint and
// sorted, so concatenating their slots is already chronological.
func Slots(open []TimeRange, duration time.Duration) []AvailableSlot {
	if duration <= 0 {
		return nil
	}
	var slots []AvailableSlot
	for _, r := range open {
		for t := r.Start; !t.Add(duration).After(r.End); t = t.Add(duration) {
			slots = append(slots, AvailableSlot{Start: t, End: t.Add(duration)})
		}
	}
	return slots
}

// ComputeSlots is the engine entry point: constraints in, bookable slots out.
func ComputeSlots(in Input) []AvailableSlot {
	return Slots(OpenRanges(in), in.Duration)
}
