package availability

import (
	"testing"
	"time"

	"slotwise/models"
)

func londonLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func weekHours(weekday time.Weekday, start, end string) []models.WorkingHourSlot {
	return []models.WorkingHourSlot{{
		ID:         "wh-1",
		ProviderID: "prov-1",
		Weekday:    weekday,
		StartClock: start,
		EndClock:   end,
	}}
}

// 2026-04-01 is a Wednesday.
const testDate = "2026-04-01"

func baseInput(t *testing.T) Input {
	loc := londonLoc(t)
	return Input{
		Date:         testDate,
		Location:     loc,
		WorkingHours: weekHours(time.Wednesday, "09:00", "17:00"),
		Duration:     30 * time.Minute,
		Now:          time.Date(2026, 3, 30, 12, 0, 0, 0, loc),
	}
}

func checkSlotsWellFormed(t *testing.T, slots []AvailableSlot, duration time.Duration) {
	t.Helper()
	for i, s := range slots {
		if s.End.Sub(s.Start) != duration {
			t.Fatalf("slot %d has duration %s, want %s", i, s.End.Sub(s.Start), duration)
		}
		if i > 0 && slots[i-1].End.After(s.Start) {
			t.Fatalf("slot %d overlaps its predecessor", i)
		}
	}
}

func TestComputeSlots_StandardDay(t *testing.T) {
	in := baseInput(t)
	slots := ComputeSlots(in)

	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(slots))
	}
	checkSlotsWellFormed(t, slots, in.Duration)

	first := time.Date(2026, 4, 1, 9, 0, 0, 0, in.Location)
	last := time.Date(2026, 4, 1, 16, 30, 0, 0, in.Location)
	if !slots[0].Start.Equal(first) {
		t.Fatalf("expected first slot at 09:00, got %s", slots[0].Start.Format(time.RFC3339))
	}
	if !slots[len(slots)-1].Start.Equal(last) {
		t.Fatalf("expected last slot at 16:30, got %s", slots[len(slots)-1].Start.Format(time.RFC3339))
	}
}

func TestComputeSlots_CombinedConstraints(t *testing.T) {
	in := baseInput(t)
	loc := in.Location
	in.Overrides = []models.Override{
		{Date: testDate, Kind: models.OverrideAvailable, StartClock: "07:00", EndClock: "09:00"},
		{Date: testDate, Kind: models.OverrideBlocked, StartClock: "12:00", EndClock: "13:00"},
	}
	in.BusyEvents = []TimeRange{{
		Start: time.Date(2026, 4, 1, 10, 0, 0, 0, loc),
		End:   time.Date(2026, 4, 1, 11, 0, 0, 0, loc),
	}}
	in.Bookings = []TimeRange{{
		Start: time.Date(2026, 4, 1, 15, 0, 0, 0, loc),
		End:   time.Date(2026, 4, 1, 15, 30, 0, 0, loc),
	}}
	in.Buffer = 15 * time.Minute

	open := OpenRanges(in)
	want := []TimeRange{
		{Start: time.Date(2026, 4, 1, 7, 0, 0, 0, loc), End: time.Date(2026, 4, 1, 10, 0, 0, 0, loc)},
		{Start: time.Date(2026, 4, 1, 11, 0, 0, 0, loc), End: time.Date(2026, 4, 1, 12, 0, 0, 0, loc)},
		{Start: time.Date(2026, 4, 1, 13, 0, 0, 0, loc), End: time.Date(2026, 4, 1, 15, 0, 0, 0, loc)},
		{Start: time.Date(2026, 4, 1, 15, 45, 0, 0, loc), End: time.Date(2026, 4, 1, 17, 0, 0, 0, loc)},
	}
	sameRanges(t, open, want)

	slots := ComputeSlots(in)
	if len(slots) != 14 {
		t.Fatalf("expected 14 slots, got %d", len(slots))
	}
	checkSlotsWellFormed(t, slots, in.Duration)
}

func TestComputeSlots_EntireDayInsideNoticeWindow(t *testing.T) {
	in := baseInput(t)
	in.Now = time.Date(2026, 4, 1, 16, 0, 0, 0, in.Location)
	in.MinNotice = 2 * time.Hour

	if slots := ComputeSlots(in); len(slots) != 0 {
		t.Fatalf("expected zero slots, got %d", len(slots))
	}
}

func TestComputeSlots_RemainderDiscarded(t *testing.T) {
	in := baseInput(t)
	in.Duration = 45 * time.Minute // 480 / 45 = 10 slots, trailing 30 min unused

	slots := ComputeSlots(in)
	if len(slots) != 10 {
		t.Fatalf("expected 10 slots, got %d", len(slots))
	}
	checkSlotsWellFormed(t, slots, in.Duration)
}

func TestComputeSlots_AvailableOverrideInsideWorkingHoursIsNoOp(t *testing.T) {
	in := baseInput(t)
	baseline := ComputeSlots(in)

	in.Overrides = []models.Override{
		{Date: testDate, Kind: models.OverrideAvailable, StartClock: "10:00", EndClock: "12:00"},
	}
	withOverride := ComputeSlots(in)

	if len(withOverride) != len(baseline) {
		t.Fatalf("available override inside working hours changed slot count: %d -> %d",
			len(baseline), len(withOverride))
	}
}

func TestComputeSlots_BlockedWinsOverAvailable(t *testing.T) {
	in := baseInput(t)
	in.WorkingHours = nil

	for _, order := range [][]models.Override{
		{
			{Date: testDate, Kind: models.OverrideAvailable, StartClock: "10:00", EndClock: "12:00"},
			{Date: testDate, Kind: models.OverrideBlocked, StartClock: "11:00", EndClock: "12:00"},
		},
		{
			{Date: testDate, Kind: models.OverrideBlocked, StartClock: "11:00", EndClock: "12:00"},
			{Date: testDate, Kind: models.OverrideAvailable, StartClock: "10:00", EndClock: "12:00"},
		},
	} {
		in.Overrides = order
		open := OpenRanges(in)
		want := []TimeRange{{
			Start: time.Date(2026, 4, 1, 10, 0, 0, 0, in.Location),
			End:   time.Date(2026, 4, 1, 11, 0, 0, 0, in.Location),
		}}
		sameRanges(t, open, want)
	}
}

func TestComputeSlots_BufferOnlyAfterBooking(t *testing.T) {
	in := baseInput(t)
	loc := in.Location
	in.Bookings = []TimeRange{{
		Start: time.Date(2026, 4, 1, 12, 0, 0, 0, loc),
		End:   time.Date(2026, 4, 1, 12, 30, 0, 0, loc),
	}}
	in.Buffer = 15 * time.Minute

	open := OpenRanges(in)
	want := []TimeRange{
		// Time right up to the booking's start stays open: no leading buffer.
		{Start: time.Date(2026, 4, 1, 9, 0, 0, 0, loc), End: time.Date(2026, 4, 1, 12, 0, 0, 0, loc)},
		{Start: time.Date(2026, 4, 1, 12, 45, 0, 0, loc), End: time.Date(2026, 4, 1, 17, 0, 0, 0, loc)},
	}
	sameRanges(t, open, want)
}

func TestComputeSlots_OverlappingBufferedBookingsCompose(t *testing.T) {
	in := baseInput(t)
	loc := in.Location
	in.Bookings = []TimeRange{
		{Start: time.Date(2026, 4, 1, 12, 0, 0, 0, loc), End: time.Date(2026, 4, 1, 12, 30, 0, 0, loc)},
		{Start: time.Date(2026, 4, 1, 12, 30, 0, 0, loc), End: time.Date(2026, 4, 1, 13, 0, 0, 0, loc)},
	}
	in.Buffer = 15 * time.Minute

	open := OpenRanges(in)
	want := []TimeRange{
		{Start: time.Date(2026, 4, 1, 9, 0, 0, 0, loc), End: time.Date(2026, 4, 1, 12, 0, 0, 0, loc)},
		{Start: time.Date(2026, 4, 1, 13, 15, 0, 0, loc), End: time.Date(2026, 4, 1, 17, 0, 0, 0, loc)},
	}
	sameRanges(t, open, want)
}

func TestComputeSlots_BusyEventEqualToWorkingHours(t *testing.T) {
	in := baseInput(t)
	in.BusyEvents = []TimeRange{{
		Start: time.Date(2026, 4, 1, 9, 0, 0, 0, in.Location),
		End:   time.Date(2026, 4, 1, 17, 0, 0, 0, in.Location),
	}}
	if slots := ComputeSlots(in); len(slots) != 0 {
		t.Fatalf("expected zero slots when busy covers the whole day, got %d", len(slots))
	}
}

func TestComputeSlots_SlotsAlignToRangeStart(t *testing.T) {
	in := baseInput(t)
	in.WorkingHours = nil
	in.Overrides = []models.Override{
		{Date: testDate, Kind: models.OverrideAvailable, StartClock: "10:07", EndClock: "11:30"},
	}
	slots := ComputeSlots(in)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if !slots[0].Start.Equal(time.Date(2026, 4, 1, 10, 7, 0, 0, in.Location)) {
		t.Fatalf("expected first slot at 10:07, got %s", slots[0].Start.Format(time.RFC3339))
	}
	if !slots[1].Start.Equal(time.Date(2026, 4, 1, 10, 37, 0, 0, in.Location)) {
		t.Fatalf("expected second slot at 10:37, got %s", slots[1].Start.Format(time.RFC3339))
	}
}

func TestComputeSlots_DegenerateInputsProduceNoSlots(t *testing.T) {
	loc := londonLoc(t)
	cases := []Input{
		{}, // no location at all
		{Date: "not-a-date", Location: loc, Duration: 30 * time.Minute},
		{Date: testDate, Location: loc, Duration: 30 * time.Minute}, // no working hours
		{
			Date:     testDate,
			Location: loc,
			// end before start contributes nothing, never errors
			WorkingHours: weekHours(time.Wednesday, "17:00", "09:00"),
			Duration:     30 * time.Minute,
		},
		{
			Date:         testDate,
			Location:     loc,
			WorkingHours: weekHours(time.Wednesday, "09:00", "17:00"),
			Duration:     0,
		},
	}
	for i, in := range cases {
		if slots := ComputeSlots(in); len(slots) != 0 {
			t.Fatalf("case %d: expected zero slots, got %d", i, len(slots))
		}
	}
}

func TestComputeSlots_SplitSchedule(t *testing.T) {
	in := baseInput(t)
	in.WorkingHours = []models.WorkingHourSlot{
		{Weekday: time.Wednesday, StartClock: "14:00", EndClock: "17:00"},
		{Weekday: time.Wednesday, StartClock: "09:00", EndClock: "12:00"},
		{Weekday: time.Thursday, StartClock: "09:00", EndClock: "17:00"}, // wrong weekday, ignored
	}
	slots := ComputeSlots(in)
	if len(slots) != 12 {
		t.Fatalf("expected 12 slots over a split schedule, got %d", len(slots))
	}
	checkSlotsWellFormed(t, slots, in.Duration)
}
