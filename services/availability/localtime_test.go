package availability

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h != 9 || m != 30 {
		t.Fatalf("expected 9:30, got %d:%d", h, m)
	}

	for _, bad := range []string{"", "9", "24:00", "12:60", "ab:cd", "12:3x"} {
		if _, _, err := ParseClock(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestResolveClock_AppliesOffsetInForce(t *testing.T) {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// Winter: London is on GMT (+00:00).
	winter := time.Date(2026, 1, 15, 0, 0, 0, 0, loc)
	got, ok := ResolveClock(winter, "12:00", loc)
	if !ok {
		t.Fatal("expected ok")
	}
	if !got.Equal(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("winter 12:00 London should be 12:00 UTC, got %s", got.UTC().Format(time.RFC3339))
	}

	// Summer: London is on BST (+01:00).
	summer := time.Date(2026, 7, 15, 0, 0, 0, 0, loc)
	got, ok = ResolveClock(summer, "12:00", loc)
	if !ok {
		t.Fatal("expected ok")
	}
	if !got.Equal(time.Date(2026, 7, 15, 11, 0, 0, 0, time.UTC)) {
		t.Fatalf("summer 12:00 London should be 11:00 UTC, got %s", got.UTC().Format(time.RFC3339))
	}
}

func TestResolveClock_SpringForwardGap(t *testing.T) {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 2026-03-29 01:30 does not exist in London: clocks jump 01:00 GMT ->
	// 02:00 BST. The resolver normalizes to a real instant rather than
	// failing; the result must land inside the day, at or after the gap.
	day := time.Date(2026, 3, 29, 0, 0, 0, 0, loc)
	got, ok := ResolveClock(day, "01:30", loc)
	if !ok {
		t.Fatal("expected ok for skipped wall-clock time")
	}
	gapStart := time.Date(2026, 3, 29, 1, 0, 0, 0, time.UTC) // 01:00 UTC == 01:00 GMT
	if got.Before(day) || got.Before(gapStart.Add(-time.Hour)) {
		t.Fatalf("skipped time resolved outside the day: %s", got.UTC().Format(time.RFC3339))
	}
}

func TestResolveClock_RejectsBadClock(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	if _, ok := ResolveClock(day, "25:00", time.UTC); ok {
		t.Fatal("expected not ok for invalid clock")
	}
}
