package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used throughout the platform.
const DateLayout = "2006-01-02"

// ParseClock splits a "HH:MM" wall-clock string into hour and minute.
func ParseClock(clock string) (int, int, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock value %q", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("invalid hour in clock value %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("invalid minute in clock value %q", clock)
	}
	return h, m, nil
}

// ResolveClock converts a "HH:MM" wall-clock time on the given calendar day
// into the absolute instant observed in day's location. This is the single
// wall-clock-to-instant conversion point: the UTC offset in force on that
// specific date is applied, so DST transitions resolve correctly.
//
// For wall-clock times skipped by a spring-forward transition, time.Date
// normalizes forward past the gap; for times repeated by a fall-back
// transition it picks one of the two valid instants deterministically. Both
// behaviors are accepted as the platform's DST policy.
func ResolveClock(day time.Time, clock string, loc *time.Location) (time.Time, bool) {
	h, m, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc), true
}

// clockRange resolves a start/end clock pair on day into a TimeRange.
// Degenerate pairs (end not after start, unparsable clocks) report false and
// simply contribute no availability; they are never an error here.
func clockRange(day time.Time, startClock, endClock string, loc *time.Location) (TimeRange, bool) {
	start, ok := ResolveClock(day, startClock, loc)
	if !ok {
		return TimeRange{}, false
	}
	end, ok := ResolveClock(day, endClock, loc)
	if !ok {
		return TimeRange{}, false
	}
	r := TimeRange{Start: start, End: end}
	if r.IsZero() {
		return TimeRange{}, false
	}
	return r, true
}
