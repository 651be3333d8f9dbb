package availability

import (
	"sort"
	"time"
)

// TimeRange is a half-open interval [Start, End). A range whose end does not
// lie after its start is empty and contributes nothing.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// IsZero reports whether the range covers no time at all.
func (r TimeRange) IsZero() bool {
	return !r.End.After(r.Start)
}

// Merge sorts the given ranges by start and folds overlapping or touching
// ranges into the widest covering range. The result is disjoint and sorted;
// empty ranges are discarded. Merging its own output again is a no-op.
func Merge(ranges []TimeRange) []TimeRange {
	kept := make([]TimeRange, 0, len(ranges))
	for _, r := range ranges {
		if !r.IsZero() {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Start.Before(kept[j].Start) })

	merged := []TimeRange{kept[0]}
	for _, r := range kept[1:] {
		last := &merged[len(merged)-1]
		if !r.Start.After(last.End) {
			if r.End.After(last.End) {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// Subtract removes each range in remove from every range in base, applying
// removals one at a time. A removal that only touches a boundary has no
// effect (half-open semantics); one that covers a base range drops it; one
// that overlaps the interior splits the base range in two.
//
// If base is disjoint and sorted the result is too: removals never reorder
// surviving ranges and splits stay in place.
func Subtract(base, remove []TimeRange) []TimeRange {
	out := base
	for _, rm := range remove {
		if rm.IsZero() {
			continue
		}
		var next []TimeRange
		for _, r := range out {
			// No overlap: entirely before or entirely after the removal.
			if !r.End.After(rm.Start) || !r.Start.Before(rm.End) {
				next = append(next, r)
				continue
			}
			if r.Start.Before(rm.Start) {
				next = append(next, TimeRange{Start: r.Start, End: rm.Start})
			}
			if r.End.After(rm.End) {
				next = append(next, TimeRange{Start: rm.End, End: r.End})
			}
		}
		out = next
	}
	return out
}
