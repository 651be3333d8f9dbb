package availability

import (
	"testing"
	"time"
)

func mkRange(day time.Time, startMin, endMin int) TimeRange {
	return TimeRange{
		Start: day.Add(time.Duration(startMin) * time.Minute),
		End:   day.Add(time.Duration(endMin) * time.Minute),
	}
}

func sameRanges(t *testing.T, got, want []TimeRange) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d ranges, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if !got[i].Start.Equal(want[i].Start) || !got[i].End.Equal(want[i].End) {
			t.Fatalf("range %d: expected [%s, %s), got [%s, %s)",
				i,
				want[i].Start.Format(time.RFC3339), want[i].End.Format(time.RFC3339),
				got[i].Start.Format(time.RFC3339), got[i].End.Format(time.RFC3339))
		}
	}
}

func TestSubtract_SelfRemoval(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	r := mkRange(day, 9*60, 17*60)
	if got := Subtract([]TimeRange{r}, []TimeRange{r}); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestSubtract_BoundaryTouchIsNoOp(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	base := []TimeRange{mkRange(day, 9*60, 12*60)}
	// Removal ends exactly where the base starts: half-open, no overlap.
	got := Subtract(base, []TimeRange{mkRange(day, 8*60, 9*60)})
	sameRanges(t, got, base)
	// Removal starts exactly where the base ends.
	got = Subtract(base, []TimeRange{mkRange(day, 12*60, 13*60)})
	sameRanges(t, got, base)
}

func TestSubtract_InteriorSplit(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	base := []TimeRange{mkRange(day, 9*60, 17*60)}
	got := Subtract(base, []TimeRange{mkRange(day, 12*60, 13*60)})
	sameRanges(t, got, []TimeRange{
		mkRange(day, 9*60, 12*60),
		mkRange(day, 13*60, 17*60),
	})
}

func TestSubtract_EdgeTruncation(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	base := []TimeRange{mkRange(day, 9*60, 17*60)}
	got := Subtract(base, []TimeRange{mkRange(day, 8*60, 10*60)})
	sameRanges(t, got, []TimeRange{mkRange(day, 10*60, 17*60)})
	got = Subtract(base, []TimeRange{mkRange(day, 16*60, 18*60)})
	sameRanges(t, got, []TimeRange{mkRange(day, 9*60, 16*60)})
}

func TestSubtract_SequentialRemovals(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	base := []TimeRange{mkRange(day, 9*60, 17*60)}
	got := Subtract(base, []TimeRange{
		mkRange(day, 10*60, 11*60),
		mkRange(day, 14*60, 15*60),
	})
	sameRanges(t, got, []TimeRange{
		mkRange(day, 9*60, 10*60),
		mkRange(day, 11*60, 14*60),
		mkRange(day, 15*60, 17*60),
	})
}

func TestMerge_FoldsOverlappingAndTouching(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	got := Merge([]TimeRange{
		mkRange(day, 13*60, 14*60),
		mkRange(day, 9*60, 11*60),
		mkRange(day, 10*60, 12*60),
		mkRange(day, 12*60, 13*60),
	})
	sameRanges(t, got, []TimeRange{mkRange(day, 9*60, 14*60)})
}

func TestMerge_KeepsDisjointSeparate(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	got := Merge([]TimeRange{
		mkRange(day, 14*60, 17*60),
		mkRange(day, 9*60, 12*60),
	})
	sameRanges(t, got, []TimeRange{
		mkRange(day, 9*60, 12*60),
		mkRange(day, 14*60, 17*60),
	})
}

func TestMerge_Idempotent(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	once := Merge([]TimeRange{
		mkRange(day, 9*60, 11*60),
		mkRange(day, 10*60, 12*60),
		mkRange(day, 15*60, 16*60),
	})
	twice := Merge(once)
	sameRanges(t, twice, once)
}

func TestMerge_DropsEmptyRanges(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	got := Merge([]TimeRange{
		mkRange(day, 10*60, 10*60), // zero-length
		mkRange(day, 12*60, 11*60), // inverted
	})
	if len(got) != 0 {
		t.Fatalf("expected no ranges, got %v", got)
	}
}
