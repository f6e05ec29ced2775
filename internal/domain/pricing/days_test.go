package pricing

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"one full day", day(2025, 6, 1), day(2025, 6, 2), 1},
		{"ten days", day(2025, 6, 1), day(2025, 6, 11), 10},
		{"same day floors to one", day(2025, 6, 1), day(2025, 6, 1), 1},
		{"inverted range floors to one", day(2025, 6, 5), day(2025, 6, 1), 1},
		{"across a month boundary", day(2025, 6, 28), day(2025, 7, 3), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysBetween(tc.start, tc.end); got != tc.want {
				t.Fatalf("DaysBetween(%v, %v) = %d, want %d",
					tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestDaysBetweenPartialDayRoundsUp(t *testing.T) {
	start := day(2025, 6, 1)
	end := start.Add(36 * time.Hour)
	if got := DaysBetween(start, end); got != 2 {
		t.Fatalf("36h span = %d days, want 2", got)
	}
}
