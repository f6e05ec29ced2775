package pricing

import (
	"math"
	"time"
)

// DaysBetween converts a start/end date pair into an inclusive rental-day
// count: the ceiling of the calendar difference, never below 1. A same-day
// rental counts as one day. Inverted ranges are not rejected here;
// chronological validation is the caller's responsibility.
func DaysBetween(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}
