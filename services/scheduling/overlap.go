package scheduling

import (
	"clinicflow/models"
	"clinicflow/utils"
)

// Overlaps reports whether the half-open intervals [aStart, aStart+aDuration)
// and [bStart, bStart+bDuration) intersect. Times are minutes since midnight.
// Adjacent intervals do not overlap: back-to-back bookings are legal.
// Non-positive durations fall back to the default booking length.
//
// This is the single source of truth for interval conflicts; every higher
// component reuses it rather than comparing slot strings.
func Overlaps(aStart, aDuration, bStart, bDuration int) bool {
	if aDuration <= 0 {
		aDuration = models.DefaultDuration
	}
	if bDuration <= 0 {
		bDuration = models.DefaultDuration
	}
	return aStart < bStart+bDuration && bStart < aStart+aDuration
}

// bookingConflicts reports whether booking b occupies any part of
// [slotMin, slotMin+duration) on the given date.
func bookingConflicts(b models.Booking, date string, slotMin, duration int) bool {
	if b.Date != date {
		return false
	}
	bs, err := utils.ParseClock(b.Slot)
	if err != nil {
		return false
	}
	return Overlaps(slotMin, duration, bs, b.DurationMinutes())
}
