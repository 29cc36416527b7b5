package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock converts an "HH:mm" clock string to minutes since midnight.
// Slot times are converted once at the boundary; all interval arithmetic in
// the engine runs on integer minutes.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q: expected HH:mm", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:mm".
func FormatClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// CombineDateClock builds the absolute time of a slot on a date ("YYYY-MM-DD"
// + minutes since midnight) in loc.
func CombineDateClock(date string, minutes int, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return d.Add(time.Duration(minutes) * time.Minute), nil
}
