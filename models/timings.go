package models

import (
	"strings"
	"time"
)

// Day statuses as configured by the clinic administration module.
const (
	DayWorking   = "working"
	DayHalfDay   = "half_day"
	DayHoliday   = "holiday"
	DayWeeklyOff = "weekly_off"
)

// DayTimings describes one weekday's open window and optional mid-day break.
// All clock values are zero-padded "HH:mm".
type DayTimings struct {
	IsOpen     bool   `json:"isOpen"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Status     string `json:"status"`
	BreakStart string `json:"breakStart,omitempty"`
	BreakEnd   string `json:"breakEnd,omitempty"`
}

// Closed reports whether no slots may be generated for the day.
func (dt DayTimings) Closed() bool {
	return !dt.IsOpen || dt.Status == DayHoliday || dt.Status == DayWeeklyOff
}

// HasBreak reports whether both break boundaries are configured.
func (dt DayTimings) HasBreak() bool {
	return dt.BreakStart != "" && dt.BreakEnd != ""
}

// ClinicTimings maps lowercase weekday names ("monday", "tuesday", ...) to the
// clinic's window for that day.
type ClinicTimings map[string]DayTimings

// ForDate resolves the timings row for the weekday of date ("YYYY-MM-DD").
// The second return value is false when the date is malformed or the weekday
// has no configuration.
func (ct ClinicTimings) ForDate(date string) (DayTimings, bool) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return DayTimings{}, false
	}
	dt, ok := ct[strings.ToLower(d.Weekday().String())]
	return dt, ok
}
