package models

import "testing"

func TestDayTimingsClosed(t *testing.T) {
	tests := []struct {
		name string
		dt   DayTimings
		want bool
	}{
		{"open working day", DayTimings{IsOpen: true, Status: DayWorking}, false},
		{"half day stays open", DayTimings{IsOpen: true, Status: DayHalfDay}, false},
		{"holiday closes even when flagged open", DayTimings{IsOpen: true, Status: DayHoliday}, true},
		{"weekly off closes", DayTimings{IsOpen: true, Status: DayWeeklyOff}, true},
		{"isOpen false closes", DayTimings{IsOpen: false, Status: DayWorking}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dt.Closed(); got != tt.want {
				t.Errorf("Closed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClinicTimingsForDate(t *testing.T) {
	ct := ClinicTimings{
		"monday": {IsOpen: true, Start: "09:00", End: "17:00", Status: DayWorking},
	}

	// 2099-05-25 is a Monday.
	dt, ok := ct.ForDate("2099-05-25")
	if !ok || dt.Start != "09:00" {
		t.Errorf("ForDate(monday) = %+v, %v", dt, ok)
	}

	if _, ok := ct.ForDate("2099-05-26"); ok {
		t.Error("unconfigured weekday must not resolve")
	}
	if _, ok := ct.ForDate("garbage"); ok {
		t.Error("malformed date must not resolve")
	}
}

func TestBookingHelpers(t *testing.T) {
	b := Booking{TherapistIDs: []string{"t1", "t2"}}
	if !b.HasTherapist("t2") || b.HasTherapist("t9") {
		t.Error("HasTherapist lookup broken")
	}
	if got := b.DurationMinutes(); got != DefaultDuration {
		t.Errorf("DurationMinutes() = %d, want default %d", got, DefaultDuration)
	}
	b.Duration = 45
	if got := b.DurationMinutes(); got != 45 {
		t.Errorf("DurationMinutes() = %d, want 45", got)
	}
}
