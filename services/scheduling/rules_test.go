package scheduling

import (
	"testing"

	"clinicflow/models"
)

func TestCanBookAppointment(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", Date: "2099-05-25", Slot: "09:00", Duration: 60, RoomID: "r1", TherapistIDs: []string{"t1"}, ClientID: "p1"},
	}
	base := BookingRuleRequest{
		TherapistIDs: []string{"t2"},
		RoomID:       "r2",
		Date:         "2099-05-25",
		Slot:         "09:00",
		Duration:     60,
		PatientID:    "p2",
		Bookings:     bookings,
	}

	tests := []struct {
		name   string
		mutate func(r *BookingRuleRequest)
		want   bool
	}{
		{"clean request", func(r *BookingRuleRequest) {}, true},
		{"room already booked", func(r *BookingRuleRequest) { r.RoomID = "r1" }, false},
		{"therapist already booked", func(r *BookingRuleRequest) { r.TherapistIDs = []string{"t1"} }, false},
		{"one busy therapist fails the group", func(r *BookingRuleRequest) { r.TherapistIDs = []string{"t2", "t1"} }, false},
		{"patient already booked", func(r *BookingRuleRequest) { r.PatientID = "p1" }, false},
		{"overlapping interval blocked", func(r *BookingRuleRequest) { r.RoomID = "r1"; r.Slot = "09:30" }, false},
		{"adjacent slot allowed", func(r *BookingRuleRequest) { r.RoomID = "r1"; r.TherapistIDs = []string{"t1"}; r.PatientID = "p1"; r.Slot = "10:00" }, true},
		{
			"room whitelist miss",
			func(r *BookingRuleRequest) {
				r.RoomAvailability = map[string][]string{"2099-05-25": {"11:00"}}
			},
			false,
		},
		{
			"room whitelist hit",
			func(r *BookingRuleRequest) {
				r.RoomAvailability = map[string][]string{"2099-05-25": {"09:00"}}
			},
			true,
		},
		{
			"therapist whitelist miss",
			func(r *BookingRuleRequest) {
				r.TherapistAvailability = map[string]map[string][]string{
					"t2": {"2099-05-25": {"11:00"}},
				}
			},
			false,
		},
		{"no patient check when id empty", func(r *BookingRuleRequest) { r.PatientID = "" }, true},
		{"malformed slot rejected", func(r *BookingRuleRequest) { r.Slot = "junk" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			if got := CanBookAppointment(req); got != tt.want {
				t.Errorf("CanBookAppointment() = %v, want %v", got, tt.want)
			}
		})
	}
}
