package scheduling

import (
	"clinicflow/models"
)

// BookingRuleRequest carries everything the pre-commit validation needs.
// Optional static whitelists override the catalog entities so callers can
// validate against the exact availability data they are about to commit with.
type BookingRuleRequest struct {
	TherapistIDs []string
	RoomID       string
	Date         string
	Slot         string
	Duration     int
	PatientID    string
	Bookings     []models.Booking
	// RoomAvailability, when non-nil, is the room's slot whitelist per date.
	RoomAvailability map[string][]string
	// TherapistAvailability, when non-nil, maps therapist id to its per-date
	// slot whitelist.
	TherapistAvailability map[string]map[string][]string
}

// CanBookAppointment is the last gate before an external caller commits a
// booking. It validates, in order: the room's static whitelist, the room's
// interval conflicts, every requested therapist's whitelist and conflicts,
// and finally the patient's conflicts. All conflict checks use the same
// half-open interval model as the availability checker.
//
// The engine validates against a snapshot only; callers must re-run this
// check inside a serialized commit path to avoid stale-read double bookings.
func CanBookAppointment(req BookingRuleRequest) bool {
	room := models.Room{ID: req.RoomID, Availability: req.RoomAvailability}
	if !IsRoomAvailable(room, req.Date, req.Slot, req.Bookings, req.Duration) {
		return false
	}

	for _, tid := range req.TherapistIDs {
		t := models.Therapist{ID: tid}
		if req.TherapistAvailability != nil {
			t.Availability = req.TherapistAvailability[tid]
		}
		if !IsTherapistAvailable(t, req.Date, req.Slot, req.Bookings, req.Duration) {
			return false
		}
	}

	if req.PatientID != "" && !IsPatientAvailable(req.PatientID, req.Date, req.Slot, req.Bookings, req.Duration) {
		return false
	}

	return true
}
