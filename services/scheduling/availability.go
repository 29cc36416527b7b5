package scheduling

import (
	"clinicflow/models"
	"clinicflow/utils"
)

// IsTherapistAvailable reports whether the therapist is free for
// [slot, slot+duration) on date: the static whitelist (when configured) must
// contain the slot, and no booking referencing the therapist may overlap the
// interval. Pass duration <= 0 for the default booking length.
func IsTherapistAvailable(t models.Therapist, date, slot string, bookings []models.Booking, duration int) bool {
	slotMin, err := utils.ParseClock(slot)
	if err != nil {
		return false
	}
	if duration <= 0 {
		duration = models.DefaultDuration
	}
	if len(t.Availability) > 0 && !containsSlot(t.Availability[date], slot) {
		return false
	}
	for _, b := range bookings {
		if b.HasTherapist(t.ID) && bookingConflicts(b, date, slotMin, duration) {
			return false
		}
	}
	return true
}

// IsRoomAvailable is the room analogue of IsTherapistAvailable, keyed on the
// booking's roomId. Rooms without a whitelist are free unless booked.
func IsRoomAvailable(room models.Room, date, slot string, bookings []models.Booking, duration int) bool {
	slotMin, err := utils.ParseClock(slot)
	if err != nil {
		return false
	}
	if duration <= 0 {
		duration = models.DefaultDuration
	}
	if len(room.Availability) > 0 && !containsSlot(room.Availability[date], slot) {
		return false
	}
	for _, b := range bookings {
		if b.RoomID == room.ID && bookingConflicts(b, date, slotMin, duration) {
			return false
		}
	}
	return true
}

// IsPatientAvailable reports whether the patient has no booking overlapping
// [slot, slot+duration) on date, across all rooms and therapists.
func IsPatientAvailable(clientID, date, slot string, bookings []models.Booking, duration int) bool {
	slotMin, err := utils.ParseClock(slot)
	if err != nil {
		return false
	}
	if duration <= 0 {
		duration = models.DefaultDuration
	}
	for _, b := range bookings {
		if b.ClientID == clientID && bookingConflicts(b, date, slotMin, duration) {
			return false
		}
	}
	return true
}

// FilterTherapistsByGender narrows therapists to the patient's gender when the
// match policy is enforced and the gender is known; otherwise the input passes
// through unfiltered. Pure policy filter, no time awareness.
func FilterTherapistsByGender(therapists []models.Therapist, patientGender models.Gender, enforce bool) []models.Therapist {
	if !enforce || patientGender == models.GenderUnknown {
		return therapists
	}
	var out []models.Therapist
	for _, t := range therapists {
		if t.Gender == patientGender {
			out = append(out, t)
		}
	}
	return out
}

// AvailableTherapists applies the gender policy, then keeps therapists free
// for [slot, slot+duration) on date against the full booking list.
func AvailableTherapists(therapists []models.Therapist, patientGender models.Gender, date, slot string, bookings []models.Booking, enforceGenderMatch bool, duration int) []models.Therapist {
	var out []models.Therapist
	for _, t := range FilterTherapistsByGender(therapists, patientGender, enforceGenderMatch) {
		if IsTherapistAvailable(t, date, slot, bookings, duration) {
			out = append(out, t)
		}
	}
	return out
}

// AvailableRooms keeps rooms free for [slot, slot+duration) on date.
func AvailableRooms(rooms []models.Room, date, slot string, bookings []models.Booking, duration int) []models.Room {
	var out []models.Room
	for _, r := range rooms {
		if IsRoomAvailable(r, date, slot, bookings, duration) {
			out = append(out, r)
		}
	}
	return out
}

// AvailableRoomSlots generates the day grid and keeps the starts at which the
// room is free for a full slotDuration interval.
func AvailableRoomSlots(room models.Room, date string, timings models.ClinicTimings, slotDuration int, bookings []models.Booking) []string {
	var out []string
	for _, slot := range GenerateDaySlots(timings, date, slotDuration) {
		if IsRoomAvailable(room, date, slot, bookings, slotDuration) {
			out = append(out, slot)
		}
	}
	return out
}

// AvailableTherapistSlots is the therapist analogue of AvailableRoomSlots.
func AvailableTherapistSlots(t models.Therapist, date string, timings models.ClinicTimings, slotDuration int, bookings []models.Booking) []string {
	var out []string
	for _, slot := range GenerateDaySlots(timings, date, slotDuration) {
		if IsTherapistAvailable(t, date, slot, bookings, slotDuration) {
			out = append(out, slot)
		}
	}
	return out
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
