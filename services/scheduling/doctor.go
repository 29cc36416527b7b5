package scheduling

import (
	"time"

	"clinicflow/models"
	"clinicflow/utils"
)

// Doctor consultations run on a uniform short grid; with every appointment
// aligned to it, exact slot equality and interval overlap coincide, so this
// helper matches on slot strings directly.
const (
	DoctorSlotDuration  = 15
	doctorGridStart     = "09:00"
	doctorGridEnd       = "18:00"
	MaxDoctorAlternates = 5
)

// DoctorBookingRequest is the input for a fixed-duration consult check.
// Appointments reference the doctor through the booking's therapist ids.
type DoctorBookingRequest struct {
	DoctorID           string
	Date               string
	Slot               string
	PatientID          string
	Appointments       []models.Booking
	DoctorAvailability map[string][]string
	Now                time.Time
}

// CheckDoctorBooking validates a consult request against the snapshot:
// past slot, doctor busy, patient busy. On failure the result carries up to
// five later slot times the doctor could take instead.
func CheckDoctorBooking(req DoctorBookingRequest) models.AvailabilityResult {
	fail := func(reason string) models.AvailabilityResult {
		return models.AvailabilityResult{
			Available: false,
			Reason:    reason,
			Alternatives: GetNextAvailableDoctorSlots(
				req.DoctorID, req.Date, req.Appointments, req.DoctorAvailability,
				req.Now, MaxDoctorAlternates, req.Slot),
		}
	}

	if slotElapsed(req.Date, req.Slot, req.Now) {
		return fail(ReasonPastSlot)
	}
	for _, b := range req.Appointments {
		if b.Date == req.Date && b.Slot == req.Slot && b.HasTherapist(req.DoctorID) {
			return fail(ReasonDoctorBusy)
		}
	}
	if req.PatientID != "" {
		for _, b := range req.Appointments {
			if b.Date == req.Date && b.Slot == req.Slot && b.ClientID == req.PatientID {
				return fail(ReasonPatientBusy)
			}
		}
	}
	return models.AvailabilityResult{Available: true, Alternatives: []string{}}
}

// GetNextAvailableDoctorSlots returns up to max slot times the doctor is free
// for on date, after the optional afterSlot cutoff. When the doctor has no
// static availability configured a default 09:00-18:00 grid in 15-minute
// steps is used. Past and already-booked slots are filtered out.
func GetNextAvailableDoctorSlots(doctorID, date string, appointments []models.Booking, availability map[string][]string, now time.Time, max int, afterSlot string) []string {
	if max <= 0 {
		max = MaxDoctorAlternates
	}

	grid := availability[date]
	if len(grid) == 0 {
		grid = defaultDoctorGrid()
	}
	if afterSlot != "" {
		grid = SlotsAfter(grid, afterSlot)
	}

	booked := make(map[string]bool)
	for _, b := range appointments {
		if b.Date == date && b.HasTherapist(doctorID) {
			booked[b.Slot] = true
		}
	}

	out := []string{}
	for _, slot := range grid {
		if len(out) >= max {
			break
		}
		if booked[slot] || slotElapsed(date, slot, now) {
			continue
		}
		out = append(out, slot)
	}
	return out
}

func defaultDoctorGrid() []string {
	start, _ := utils.ParseClock(doctorGridStart)
	end, _ := utils.ParseClock(doctorGridEnd)
	var grid []string
	for m := start; m < end; m += DoctorSlotDuration {
		grid = append(grid, utils.FormatClock(m))
	}
	return grid
}
