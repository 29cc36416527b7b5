package scheduling

import (
	"time"

	"go.uber.org/zap"

	"clinicflow/models"
	"clinicflow/utils"
)

// RecurringRequest describes an N-day series request: the same slot, patient
// and (optionally) therapists/room for `Days` consecutive calendar days
// starting at StartDate. The snapshot fields are read-only inputs.
type RecurringRequest struct {
	StartDate          string
	Days               int
	RequestedSlot      string
	SelectedTherapists []string
	SelectedRoom       string
	PatientID          string
	Therapists         []models.Therapist
	Rooms              []models.Room
	Patients           []models.Patient
	Bookings           []models.Booking
	Timings            models.ClinicTimings
	Now                time.Time
	EnforceGenderMatch bool
	SlotDuration       int
}

// RecurringSlotAlternatives evaluates each day of the series independently
// and reports, per day, whether the requested slot works and, when it does
// not, a closed reason code plus up to five ranked alternatives. Invalid
// input fails fast; unavailability never does.
//
// The snapshot is assumed stable for the whole evaluation. Results must be
// re-validated with CanBookAppointment immediately before each day's commit.
func RecurringSlotAlternatives(req RecurringRequest) ([]models.DayResult, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if req.Days <= 0 {
		return nil, ErrInvalidDays
	}
	if _, err := utils.ParseClock(req.RequestedSlot); err != nil {
		return nil, ErrInvalidSlot
	}
	if req.Now.IsZero() {
		return nil, ErrMissingNow
	}

	patientGender := models.GenderUnknown
	if req.PatientID != "" {
		patient, ok := findPatient(req.Patients, req.PatientID)
		if !ok {
			return nil, ErrUnknownPatient
		}
		patientGender = patient.Gender
	}

	duration := req.SlotDuration
	if duration <= 0 {
		duration = models.DefaultDuration
	}

	logger := utils.GetLogger()
	results := make([]models.DayResult, 0, req.Days)
	for i := 0; i < req.Days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		day := evaluateDay(req, date, patientGender, duration)
		if !day.Available {
			logger.Debug("recurring day unavailable",
				zap.String("date", date),
				zap.String("reason", day.Reason),
				zap.Int("alternatives", len(day.Alternatives)))
		}
		results = append(results, day)
	}
	return results, nil
}

func evaluateDay(req RecurringRequest, date string, patientGender models.Gender, duration int) models.DayResult {
	day := models.DayResult{Date: date, Alternatives: []models.Alternative{}}

	// Degenerate catalog: nothing can ever be booked.
	if len(req.Therapists) == 0 || len(req.Rooms) == 0 {
		day.Reason = ReasonTherapistsBusy
		return day
	}

	if slotElapsed(date, req.RequestedSlot, req.Now) {
		day.Reason = ReasonPastSlot
		day.Alternatives = pastSlotAlternatives(req, date, patientGender, duration)
		return day
	}

	if req.PatientID != "" && !IsPatientAvailable(req.PatientID, date, req.RequestedSlot, req.Bookings, duration) {
		day.Reason = ReasonPatientBusy
		day.Alternatives = forwardAlternatives(req, date, patientGender, duration)
		return day
	}

	freeTherapists := AvailableTherapists(req.Therapists, patientGender, date, req.RequestedSlot, req.Bookings, req.EnforceGenderMatch, duration)
	if len(freeTherapists) == 0 {
		// No alternatives at this stage: there is no therapist to staff them.
		day.Reason = ReasonTherapistsBusy
		return day
	}

	if req.SelectedRoom != "" && !selectedRoomFree(req, date, duration) {
		day.Reason = ReasonRoomUnavailable
		day.Alternatives = sameSlotRoomAlternatives(req, date, duration)
		return day
	}

	day.Available = true
	return day
}

// pastSlotAlternatives is the cross-product of gender-matched available
// therapists and available rooms at the requested slot, capped at five. The
// slot label keeps the "<slot>-<roomId>" composite form booking clients
// expect for past-slot remediation.
func pastSlotAlternatives(req RecurringRequest, date string, patientGender models.Gender, duration int) []models.Alternative {
	alts := []models.Alternative{}
	therapists := AvailableTherapists(req.Therapists, patientGender, date, req.RequestedSlot, req.Bookings, req.EnforceGenderMatch, duration)
	rooms := AvailableRooms(req.Rooms, date, req.RequestedSlot, req.Bookings, duration)
	for range therapists {
		for _, r := range rooms {
			if len(alts) >= MaxDayAlternatives {
				return alts
			}
			alts = append(alts, models.Alternative{
				Slot:   req.RequestedSlot + "-" + r.ID,
				RoomID: r.ID,
			})
		}
	}
	return alts
}

// forwardAlternatives scans the rest of the day chronologically for the first
// five (slot, room) pairs where a gender-matched therapist and the room are
// simultaneously free.
func forwardAlternatives(req RecurringRequest, date string, patientGender models.Gender, duration int) []models.Alternative {
	later := SlotsAfter(GenerateDaySlots(req.Timings, date, duration), req.RequestedSlot)
	scan := newSlotRoomScan(later, req.Rooms, func(slot string, room models.Room) bool {
		if slotElapsed(date, slot, req.Now) {
			return false
		}
		if !IsRoomAvailable(room, date, slot, req.Bookings, duration) {
			return false
		}
		return len(AvailableTherapists(req.Therapists, patientGender, date, slot, req.Bookings, req.EnforceGenderMatch, duration)) > 0
	})
	return scan.Take(MaxDayAlternatives)
}

// sameSlotRoomAlternatives lists other rooms free at the requested slot.
func sameSlotRoomAlternatives(req RecurringRequest, date string, duration int) []models.Alternative {
	alts := []models.Alternative{}
	for _, r := range req.Rooms {
		if r.ID == req.SelectedRoom {
			continue
		}
		if len(alts) >= MaxDayAlternatives {
			break
		}
		if IsRoomAvailable(r, date, req.RequestedSlot, req.Bookings, duration) {
			alts = append(alts, models.Alternative{Slot: req.RequestedSlot, RoomID: r.ID})
		}
	}
	return alts
}

func selectedRoomFree(req RecurringRequest, date string, duration int) bool {
	for _, r := range req.Rooms {
		if r.ID == req.SelectedRoom {
			return IsRoomAvailable(r, date, req.RequestedSlot, req.Bookings, duration)
		}
	}
	return false
}

func findPatient(patients []models.Patient, id string) (models.Patient, bool) {
	for _, p := range patients {
		if p.ID == id {
			return p, true
		}
	}
	return models.Patient{}, false
}

// slotElapsed reports whether the slot's start on date is at or before now.
func slotElapsed(date, slot string, now time.Time) bool {
	m, err := utils.ParseClock(slot)
	if err != nil {
		return false
	}
	at, err := utils.CombineDateClock(date, m, now.Location())
	if err != nil {
		return false
	}
	return !at.After(now)
}
