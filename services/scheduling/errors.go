package scheduling

import "errors"

// Validation errors returned by the recurring resolver. Normal unavailability
// is never an error; it is reported per day inside DayResult.
var (
	ErrInvalidDate    = errors.New("invalid start date, expected YYYY-MM-DD")
	ErrInvalidSlot    = errors.New("invalid slot time, expected HH:mm")
	ErrInvalidDays    = errors.New("day count must be positive")
	ErrMissingNow     = errors.New("reference time is required")
	ErrUnknownPatient = errors.New("patient record not found")
)

// Closed reason taxonomy surfaced to booking clients. These strings are part
// of the engine's contract and must not be reworded.
const (
	ReasonPastSlot        = "Time Slot is in the past"
	ReasonTherapistsBusy  = "Therapists are busy"
	ReasonRoomUnavailable = "Selected Room is not available"
	ReasonPatientBusy     = "Patient already has an appointment"
	ReasonDoctorBusy      = "Doctor is busy"
)
