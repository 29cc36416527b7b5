package models

// DefaultDuration is the assumed booking length in minutes when none is recorded.
const DefaultDuration = 60

// Booking represents a committed appointment occupying a room, one or more
// therapists and a patient for [Slot, Slot+Duration) on Date. Bookings reach
// the engine as an immutable snapshot; the engine never mutates or stores them.
type Booking struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`               // "YYYY-MM-DD"
	Slot         string   `json:"slot"`               // "HH:mm" start time
	Duration     int      `json:"duration,omitempty"` // minutes; 0 falls back to DefaultDuration
	RoomID       string   `json:"roomId"`
	TherapistIDs []string `json:"therapistIds"`
	ClientID     string   `json:"clientId"`
}

// DurationMinutes returns the booking length, applying the default for
// bookings recorded without one.
func (b Booking) DurationMinutes() int {
	if b.Duration <= 0 {
		return DefaultDuration
	}
	return b.Duration
}

// HasTherapist reports whether the booking occupies the given therapist.
func (b Booking) HasTherapist(id string) bool {
	for _, tid := range b.TherapistIDs {
		if tid == id {
			return true
		}
	}
	return false
}
