package models

// Alternative is a candidate (time, room) pair offered when the requested
// slot/room/therapist combination is unavailable.
type Alternative struct {
	Slot   string `json:"slot"`
	RoomID string `json:"roomId"`
}

// DayResult is the outcome of evaluating one day of a recurring request.
// Unavailability is a first-class value, not an error: Reason carries one of
// the closed reason codes and Alternatives up to five ranked candidates.
type DayResult struct {
	Date         string        `json:"date"`
	Available    bool          `json:"available"`
	Reason       string        `json:"reason,omitempty"`
	Alternatives []Alternative `json:"alternatives"`
}

// AvailabilityResult is returned by the single-resource fallback helpers and
// the doctor booking helper. Alternatives are bare slot times.
type AvailabilityResult struct {
	Available    bool     `json:"available"`
	Reason       string   `json:"reason,omitempty"`
	Alternatives []string `json:"alternatives"`
}
