package models

// Timeline block statuses.
const (
	BlockAvailable            = "available"
	BlockScheduled            = "scheduled"
	BlockBreak                = "break"
	BlockTherapistUnavailable = "therapistUnavailable"
)

// BookingDetail is a booking enriched with resolved patient contact details
// for display inside a timeline block.
type BookingDetail struct {
	Booking
	PatientName  string `json:"patientName,omitempty"`
	PatientPhone string `json:"patientPhone,omitempty"`
}

// TimelineBlock is one contiguous block in a room's day timeline. Blocks never
// overlap; a variable-length booking displaces the standard grid around it.
type TimelineBlock struct {
	Start               string         `json:"start"`
	End                 string         `json:"end"`
	Status              string         `json:"status"`
	IsBreak             bool           `json:"isBreak"`
	Booking             *BookingDetail `json:"booking"`
	TherapistAvailable  bool           `json:"therapistAvailable"`
	AvailableTherapists []Therapist    `json:"availableTherapists"`
	// Selectable is false for breaks, booked blocks and blocks whose end time
	// has already elapsed. Past blocks are still rendered.
	Selectable bool `json:"selectable"`
}

// RoomMatrix is one room's full timeline for a single date.
type RoomMatrix struct {
	RoomID   string          `json:"roomId"`
	RoomName string          `json:"roomName"`
	Slots    []TimelineBlock `json:"slots"`
}
