package models

// Gender values used by the gender-match policy. An empty value means unknown,
// which disables the policy for that request.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = ""
)

// Therapist is a bookable staff resource. Availability is a whitelist of slot
// start times ("HH:mm") per date ("YYYY-MM-DD"); a missing date key means the
// therapist is unavailable that day. A nil map means no static schedule is
// configured and the therapist is treated as always free.
type Therapist struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Gender       Gender              `json:"gender"`
	Availability map[string][]string `json:"availability,omitempty"`
}

// Room is a bookable treatment room. Rooms without an explicit availability
// whitelist are available for every generated slot unless booked.
type Room struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Availability map[string][]string `json:"availability,omitempty"`
}

// Patient identifies the client side of a booking.
type Patient struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Gender Gender `json:"gender"`
}
