package models

// ScheduleSnapshot is the complete input the engine consumes: resource
// catalogs, the clinic's working-hours configuration and the committed
// bookings as of one point in time. Callers own fetching and lifecycle; the
// engine reads the snapshot and derives results without mutating it.
type ScheduleSnapshot struct {
	Timings    ClinicTimings `json:"clinicTimings"`
	Therapists []Therapist   `json:"therapists"`
	Rooms      []Room        `json:"rooms"`
	Patients   []Patient     `json:"patients"`
	Bookings   []Booking     `json:"bookings"`
}

// PatientByID looks up a patient record in the snapshot catalog.
func (s ScheduleSnapshot) PatientByID(id string) (Patient, bool) {
	for _, p := range s.Patients {
		if p.ID == id {
			return p, true
		}
	}
	return Patient{}, false
}
