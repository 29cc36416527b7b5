package scheduling

import (
	"time"

	"clinicflow/models"
)

// MatrixParams bundles the inputs for a full per-room schedule matrix.
type MatrixParams struct {
	Date               string
	Timings            models.ClinicTimings
	Rooms              []models.Room
	Therapists         []models.Therapist
	Patients           []models.Patient
	Bookings           []models.Booking
	SlotDuration       int
	EnforceGenderMatch bool
	PatientGender      models.Gender
	Now                time.Time
}

// BuildScheduleMatrix runs the room timeline builder independently for every
// room and collects the results. There is no cross-room coupling here: the
// timeline builder already computes therapist exclusion against the global
// booking list.
func BuildScheduleMatrix(p MatrixParams) []models.RoomMatrix {
	matrix := make([]models.RoomMatrix, 0, len(p.Rooms))
	for _, room := range p.Rooms {
		matrix = append(matrix, models.RoomMatrix{
			RoomID:   room.ID,
			RoomName: room.Name,
			Slots: BuildRoomTimeline(TimelineParams{
				Room:               room,
				Date:               p.Date,
				Timings:            p.Timings,
				SlotDuration:       p.SlotDuration,
				Bookings:           p.Bookings,
				Therapists:         p.Therapists,
				Patients:           p.Patients,
				EnforceGenderMatch: p.EnforceGenderMatch,
				PatientGender:      p.PatientGender,
				Now:                p.Now,
			}),
		})
	}
	return matrix
}
