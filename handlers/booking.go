package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinicflow/models"
	"clinicflow/services/scheduling"
)

// CanBook runs the booking rule gate against the session snapshot. The static
// whitelists come from the snapshot's room and therapist records.
func (h *ScheduleHandler) CanBook(c *gin.Context) {
	snap, ok := h.loadSnapshot(c, c.Param("sessionID"))
	if !ok {
		return
	}
	var input struct {
		TherapistIDs []string `json:"therapistIds"`
		RoomID       string   `json:"roomId" binding:"required"`
		Date         string   `json:"date" binding:"required"`
		Slot         string   `json:"slot" binding:"required"`
		Duration     int      `json:"duration"`
		PatientID    string   `json:"patientId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	var roomAvailability map[string][]string
	for _, r := range snap.Rooms {
		if r.ID == input.RoomID {
			roomAvailability = r.Availability
			break
		}
	}
	therapistAvailability := make(map[string]map[string][]string)
	for _, t := range snap.Therapists {
		if t.Availability != nil {
			therapistAvailability[t.ID] = t.Availability
		}
	}

	allowed := h.Engine.CanBook(scheduling.BookingRuleRequest{
		TherapistIDs:          input.TherapistIDs,
		RoomID:                input.RoomID,
		Date:                  input.Date,
		Slot:                  input.Slot,
		Duration:              input.Duration,
		PatientID:             input.PatientID,
		Bookings:              snap.Bookings,
		RoomAvailability:      roomAvailability,
		TherapistAvailability: therapistAvailability,
	})
	c.JSON(http.StatusOK, gin.H{"canBook": allowed})
}

// recurringInput is the per-query part of a recurring series request.
type recurringInput struct {
	StartDate          string   `json:"startDate" binding:"required"`
	Days               int      `json:"days" binding:"required"`
	Slot               string   `json:"slot" binding:"required"`
	TherapistIDs       []string `json:"therapistIds"`
	RoomID             string   `json:"roomId"`
	PatientID          string   `json:"patientId"`
	EnforceGenderMatch bool     `json:"enforceGenderMatch"`
	SlotDuration       int      `json:"slotDuration"`
}

func (h *ScheduleHandler) resolveRecurring(c *gin.Context, snap models.ScheduleSnapshot, input recurringInput) {
	results, err := h.Engine.RecurringAlternatives(scheduling.RecurringRequest{
		StartDate:          input.StartDate,
		Days:               input.Days,
		RequestedSlot:      input.Slot,
		SelectedTherapists: input.TherapistIDs,
		SelectedRoom:       input.RoomID,
		PatientID:          input.PatientID,
		Therapists:         snap.Therapists,
		Rooms:              snap.Rooms,
		Patients:           snap.Patients,
		Bookings:           snap.Bookings,
		Timings:            snap.Timings,
		Now:                time.Now(),
		EnforceGenderMatch: input.EnforceGenderMatch,
		SlotDuration:       defaultSlotDuration(input.SlotDuration),
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, scheduling.ErrUnknownPatient) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"startDate": input.StartDate, "days": input.Days, "results": results})
}

// GetRecurringAlternatives evaluates an N-day series against the session
// snapshot.
func (h *ScheduleHandler) GetRecurringAlternatives(c *gin.Context) {
	snap, ok := h.loadSnapshot(c, c.Param("sessionID"))
	if !ok {
		return
	}
	var input recurringInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.resolveRecurring(c, snap, input)
}

// GetRecurringAlternativesStateless is the sessionless variant.
func (h *ScheduleHandler) GetRecurringAlternativesStateless(c *gin.Context) {
	var input struct {
		Snapshot models.ScheduleSnapshot `json:"snapshot"`
		recurringInput
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.resolveRecurring(c, input.Snapshot, input.recurringInput)
}

// CheckDoctorBooking validates a fixed-duration consult slot for a doctor.
func (h *ScheduleHandler) CheckDoctorBooking(c *gin.Context) {
	snap, ok := h.loadSnapshot(c, c.Param("sessionID"))
	if !ok {
		return
	}
	var input struct {
		DoctorID     string              `json:"doctorId" binding:"required"`
		Date         string              `json:"date" binding:"required"`
		Slot         string              `json:"slot" binding:"required"`
		PatientID    string              `json:"patientId"`
		Availability map[string][]string `json:"availability"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result := h.Engine.DoctorBooking(scheduling.DoctorBookingRequest{
		DoctorID:           input.DoctorID,
		Date:               input.Date,
		Slot:               input.Slot,
		PatientID:          input.PatientID,
		Appointments:       snap.Bookings,
		DoctorAvailability: input.Availability,
		Now:                time.Now(),
	})
	if !result.Available {
		h.Logger.Debug("doctor slot rejected",
			zap.String("doctorId", input.DoctorID),
			zap.String("date", input.Date),
			zap.String("slot", input.Slot),
			zap.String("reason", result.Reason))
	}
	c.JSON(http.StatusOK, result)
}

// GetDoctorSlots lists the doctor's next free consult slots for a date.
func (h *ScheduleHandler) GetDoctorSlots(c *gin.Context) {
	snap, ok := h.loadSnapshot(c, c.Param("sessionID"))
	if !ok {
		return
	}
	doctorID := c.Query("doctorId")
	date := c.Query("date")
	if doctorID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doctorId and date are required"})
		return
	}
	max, _ := strconv.Atoi(c.Query("max"))

	slots := h.Engine.DoctorSlots(scheduling.DoctorBookingRequest{
		DoctorID:     doctorID,
		Date:         date,
		Slot:         c.Query("afterSlot"),
		Appointments: snap.Bookings,
		Now:          time.Now(),
	}, max)
	c.JSON(http.StatusOK, gin.H{"doctorId": doctorID, "date": date, "slots": slots})
}
