package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"clinicflow/config"
	"clinicflow/models"
	"clinicflow/services/scheduling"
)

func defaultSlotDuration(requested int) int {
	if requested > 0 {
		return requested
	}
	if config.AppConfig.SlotDurationMinutes > 0 {
		return config.AppConfig.SlotDurationMinutes
	}
	return models.DefaultDuration
}

// GetDaySlots returns the bookable slot grid for a date. Break windows are
// excluded; a closed day yields an empty list.
func (h *ScheduleHandler) GetDaySlots(c *gin.Context) {
	snap, ok := h.loadSnapshot(c, c.Param("sessionID"))
	if !ok {
		return
	}

	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing date, expected YYYY-MM-DD"})
		return
	}
	duration, _ := strconv.Atoi(c.Query("duration"))

	slots := h.Engine.DaySlots(snap.Timings, date, defaultSlotDuration(duration))
	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// matrixInput is the per-query part of a matrix request; the snapshot comes
// from the session (or rides along in the stateless variant).
type matrixInput struct {
	Date               string `json:"date" binding:"required"`
	SlotDuration       int    `json:"slotDuration"`
	EnforceGenderMatch bool   `json:"enforceGenderMatch"`
	PatientID          string `json:"patientId"`
}

func (h *ScheduleHandler) buildMatrix(c *gin.Context, snap models.ScheduleSnapshot, input matrixInput) {
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	patientGender := models.GenderUnknown
	if input.PatientID != "" {
		patient, ok := snap.PatientByID(input.PatientID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found in snapshot"})
			return
		}
		patientGender = patient.Gender
	}

	matrix := h.Engine.ScheduleMatrix(scheduling.MatrixParams{
		Date:               input.Date,
		Timings:            snap.Timings,
		Rooms:              snap.Rooms,
		Therapists:         snap.Therapists,
		Patients:           snap.Patients,
		Bookings:           snap.Bookings,
		SlotDuration:       defaultSlotDuration(input.SlotDuration),
		EnforceGenderMatch: input.EnforceGenderMatch,
		PatientGender:      patientGender,
		Now:                time.Now(),
	})
	c.JSON(http.StatusOK, gin.H{"date": input.Date, "matrix": matrix})
}

// GetScheduleMatrix builds the per-room timeline matrix against the session
// snapshot.
func (h *ScheduleHandler) GetScheduleMatrix(c *gin.Context) {
	snap, ok := h.loadSnapshot(c, c.Param("sessionID"))
	if !ok {
		return
	}
	var input matrixInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.buildMatrix(c, snap, input)
}

// GetScheduleMatrixStateless is the sessionless variant: the snapshot rides
// along in the request body.
func (h *ScheduleHandler) GetScheduleMatrixStateless(c *gin.Context) {
	var input struct {
		Snapshot models.ScheduleSnapshot `json:"snapshot"`
		matrixInput
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	h.buildMatrix(c, input.Snapshot, input.matrixInput)
}

// GetRoomTimeline builds a single room's day timeline.
func (h *ScheduleHandler) GetRoomTimeline(c *gin.Context) {
	snap, ok := h.loadSnapshot(c, c.Param("sessionID"))
	if !ok {
		return
	}
	var input struct {
		matrixInput
		RoomID string `json:"roomId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	var room models.Room
	found := false
	for _, r := range snap.Rooms {
		if r.ID == input.RoomID {
			room, found = r, true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found in snapshot"})
		return
	}

	patientGender := models.GenderUnknown
	if input.PatientID != "" {
		if patient, ok := snap.PatientByID(input.PatientID); ok {
			patientGender = patient.Gender
		}
	}

	blocks := h.Engine.RoomTimeline(scheduling.TimelineParams{
		Room:               room,
		Date:               input.Date,
		Timings:            snap.Timings,
		SlotDuration:       defaultSlotDuration(input.SlotDuration),
		Bookings:           snap.Bookings,
		Therapists:         snap.Therapists,
		Patients:           snap.Patients,
		EnforceGenderMatch: input.EnforceGenderMatch,
		PatientGender:      patientGender,
		Now:                time.Now(),
	})
	if blocks == nil {
		blocks = []models.TimelineBlock{}
	}
	c.JSON(http.StatusOK, gin.H{"date": input.Date, "roomId": room.ID, "timeline": blocks})
}
