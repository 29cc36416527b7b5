package scheduling

import (
	"go.uber.org/zap"

	"clinicflow/models"
	"clinicflow/utils"
)

// Engine is the scheduling engine surface consumed by the HTTP layer and by
// in-process callers. Every method is a pure function of its inputs; the
// engine holds no snapshot state of its own.
type Engine interface {
	DaySlots(timings models.ClinicTimings, date string, slotDuration int) []string
	RoomTimeline(params TimelineParams) []models.TimelineBlock
	ScheduleMatrix(params MatrixParams) []models.RoomMatrix
	CanBook(req BookingRuleRequest) bool
	TherapistsAvailability(req TherapistCheckRequest) models.AvailabilityResult
	RoomsAvailability(req RoomCheckRequest) models.AvailabilityResult
	RecurringAlternatives(req RecurringRequest) ([]models.DayResult, error)
	DoctorBooking(req DoctorBookingRequest) models.AvailabilityResult
	DoctorSlots(req DoctorBookingRequest, max int) []string
}

// DefaultEngine is the standard Engine implementation.
type DefaultEngine struct {
	Logger *zap.Logger
}

// NewDefaultEngine returns an engine wired to the shared logger.
func NewDefaultEngine() *DefaultEngine {
	return &DefaultEngine{Logger: utils.GetLogger()}
}

func (e *DefaultEngine) DaySlots(timings models.ClinicTimings, date string, slotDuration int) []string {
	return GenerateDaySlots(timings, date, slotDuration)
}

func (e *DefaultEngine) RoomTimeline(params TimelineParams) []models.TimelineBlock {
	return BuildRoomTimeline(params)
}

func (e *DefaultEngine) ScheduleMatrix(params MatrixParams) []models.RoomMatrix {
	return BuildScheduleMatrix(params)
}

func (e *DefaultEngine) CanBook(req BookingRuleRequest) bool {
	return CanBookAppointment(req)
}

func (e *DefaultEngine) TherapistsAvailability(req TherapistCheckRequest) models.AvailabilityResult {
	return CheckTherapistsAvailability(req)
}

func (e *DefaultEngine) RoomsAvailability(req RoomCheckRequest) models.AvailabilityResult {
	return CheckRoomsAvailability(req)
}

func (e *DefaultEngine) RecurringAlternatives(req RecurringRequest) ([]models.DayResult, error) {
	return RecurringSlotAlternatives(req)
}

func (e *DefaultEngine) DoctorBooking(req DoctorBookingRequest) models.AvailabilityResult {
	return CheckDoctorBooking(req)
}

// DoctorSlots lists upcoming free consult slots for the doctor named in req.
// The req.Slot field, when set, acts as the after-slot cutoff.
func (e *DefaultEngine) DoctorSlots(req DoctorBookingRequest, max int) []string {
	return GetNextAvailableDoctorSlots(req.DoctorID, req.Date, req.Appointments,
		req.DoctorAvailability, req.Now, max, req.Slot)
}
