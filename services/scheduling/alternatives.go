package scheduling

import (
	"sort"
	"time"

	"clinicflow/models"
)

// Alternative caps. Recurring day results carry at most five candidates; the
// single-resource fallback helpers return at most ten slot times.
const (
	MaxDayAlternatives  = 5
	MaxSlotAlternatives = 10
)

// slotRoomScan lazily yields (slot, room) candidates in priority order: slot
// times chronologically, rooms in catalog order within a slot. The accept
// predicate decides whether a pair qualifies; the caller truncates by taking
// only as many candidates as it needs.
type slotRoomScan struct {
	slots  []string
	rooms  []models.Room
	accept func(slot string, room models.Room) bool
	si, ri int
}

func newSlotRoomScan(slots []string, rooms []models.Room, accept func(slot string, room models.Room) bool) *slotRoomScan {
	return &slotRoomScan{slots: slots, rooms: rooms, accept: accept}
}

// Next returns the next qualifying (slot, room) pair, or false when exhausted.
func (s *slotRoomScan) Next() (models.Alternative, bool) {
	for s.si < len(s.slots) {
		for s.ri < len(s.rooms) {
			slot, room := s.slots[s.si], s.rooms[s.ri]
			s.ri++
			if s.accept(slot, room) {
				return models.Alternative{Slot: slot, RoomID: room.ID}, true
			}
		}
		s.si++
		s.ri = 0
	}
	return models.Alternative{}, false
}

// Take drains up to n candidates from the scan.
func (s *slotRoomScan) Take(n int) []models.Alternative {
	out := []models.Alternative{}
	for len(out) < n {
		alt, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, alt)
	}
	return out
}

// TherapistCheckRequest is the input for the standalone therapist fallback
// used by non-recurring booking flows.
type TherapistCheckRequest struct {
	SelectedTherapists []string
	Therapists         []models.Therapist
	PatientGender      models.Gender
	EnforceGenderMatch bool
	Date               string
	Slot               string
	Bookings           []models.Booking
	Timings            models.ClinicTimings
	SlotDuration       int
	Now                time.Time
}

// CheckTherapistsAvailability tries the caller's selected therapists first,
// then any gender-matched therapist free at the slot. When none qualifies it
// scans forward and returns up to ten later slot times where at least one
// therapist is free.
func CheckTherapistsAvailability(req TherapistCheckRequest) models.AvailabilityResult {
	pool := FilterTherapistsByGender(req.Therapists, req.PatientGender, req.EnforceGenderMatch)

	if len(req.SelectedTherapists) > 0 {
		for _, t := range pool {
			if containsSlot(req.SelectedTherapists, t.ID) && IsTherapistAvailable(t, req.Date, req.Slot, req.Bookings, req.SlotDuration) {
				return models.AvailabilityResult{Available: true, Alternatives: []string{}}
			}
		}
	}
	for _, t := range pool {
		if IsTherapistAvailable(t, req.Date, req.Slot, req.Bookings, req.SlotDuration) {
			return models.AvailabilityResult{Available: true, Alternatives: []string{}}
		}
	}

	var alternatives []string
	for _, slot := range SlotsAfter(GenerateDaySlots(req.Timings, req.Date, req.SlotDuration), req.Slot) {
		if len(alternatives) >= MaxSlotAlternatives {
			break
		}
		if slotElapsed(req.Date, slot, req.Now) {
			continue
		}
		for _, t := range pool {
			if IsTherapistAvailable(t, req.Date, slot, req.Bookings, req.SlotDuration) {
				alternatives = append(alternatives, slot)
				break
			}
		}
	}
	if alternatives == nil {
		alternatives = []string{}
	}
	return models.AvailabilityResult{Available: false, Reason: ReasonTherapistsBusy, Alternatives: alternatives}
}

// RoomCheckRequest is the input for the standalone room fallback.
type RoomCheckRequest struct {
	SelectedRoom string
	Rooms        []models.Room
	Date         string
	Slot         string
	Bookings     []models.Booking
	Timings      models.ClinicTimings
	SlotDuration int
	Now          time.Time
}

// CheckRoomsAvailability mirrors CheckTherapistsAvailability for rooms.
func CheckRoomsAvailability(req RoomCheckRequest) models.AvailabilityResult {
	if req.SelectedRoom != "" {
		for _, r := range req.Rooms {
			if r.ID == req.SelectedRoom && IsRoomAvailable(r, req.Date, req.Slot, req.Bookings, req.SlotDuration) {
				return models.AvailabilityResult{Available: true, Alternatives: []string{}}
			}
		}
	}
	for _, r := range req.Rooms {
		if IsRoomAvailable(r, req.Date, req.Slot, req.Bookings, req.SlotDuration) {
			return models.AvailabilityResult{Available: true, Alternatives: []string{}}
		}
	}

	var alternatives []string
	for _, slot := range SlotsAfter(GenerateDaySlots(req.Timings, req.Date, req.SlotDuration), req.Slot) {
		if len(alternatives) >= MaxSlotAlternatives {
			break
		}
		if slotElapsed(req.Date, slot, req.Now) {
			continue
		}
		for _, r := range req.Rooms {
			if IsRoomAvailable(r, req.Date, slot, req.Bookings, req.SlotDuration) {
				alternatives = append(alternatives, slot)
				break
			}
		}
	}
	if alternatives == nil {
		alternatives = []string{}
	}
	return models.AvailabilityResult{Available: false, Reason: ReasonRoomUnavailable, Alternatives: alternatives}
}

// GetTopCommonSlots returns the sorted intersection of two slot-time lists,
// truncated to topN. Used to find times that work for two independently
// constrained resources.
func GetTopCommonSlots(slotsA, slotsB []string, topN int) []string {
	seen := make(map[string]bool, len(slotsA))
	for _, s := range slotsA {
		seen[s] = true
	}
	var common []string
	for _, s := range slotsB {
		if seen[s] {
			common = append(common, s)
			seen[s] = false
		}
	}
	sort.Strings(common)
	if topN > 0 && len(common) > topN {
		common = common[:topN]
	}
	return common
}
