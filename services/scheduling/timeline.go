package scheduling

import (
	"sort"
	"time"

	"clinicflow/models"
	"clinicflow/utils"
)

// TimelineParams bundles the inputs for one room's day timeline.
type TimelineParams struct {
	Room         models.Room
	Date         string
	Timings      models.ClinicTimings
	SlotDuration int
	// Bookings is the global snapshot across all rooms; the cross-room
	// therapist exclusion depends on seeing every room's commitments.
	Bookings           []models.Booking
	Therapists         []models.Therapist
	Patients           []models.Patient
	EnforceGenderMatch bool
	PatientGender      models.Gender
	Now                time.Time
}

type timedBooking struct {
	start   int
	booking models.Booking
}

// BuildRoomTimeline produces a single coherent sequence of non-overlapping
// time blocks for one room and date, merging the fixed slot grid with
// variable-duration bookings and the break window. A 45-minute booking at
// 09:00 on a 30-minute grid yields a next block starting at 09:45, not 09:30.
//
// Past-dated blocks are still generated so callers can render history; they
// are simply not selectable. Calling twice with the same snapshot yields
// identical output.
func BuildRoomTimeline(p TimelineParams) []models.TimelineBlock {
	dt, ok := p.Timings.ForDate(p.Date)
	if !ok || dt.Closed() {
		return nil
	}

	open, err := utils.ParseClock(dt.Start)
	if err != nil {
		return nil
	}
	closing, err := utils.ParseClock(dt.End)
	if err != nil || open >= closing {
		return nil
	}
	slotDur := p.SlotDuration
	if slotDur <= 0 {
		slotDur = models.DefaultDuration
	}

	breakStart, breakEnd := -1, -1
	if dt.HasBreak() {
		bs, bsErr := utils.ParseClock(dt.BreakStart)
		be, beErr := utils.ParseClock(dt.BreakEnd)
		if bsErr == nil && beErr == nil && bs < be {
			breakStart, breakEnd = bs, be
		}
	}

	roomBookings := collectRoomBookings(p.Room.ID, p.Date, p.Bookings)

	cursor := open
	// Defensive clamp: start at the earliest booking when it precedes opening,
	// so an out-of-hours booking still shows on the grid.
	if len(roomBookings) > 0 && roomBookings[0].start < cursor {
		cursor = roomBookings[0].start
	}

	var blocks []models.TimelineBlock
	for cursor < closing {
		// Inside the break window: one break block, then jump to its end.
		if breakStart >= 0 && cursor >= breakStart && cursor < breakEnd {
			blocks = append(blocks, models.TimelineBlock{
				Start:   utils.FormatClock(cursor),
				End:     utils.FormatClock(breakEnd),
				Status:  models.BlockBreak,
				IsBreak: true,
			})
			cursor = breakEnd
			continue
		}

		// A booking starting exactly at the cursor displaces the grid for its
		// whole duration.
		if tb, ok := bookingStartingAt(roomBookings, cursor); ok {
			end := tb.start + tb.booking.DurationMinutes()
			if end > closing {
				end = closing
			}
			blocks = append(blocks, models.TimelineBlock{
				Start:   utils.FormatClock(cursor),
				End:     utils.FormatClock(end),
				Status:  models.BlockScheduled,
				Booking: enrichBooking(tb.booking, p.Patients),
			})
			cursor = end
			continue
		}

		// Free block: runs until the next event, whichever comes first of the
		// next booking's start, the break start, the grid boundary and closing.
		next := cursor + slotDur
		if breakStart >= 0 && cursor < breakStart && breakStart < next {
			next = breakStart
		}
		if nb, ok := nextBookingAfter(roomBookings, cursor); ok && nb.start < next {
			next = nb.start
		}
		if next > closing {
			next = closing
		}
		if next <= cursor {
			break
		}

		blockSlot := utils.FormatClock(cursor)
		therapists := AvailableTherapists(p.Therapists, p.PatientGender, p.Date, blockSlot, p.Bookings, p.EnforceGenderMatch, next-cursor)
		status := models.BlockAvailable
		if len(therapists) == 0 {
			status = models.BlockTherapistUnavailable
		}
		blocks = append(blocks, models.TimelineBlock{
			Start:               blockSlot,
			End:                 utils.FormatClock(next),
			Status:              status,
			TherapistAvailable:  len(therapists) > 0,
			AvailableTherapists: therapists,
			Selectable:          len(therapists) > 0 && !blockElapsed(p.Date, next, p.Now),
		})
		cursor = next
	}

	return blocks
}

func collectRoomBookings(roomID, date string, bookings []models.Booking) []timedBooking {
	var out []timedBooking
	for _, b := range bookings {
		if b.RoomID != roomID || b.Date != date {
			continue
		}
		start, err := utils.ParseClock(b.Slot)
		if err != nil {
			continue
		}
		out = append(out, timedBooking{start: start, booking: b})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].start < out[j].start })
	return out
}

func bookingStartingAt(bookings []timedBooking, minute int) (timedBooking, bool) {
	for _, tb := range bookings {
		if tb.start == minute {
			return tb, true
		}
	}
	return timedBooking{}, false
}

func nextBookingAfter(bookings []timedBooking, minute int) (timedBooking, bool) {
	for _, tb := range bookings {
		if tb.start > minute {
			return tb, true
		}
	}
	return timedBooking{}, false
}

func enrichBooking(b models.Booking, patients []models.Patient) *models.BookingDetail {
	detail := &models.BookingDetail{Booking: b}
	for _, pt := range patients {
		if pt.ID == b.ClientID {
			detail.PatientName = pt.Name
			detail.PatientPhone = pt.Phone
			break
		}
	}
	return detail
}

// blockElapsed reports whether the block ending at endMin on date is already
// in the past relative to now.
func blockElapsed(date string, endMin int, now time.Time) bool {
	if now.IsZero() {
		return false
	}
	end, err := utils.CombineDateClock(date, endMin, now.Location())
	if err != nil {
		return false
	}
	return !end.After(now)
}
