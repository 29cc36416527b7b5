package scheduling

import (
	"clinicflow/models"
	"clinicflow/utils"
)

// GenerateDaySlots enumerates candidate slot start times ("HH:mm") for one
// date under the clinic's timings, advancing by slotDuration minutes from the
// opening time. Any slot that would fall fully or partially inside the break
// window is skipped by jumping the cursor straight to the break's end. Returns
// nil when the day is closed or the window is empty.
func GenerateDaySlots(timings models.ClinicTimings, date string, slotDuration int) []string {
	dt, ok := timings.ForDate(date)
	if !ok || dt.Closed() {
		return nil
	}

	start, err := utils.ParseClock(dt.Start)
	if err != nil {
		return nil
	}
	end, err := utils.ParseClock(dt.End)
	if err != nil || start >= end {
		return nil
	}
	if slotDuration <= 0 {
		slotDuration = models.DefaultDuration
	}

	breakStart, breakEnd := -1, -1
	if dt.HasBreak() {
		bs, bsErr := utils.ParseClock(dt.BreakStart)
		be, beErr := utils.ParseClock(dt.BreakEnd)
		if bsErr == nil && beErr == nil && bs < be {
			breakStart, breakEnd = bs, be
		}
	}

	var slots []string
	for cursor := start; cursor < end; {
		if breakStart >= 0 && cursor < breakEnd && breakStart < cursor+slotDuration {
			cursor = breakEnd
			continue
		}
		slots = append(slots, utils.FormatClock(cursor))
		cursor += slotDuration
	}
	return slots
}

// SlotsAfter returns the tail of slots strictly after the given start time.
// Malformed entries are dropped.
func SlotsAfter(slots []string, after string) []string {
	cut, err := utils.ParseClock(after)
	if err != nil {
		return slots
	}
	var out []string
	for _, s := range slots {
		m, err := utils.ParseClock(s)
		if err != nil {
			continue
		}
		if m > cut {
			out = append(out, s)
		}
	}
	return out
}
