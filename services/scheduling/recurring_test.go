package scheduling

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"clinicflow/models"
)

func recurringFixture() RecurringRequest {
	return RecurringRequest{
		StartDate:     "2099-05-25",
		Days:          1,
		RequestedSlot: "09:00",
		SelectedRoom:  "r1",
		PatientID:     "p1",
		Therapists: []models.Therapist{
			{ID: "t1", Gender: models.GenderMale},
			{ID: "t2", Gender: models.GenderFemale},
		},
		Rooms:    []models.Room{{ID: "r1"}, {ID: "r2"}},
		Patients: []models.Patient{{ID: "p1", Gender: models.GenderMale}},
		Timings:  allWeek(models.DayTimings{IsOpen: true, Start: "09:00", End: "12:00", Status: models.DayWorking}),
		Now:      beforeOpening("2099-05-25"),
	}
}

func TestRecurringSlotAlternativesValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *RecurringRequest)
		wantErr error
	}{
		{"bad date", func(r *RecurringRequest) { r.StartDate = "25-05-2099" }, ErrInvalidDate},
		{"zero days", func(r *RecurringRequest) { r.Days = 0 }, ErrInvalidDays},
		{"negative days", func(r *RecurringRequest) { r.Days = -3 }, ErrInvalidDays},
		{"bad slot", func(r *RecurringRequest) { r.RequestedSlot = "junk" }, ErrInvalidSlot},
		{"zero now", func(r *RecurringRequest) { r.Now = time.Time{} }, ErrMissingNow},
		{"unknown patient", func(r *RecurringRequest) { r.PatientID = "ghost" }, ErrUnknownPatient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := recurringFixture()
			tt.mutate(&req)
			_, err := RecurringSlotAlternatives(req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecurringSlotAlternativesAllDaysFree(t *testing.T) {
	req := recurringFixture()
	req.Days = 3
	results, err := RecurringSlotAlternatives(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 day results, got %d", len(results))
	}
	wantDates := []string{"2099-05-25", "2099-05-26", "2099-05-27"}
	for i, day := range results {
		if day.Date != wantDates[i] {
			t.Errorf("day %d date = %q, want %q", i, day.Date, wantDates[i])
		}
		if !day.Available {
			t.Errorf("day %s unavailable: %q", day.Date, day.Reason)
		}
		if day.Reason != "" || len(day.Alternatives) != 0 {
			t.Errorf("available day %s carries reason %q alternatives %v", day.Date, day.Reason, day.Alternatives)
		}
	}
}

func TestRecurringSlotAlternativesPastSlot(t *testing.T) {
	req := recurringFixture()
	req.StartDate = "2020-01-06"
	req.Therapists = req.Therapists[:1] // single therapist, clean cross-product
	d, _ := time.Parse("2006-01-02", req.StartDate)
	req.Now = d.Add(12 * time.Hour)

	results, err := RecurringSlotAlternatives(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	day := results[0]
	if day.Available {
		t.Fatal("past slot reported available")
	}
	if day.Reason != ReasonPastSlot {
		t.Errorf("reason = %q, want %q", day.Reason, ReasonPastSlot)
	}
	want := []models.Alternative{
		{Slot: "09:00-r1", RoomID: "r1"},
		{Slot: "09:00-r2", RoomID: "r2"},
	}
	if !reflect.DeepEqual(day.Alternatives, want) {
		t.Errorf("alternatives = %v, want %v", day.Alternatives, want)
	}
}

func TestRecurringSlotAlternativesPastSlotCap(t *testing.T) {
	req := recurringFixture()
	req.StartDate = "2020-01-06"
	req.EnforceGenderMatch = false
	req.Therapists = []models.Therapist{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}}
	d, _ := time.Parse("2006-01-02", req.StartDate)
	req.Now = d.Add(12 * time.Hour)

	results, err := RecurringSlotAlternatives(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(results[0].Alternatives); got != MaxDayAlternatives {
		t.Errorf("alternatives = %d, want capped at %d", got, MaxDayAlternatives)
	}
}

func TestRecurringSlotAlternativesPatientBusy(t *testing.T) {
	req := recurringFixture()
	req.Bookings = []models.Booking{
		{ID: "b1", Date: "2099-05-25", Slot: "09:00", Duration: 60, RoomID: "r2", TherapistIDs: []string{"t9"}, ClientID: "p1"},
	}
	results, err := RecurringSlotAlternatives(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	day := results[0]
	if day.Available {
		t.Fatal("patient conflict reported available")
	}
	if day.Reason != ReasonPatientBusy {
		t.Errorf("reason = %q, want %q", day.Reason, ReasonPatientBusy)
	}
	want := []models.Alternative{
		{Slot: "10:00", RoomID: "r1"},
		{Slot: "10:00", RoomID: "r2"},
		{Slot: "11:00", RoomID: "r1"},
		{Slot: "11:00", RoomID: "r2"},
	}
	if !reflect.DeepEqual(day.Alternatives, want) {
		t.Errorf("alternatives = %v, want %v", day.Alternatives, want)
	}
}

func TestRecurringSlotAlternativesTherapistsBusy(t *testing.T) {
	req := recurringFixture()
	req.Bookings = []models.Booking{
		{ID: "b1", Date: "2099-05-25", Slot: "09:00", Duration: 60, RoomID: "r2", TherapistIDs: []string{"t1", "t2"}, ClientID: "px"},
	}
	results, err := RecurringSlotAlternatives(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	day := results[0]
	if day.Available {
		t.Fatal("fully committed therapists reported available")
	}
	if day.Reason != ReasonTherapistsBusy {
		t.Errorf("reason = %q, want %q", day.Reason, ReasonTherapistsBusy)
	}
	if len(day.Alternatives) != 0 {
		t.Errorf("therapist-stage failure must not offer alternatives, got %v", day.Alternatives)
	}
}

func TestRecurringSlotAlternativesRoomUnavailable(t *testing.T) {
	req := recurringFixture()
	req.Bookings = []models.Booking{
		{ID: "b1", Date: "2099-05-25", Slot: "09:00", Duration: 60, RoomID: "r1", TherapistIDs: []string{"t9"}, ClientID: "px"},
	}
	results, err := RecurringSlotAlternatives(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	day := results[0]
	if day.Available {
		t.Fatal("booked room reported available")
	}
	if day.Reason != ReasonRoomUnavailable {
		t.Errorf("reason = %q, want %q", day.Reason, ReasonRoomUnavailable)
	}
	want := []models.Alternative{{Slot: "09:00", RoomID: "r2"}}
	if !reflect.DeepEqual(day.Alternatives, want) {
		t.Errorf("alternatives = %v, want %v", day.Alternatives, want)
	}
}

func TestRecurringSlotAlternativesGenderEnforcement(t *testing.T) {
	// The only male therapist is committed elsewhere; with enforcement on, a
	// male patient's day must fail at the therapist stage.
	req := recurringFixture()
	req.EnforceGenderMatch = true
	req.Bookings = []models.Booking{
		{ID: "b1", Date: "2099-05-25", Slot: "09:00", Duration: 60, RoomID: "r2", TherapistIDs: []string{"t1"}, ClientID: "px"},
	}
	results, err := RecurringSlotAlternatives(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Available {
		t.Fatal("expected unavailable with enforcement on")
	}
	if results[0].Reason != ReasonTherapistsBusy {
		t.Errorf("reason = %q, want %q", results[0].Reason, ReasonTherapistsBusy)
	}

	req.EnforceGenderMatch = false
	results, err = RecurringSlotAlternatives(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !results[0].Available {
		t.Errorf("without enforcement the female therapist serves: %+v", results[0])
	}
}

func TestRecurringSlotAlternativesMixedDays(t *testing.T) {
	req := recurringFixture()
	req.Days = 2
	req.Bookings = []models.Booking{
		{ID: "b1", Date: "2099-05-26", Slot: "09:00", Duration: 60, RoomID: "r1", TherapistIDs: []string{"t9"}, ClientID: "px"},
	}
	results, err := RecurringSlotAlternatives(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !results[0].Available {
		t.Errorf("day one should be free: %+v", results[0])
	}
	if results[1].Available || results[1].Reason != ReasonRoomUnavailable {
		t.Errorf("day two should fail on the room: %+v", results[1])
	}
}

func TestRecurringSlotAlternativesEmptyCatalog(t *testing.T) {
	req := recurringFixture()
	req.Therapists = nil
	results, err := RecurringSlotAlternatives(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Available || results[0].Reason != ReasonTherapistsBusy {
		t.Errorf("empty catalog day = %+v, want therapists busy", results[0])
	}
}
