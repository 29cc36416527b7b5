package scheduling

import (
	"reflect"
	"testing"

	"clinicflow/models"
)

func TestIsTherapistAvailable(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", Date: "2099-05-25", Slot: "09:00", Duration: 60, RoomID: "r1", TherapistIDs: []string{"t1"}, ClientID: "p1"},
	}
	tests := []struct {
		name      string
		therapist models.Therapist
		date      string
		slot      string
		duration  int
		want      bool
	}{
		{"booked at slot", models.Therapist{ID: "t1"}, "2099-05-25", "09:00", 60, false},
		{"free at later slot", models.Therapist{ID: "t1"}, "2099-05-25", "10:00", 60, true},
		{"other therapist unaffected", models.Therapist{ID: "t2"}, "2099-05-25", "09:00", 60, true},
		{"other date unaffected", models.Therapist{ID: "t1"}, "2099-05-26", "09:00", 60, true},
		{"overlapping interval blocked", models.Therapist{ID: "t1"}, "2099-05-25", "09:30", 60, false},
		{"adjacent interval allowed", models.Therapist{ID: "t1"}, "2099-05-25", "10:00", 30, true},
		{
			"whitelist honored",
			models.Therapist{ID: "t2", Availability: map[string][]string{"2099-05-25": {"10:00"}}},
			"2099-05-25", "09:00", 60, false,
		},
		{
			"whitelist match passes",
			models.Therapist{ID: "t2", Availability: map[string][]string{"2099-05-25": {"10:00"}}},
			"2099-05-25", "10:00", 60, true,
		},
		{"malformed slot rejected", models.Therapist{ID: "t2"}, "2099-05-25", "junk", 60, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTherapistAvailable(tt.therapist, tt.date, tt.slot, bookings, tt.duration); got != tt.want {
				t.Errorf("IsTherapistAvailable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRoomAvailable(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", Date: "2099-05-25", Slot: "09:00", Duration: 45, RoomID: "r1", ClientID: "p1"},
	}
	tests := []struct {
		name string
		room models.Room
		slot string
		want bool
	}{
		{"booked at slot", models.Room{ID: "r1"}, "09:00", false},
		{"variable duration still blocks", models.Room{ID: "r1"}, "09:30", false},
		{"free after booking ends", models.Room{ID: "r1"}, "09:45", true},
		{"other room free", models.Room{ID: "r2"}, "09:00", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRoomAvailable(tt.room, "2099-05-25", tt.slot, bookings, 60); got != tt.want {
				t.Errorf("IsRoomAvailable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPatientAvailable(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", Date: "2099-05-25", Slot: "09:00", Duration: 60, RoomID: "r1", TherapistIDs: []string{"t1"}, ClientID: "p1"},
	}
	if IsPatientAvailable("p1", "2099-05-25", "09:00", bookings, 60) {
		t.Error("patient with conflicting booking reported available")
	}
	if IsPatientAvailable("p1", "2099-05-25", "09:30", bookings, 60) {
		t.Error("overlap across rooms must block the patient")
	}
	if !IsPatientAvailable("p1", "2099-05-25", "10:00", bookings, 60) {
		t.Error("adjacent booking must not block the patient")
	}
	if !IsPatientAvailable("p2", "2099-05-25", "09:00", bookings, 60) {
		t.Error("other patient must be unaffected")
	}
}

func TestFilterTherapistsByGender(t *testing.T) {
	therapists := []models.Therapist{
		{ID: "t1", Gender: models.GenderFemale},
		{ID: "t2", Gender: models.GenderMale},
		{ID: "t3", Gender: models.GenderFemale},
	}
	tests := []struct {
		name    string
		gender  models.Gender
		enforce bool
		wantIDs []string
	}{
		{"enforced female", models.GenderFemale, true, []string{"t1", "t3"}},
		{"enforced male", models.GenderMale, true, []string{"t2"}},
		{"not enforced passes all", models.GenderFemale, false, []string{"t1", "t2", "t3"}},
		{"unknown gender passes all", models.GenderUnknown, true, []string{"t1", "t2", "t3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTherapistsByGender(therapists, tt.gender, tt.enforce)
			var ids []string
			for _, th := range got {
				ids = append(ids, th.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("FilterTherapistsByGender() = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestAvailableTherapistsGenderAndConflicts(t *testing.T) {
	therapists := []models.Therapist{
		{ID: "t1", Gender: models.GenderMale},
		{ID: "t2", Gender: models.GenderFemale},
		{ID: "t3", Gender: models.GenderMale},
	}
	bookings := []models.Booking{
		{ID: "b1", Date: "2099-05-25", Slot: "09:00", Duration: 60, RoomID: "r1", TherapistIDs: []string{"t3"}, ClientID: "px"},
	}

	got := AvailableTherapists(therapists, models.GenderMale, "2099-05-25", "09:00", bookings, true, 60)
	if len(got) != 1 || got[0].ID != "t1" {
		t.Fatalf("expected only t1 available, got %v", got)
	}

	got = AvailableTherapists(therapists, models.GenderMale, "2099-05-25", "09:00", bookings, false, 60)
	if len(got) != 2 {
		t.Fatalf("expected t1 and t2 without enforcement, got %v", got)
	}
}

func TestAvailableRoomSlots(t *testing.T) {
	timings := allWeek(models.DayTimings{IsOpen: true, Start: "09:00", End: "12:00", Status: models.DayWorking})
	bookings := []models.Booking{
		{ID: "b1", Date: "2099-05-25", Slot: "09:00", Duration: 60, RoomID: "r1", TherapistIDs: []string{"t1"}, ClientID: "p1"},
	}

	got := AvailableRoomSlots(models.Room{ID: "r1"}, "2099-05-25", timings, 60, bookings)
	want := []string{"10:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableRoomSlots(r1) = %v, want %v", got, want)
	}

	got = AvailableRoomSlots(models.Room{ID: "r2"}, "2099-05-25", timings, 60, bookings)
	want = []string{"09:00", "10:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableRoomSlots(r2) = %v, want %v", got, want)
	}
}

func TestAvailableTherapistSlots(t *testing.T) {
	timings := allWeek(models.DayTimings{IsOpen: true, Start: "09:00", End: "12:00", Status: models.DayWorking})
	bookings := []models.Booking{
		{ID: "b1", Date: "2099-05-25", Slot: "10:00", Duration: 60, RoomID: "r2", TherapistIDs: []string{"t1"}, ClientID: "p1"},
	}

	got := AvailableTherapistSlots(models.Therapist{ID: "t1"}, "2099-05-25", timings, 60, bookings)
	want := []string{"09:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableTherapistSlots(t1) = %v, want %v", got, want)
	}
}
