package seed

import (
	"errors"
	"testing"
	"time"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/booking"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/validation"
)

var firstDay = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

func TestClinic(t *testing.T) {
	e := booking.NewEngine()
	sum, err := Clinic(e, Options{FirstDay: firstDay, Days: 28})
	if err != nil {
		t.Fatalf("Clinic failed: %v", err)
	}

	if sum.Practitioners != 3 || sum.Patients != 5 || sum.Appointments != 2 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Slots != 3*28*6 {
		t.Errorf("slots = %d, want %d", sum.Slots, 3*28*6)
	}
	if len(sum.RejectedOfferings) != 1 || !errors.Is(sum.RejectedOfferings[0], booking.ErrTreatmentNotInExpertise) {
		t.Errorf("rejected offerings = %v, want one ErrTreatmentNotInExpertise", sum.RejectedOfferings)
	}

	michael, ok := e.PractitionerByName("Michael Johnson")
	if !ok {
		t.Fatal("Michael Johnson missing")
	}
	if _, ok := michael.TreatmentByName("Deep Tissue Massage"); ok {
		t.Error("Michael Johnson offers a treatment outside his expertise")
	}

	appts := e.Appointments()
	if len(appts) != 2 {
		t.Fatalf("appointments = %d, want 2", len(appts))
	}
	if appts[0].Patient.ID != 101 || appts[0].Status != booking.StatusBooked ||
		appts[0].Slot.FormattedRange() != "Thursday 1 May 2025, 09:00-10:00" {
		t.Errorf("first demo appointment = %s", appts[0])
	}
	if appts[1].Patient.ID != 102 || appts[1].Status != booking.StatusAttended ||
		appts[1].Practitioner.FullName != "Jane Doe" || appts[1].Slot.DateKey() != "2025-05-02" {
		t.Errorf("second demo appointment = %s", appts[1])
	}

	if result := validation.New().Validate(e); result.HasConflicts() {
		t.Errorf("sample clinic has conflicts:\n%s", result.FormatReport())
	}
}

func TestClinicWithoutTimetable(t *testing.T) {
	e := booking.NewEngine()
	sum, err := Clinic(e, Options{FirstDay: firstDay, Days: 0})
	if err != nil {
		t.Fatalf("Clinic failed: %v", err)
	}
	if sum.Slots != 0 || sum.Appointments != 0 {
		t.Errorf("summary = %+v, want no slots and no appointments", sum)
	}
}

func TestFakePatients(t *testing.T) {
	e := booking.NewEngine()
	if _, err := Clinic(e, Options{FirstDay: firstDay, Days: 1, FakePatients: 4, FakeSeed: 7}); err != nil {
		t.Fatalf("Clinic failed: %v", err)
	}

	all := e.Patients()
	if len(all) != 9 {
		t.Fatalf("patients = %d, want 9", len(all))
	}
	for i, p := range all[5:] {
		if p.ID != FirstFakePatientID+i {
			t.Errorf("fake patient %d id = %d", i, p.ID)
		}
		if p.FullName == "" {
			t.Errorf("fake patient %d has no name", p.ID)
		}
	}

	// The same seed yields the same names.
	other := booking.NewEngine()
	if _, err := FakePatients(other, 4, 7); err != nil {
		t.Fatalf("FakePatients failed: %v", err)
	}
	for i, p := range other.Patients() {
		if p.FullName != all[5+i].FullName {
			t.Errorf("seeded name %d = %q, want %q", i, p.FullName, all[5+i].FullName)
		}
	}
}

func TestFakePatientsSkipsTakenIDs(t *testing.T) {
	e := booking.NewEngine()
	if err := e.AddPatient(booking.NewPatient(FirstFakePatientID, "Walk In", "", "")); err != nil {
		t.Fatalf("AddPatient: %v", err)
	}
	n, err := FakePatients(e, 2, 1)
	if err != nil {
		t.Fatalf("FakePatients failed: %v", err)
	}
	if n != 2 {
		t.Errorf("added = %d, want 2", n)
	}
	if _, err := e.Patient(FirstFakePatientID + 2); err != nil {
		t.Errorf("expected patient %d: %v", FirstFakePatientID+2, err)
	}
}
