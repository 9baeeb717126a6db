package report

import (
	"strings"
	"testing"
	"time"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/booking"
)

type clinic struct {
	engine        *booking.Engine
	practitioners []*booking.Physiotherapist
	patient       booking.Patient
	treatment     booking.Treatment
}

func newClinic(t *testing.T, names ...string) clinic {
	t.Helper()
	c := clinic{
		engine:    booking.NewEngine(),
		patient:   booking.NewPatient(101, "Alice Brown", "", ""),
		treatment: booking.Treatment{Name: "Initial Assessment", ExpertiseArea: "Physiotherapy", DurationMinutes: 60},
	}
	if err := c.engine.AddPatient(c.patient); err != nil {
		t.Fatalf("AddPatient: %v", err)
	}
	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range names {
		p := booking.NewPhysiotherapist(i+1, name, "", "")
		p.AddExpertise("Physiotherapy")
		if err := p.AddTreatment(c.treatment); err != nil {
			t.Fatalf("AddTreatment: %v", err)
		}
		for h := 9; h < 13; h++ {
			start := day.Add(time.Duration(h) * time.Hour)
			s, _ := booking.NewTimeSlot(start, start.Add(time.Hour))
			if err := p.AddSlot("2025-05-01", s); err != nil {
				t.Fatalf("AddSlot: %v", err)
			}
		}
		if err := c.engine.AddPractitioner(p); err != nil {
			t.Fatalf("AddPractitioner: %v", err)
		}
		c.practitioners = append(c.practitioners, p)
	}
	return c
}

// attend books and attends n appointments with p.
func (c clinic) attend(t *testing.T, p *booking.Physiotherapist, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		slots := p.AvailableSlotsOn("2025-05-01")
		a, err := c.engine.Book(c.patient, p, c.treatment, slots[0])
		if err != nil {
			t.Fatalf("Book: %v", err)
		}
		if err := c.engine.MarkAttended(a.ID); err != nil {
			t.Fatalf("MarkAttended: %v", err)
		}
	}
}

func TestBuildRankingIsStable(t *testing.T) {
	c := newClinic(t, "P1", "P2", "P3")
	c.attend(t, c.practitioners[2], 1)
	c.attend(t, c.practitioners[1], 2)
	c.attend(t, c.practitioners[0], 2)

	r := Build(c.engine)
	want := []string{"P1", "P2", "P3"}
	for i, name := range want {
		if got := r.Summaries[i].Practitioner.FullName; got != name {
			t.Errorf("rank %d = %s, want %s", i+1, got, name)
		}
	}

	text := r.String()
	p1 := strings.Index(text, "1. P1 - 2 attended appointments")
	p2 := strings.Index(text, "2. P2 - 2 attended appointments")
	p3 := strings.Index(text, "3. P3 - 1 attended appointments")
	if p1 < 0 || p2 < 0 || p3 < 0 || !(p1 < p2 && p2 < p3) {
		t.Errorf("ranking lines missing or out of order:\n%s", text)
	}
}

func TestBuildTotals(t *testing.T) {
	c := newClinic(t, "John Smith")
	p := c.practitioners[0]
	c.attend(t, p, 1)

	slots := p.AvailableSlotsOn("2025-05-01")
	booked, err := c.engine.Book(c.patient, p, c.treatment, slots[0])
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	cancelled, err := c.engine.Book(c.patient, p, c.treatment, slots[1])
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if err := c.engine.Cancel(cancelled.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	s := Build(c.engine).Summaries[0]
	if s.Booked != 1 || s.Cancelled != 1 || s.Attended != 1 || s.Total() != 3 {
		t.Errorf("summary = booked %d cancelled %d attended %d total %d, want 1/1/1/3",
			s.Booked, s.Cancelled, s.Attended, s.Total())
	}
	if s.Appointments[1].ID != booked.ID {
		t.Errorf("appointments not in store order")
	}

	text := Generate(c.engine)
	for _, want := range []string{
		"===== BOOST PHYSIO CLINIC: END OF TERM REPORT =====",
		"PHYSIOTHERAPIST: John Smith",
		"Expertise Areas: Physiotherapy",
		"Total Appointments: 3 (Booked: 1, Cancelled: 1, Attended: 1)",
		"- Thursday 1 May 2025, 10:00-11:00 | Treatment: Initial Assessment | Patient: Alice Brown | Status: Booked",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\n%s", want, text)
		}
	}
}

func TestReportToleratesRemovedPatient(t *testing.T) {
	c := newClinic(t, "Jane Doe")
	c.attend(t, c.practitioners[0], 1)
	if err := c.engine.RemovePatient(c.patient.ID); err != nil {
		t.Fatalf("RemovePatient: %v", err)
	}

	text := Generate(c.engine)
	if !strings.Contains(text, "Patient: Alice Brown | Status: Attended") {
		t.Errorf("report lost the removed patient's attended record:\n%s", text)
	}
}

func TestReportWithoutAppointments(t *testing.T) {
	c := newClinic(t, "Michael Johnson")
	text := Generate(c.engine)
	if !strings.Contains(text, "1. Michael Johnson - 0 attended appointments") {
		t.Errorf("ranking line missing:\n%s", text)
	}
	if !strings.Contains(text, "No appointments recorded.") {
		t.Errorf("empty practitioner section missing:\n%s", text)
	}
}
