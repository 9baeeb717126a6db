package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/booking"
)

// fakeSource lets tests present states the engine itself would never produce.
type fakeSource struct {
	practitioners []*booking.Physiotherapist
	patients      []booking.Patient
	appointments  []booking.Appointment
	events        []booking.Event
}

func (f fakeSource) Practitioners() []*booking.Physiotherapist { return f.practitioners }
func (f fakeSource) Patients() []booking.Patient               { return f.patients }
func (f fakeSource) Appointments() []booking.Appointment       { return f.appointments }
func (f fakeSource) Events() []booking.Event                   { return f.events }

var massage = booking.Treatment{Name: "Deep Tissue Massage", ExpertiseArea: "Physiotherapy", DurationMinutes: 60}

func newSlot(t *testing.T, hour int) *booking.TimeSlot {
	t.Helper()
	start := time.Date(2025, 5, 1, hour, 0, 0, 0, time.UTC)
	s, err := booking.NewTimeSlot(start, start.Add(time.Hour))
	if err != nil {
		t.Fatalf("NewTimeSlot: %v", err)
	}
	return s
}

func newPractitioner(t *testing.T, id int, name string, slots ...*booking.TimeSlot) *booking.Physiotherapist {
	t.Helper()
	p := booking.NewPhysiotherapist(id, name, "", "")
	p.AddExpertise("Physiotherapy")
	if err := p.AddTreatment(massage); err != nil {
		t.Fatalf("AddTreatment: %v", err)
	}
	for _, s := range slots {
		if err := p.AddSlot("2025-05-01", s); err != nil {
			t.Fatalf("AddSlot: %v", err)
		}
	}
	return p
}

func hasConflict(result ValidationResult, typ ConflictType) bool {
	return len(result.ByType(typ)) > 0
}

func TestValidate_CleanEngine(t *testing.T) {
	s1, s2 := newSlot(t, 9), newSlot(t, 10)
	p := newPractitioner(t, 1, "John Smith", s1, s2)
	e := booking.NewEngine()
	_ = e.AddPractitioner(p)
	patient := booking.NewPatient(101, "Alice Brown", "", "")
	_ = e.AddPatient(patient)

	a, err := e.Book(patient, p, massage, s1)
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if _, err := e.Reschedule(a.ID, s2); err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if err := e.MarkAttended(2); err != nil {
		t.Fatalf("MarkAttended: %v", err)
	}

	result := New().Validate(e)
	if result.HasConflicts() {
		t.Errorf("unexpected conflicts:\n%s", result.FormatReport())
	}
	if got := result.FormatReport(); got != "No conflicts detected." {
		t.Errorf("FormatReport() = %q", got)
	}
}

func TestValidate_Conflicts(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) fakeSource
		want  ConflictType
	}{
		{
			name: "booked appointment on an available slot",
			build: func(t *testing.T) fakeSource {
				s := newSlot(t, 9)
				p := newPractitioner(t, 1, "John Smith", s)
				return fakeSource{
					practitioners: []*booking.Physiotherapist{p},
					appointments: []booking.Appointment{
						{ID: 1, Practitioner: p, Treatment: massage, Slot: s, Status: booking.StatusBooked},
					},
				}
			},
			want: ConflictAvailabilityMismatch,
		},
		{
			name: "two appointments hold one slot",
			build: func(t *testing.T) fakeSource {
				s := newSlot(t, 9)
				p := newPractitioner(t, 1, "John Smith", s)
				return fakeSource{
					practitioners: []*booking.Physiotherapist{p},
					appointments: []booking.Appointment{
						{ID: 1, Practitioner: p, Slot: s, Status: booking.StatusBooked},
						{ID: 2, Practitioner: p, Slot: s, Status: booking.StatusAttended},
					},
				}
			},
			want: ConflictDoubleBooking,
		},
		{
			name: "slot from another timetable",
			build: func(t *testing.T) fakeSource {
				s := newSlot(t, 9)
				owner := newPractitioner(t, 1, "John Smith", s)
				other := newPractitioner(t, 2, "Jane Doe")
				return fakeSource{
					practitioners: []*booking.Physiotherapist{owner, other},
					appointments: []booking.Appointment{
						{ID: 1, Practitioner: other, Slot: s, Status: booking.StatusCancelled},
					},
				}
			},
			want: ConflictForeignSlot,
		},
		{
			name: "duplicate patient ids",
			build: func(t *testing.T) fakeSource {
				return fakeSource{patients: []booking.Patient{
					booking.NewPatient(101, "Alice Brown", "", ""),
					booking.NewPatient(101, "Bob Green", "", ""),
				}}
			},
			want: ConflictDuplicatePatientID,
		},
		{
			name: "ids out of order",
			build: func(t *testing.T) fakeSource {
				return fakeSource{events: []booking.Event{
					{Type: booking.EventAppointmentBooked, AppointmentID: 2},
					{Type: booking.EventAppointmentBooked, AppointmentID: 2},
				}}
			},
			want: ConflictNonIncreasingID,
		},
		{
			name: "attended after cancel",
			build: func(t *testing.T) fakeSource {
				return fakeSource{events: []booking.Event{
					{Type: booking.EventAppointmentBooked, AppointmentID: 1},
					{Type: booking.EventAppointmentCancelled, AppointmentID: 1},
					{Type: booking.EventAppointmentAttended, AppointmentID: 1},
				}}
			},
			want: ConflictStatusAfterTerminal,
		},
		{
			name: "stored status disagrees with journal",
			build: func(t *testing.T) fakeSource {
				s := newSlot(t, 9)
				p := newPractitioner(t, 1, "John Smith", s)
				return fakeSource{
					practitioners: []*booking.Physiotherapist{p},
					appointments: []booking.Appointment{
						{ID: 1, Practitioner: p, Slot: s, Status: booking.StatusCancelled},
					},
					events: []booking.Event{
						{Type: booking.EventAppointmentBooked, AppointmentID: 1},
						{Type: booking.EventAppointmentAttended, AppointmentID: 1},
					},
				}
			},
			want: ConflictStatusAfterTerminal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New().Validate(tt.build(t))
			if !hasConflict(result, tt.want) {
				t.Errorf("expected %s conflict, got:\n%s", tt.want, result.FormatReport())
			}
			if !strings.HasPrefix(result.FormatReport(), "Conflicts detected:") {
				t.Errorf("FormatReport() = %q", result.FormatReport())
			}
		})
	}
}
