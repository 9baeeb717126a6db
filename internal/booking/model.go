package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/constants"
)

// Status is the lifecycle state of an appointment.
type Status string

const (
	StatusBooked    Status = "Booked"
	StatusCancelled Status = "Cancelled"
	StatusAttended  Status = "Attended"
)

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusAttended
}

// Consumes reports whether an appointment in status s holds its slot.
func (s Status) Consumes() bool {
	return s == StatusBooked || s == StatusAttended
}

// Treatment is a named service belonging to one expertise area.
type Treatment struct {
	Name            string
	ExpertiseArea   string
	DurationMinutes int
}

// NewTreatment validates and returns a Treatment.
func NewTreatment(name, expertiseArea string, durationMinutes int) (Treatment, error) {
	t := Treatment{Name: name, ExpertiseArea: expertiseArea, DurationMinutes: durationMinutes}
	if err := t.Validate(); err != nil {
		return Treatment{}, err
	}
	return t, nil
}

func (t Treatment) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTreatment)
	}
	if strings.TrimSpace(t.ExpertiseArea) == "" {
		return fmt.Errorf("%w: %q has no expertise area", ErrInvalidTreatment, t.Name)
	}
	if t.DurationMinutes <= 0 {
		return fmt.Errorf("%w: %q duration must be positive, got %d", ErrInvalidTreatment, t.Name, t.DurationMinutes)
	}
	return nil
}

func (t Treatment) String() string {
	return fmt.Sprintf("%s (%s, %d mins)", t.Name, t.ExpertiseArea, t.DurationMinutes)
}

// Equal compares treatments by name only.
func (t Treatment) Equal(other Treatment) bool {
	return t.Name == other.Name
}

// Person is the identity shared by patients and practitioners.
type Person struct {
	ID       int
	FullName string
	Address  string
	Phone    string
}

func (p Person) String() string {
	return fmt.Sprintf("ID: %d, Name: %s, Phone: %s", p.ID, p.FullName, p.Phone)
}

type Patient struct {
	Person
}

func NewPatient(id int, fullName, address, phone string) Patient {
	return Patient{Person: Person{ID: id, FullName: fullName, Address: address, Phone: phone}}
}

// TimeSlot is a half-open interval [start, end) owned by one practitioner.
// Availability is only changed by the Engine.
type TimeSlot struct {
	start     time.Time
	end       time.Time
	dateKey   string
	available bool
	owner     *Physiotherapist
}

// NewTimeSlot returns an available slot. end must be after start.
func NewTimeSlot(start, end time.Time) (*TimeSlot, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end %s is not after start %s", ErrInvalidSlot,
			end.Format(time.DateTime), start.Format(time.DateTime))
	}
	return &TimeSlot{start: start, end: end, available: true}, nil
}

func (s *TimeSlot) Start() time.Time { return s.start }
func (s *TimeSlot) End() time.Time   { return s.end }

// DateKey is the timetable date the slot was filed under, empty until added to a practitioner.
func (s *TimeSlot) DateKey() string { return s.dateKey }

func (s *TimeSlot) Available() bool { return s.available }

// Owner returns the practitioner holding the slot, or nil.
func (s *TimeSlot) Owner() *Physiotherapist { return s.owner }

// Duration of the slot.
func (s *TimeSlot) Duration() time.Duration { return s.end.Sub(s.start) }

// FormattedRange renders e.g. "Thursday 1 May 2025, 09:00-10:00".
func (s *TimeSlot) FormattedRange() string {
	return s.start.Format(constants.SlotRangeFormat) + "-" + s.end.Format(constants.TimeFormat)
}

func (s *TimeSlot) String() string { return s.FormattedRange() }

// Appointment links a patient, practitioner, treatment and slot.
// Patient is a snapshot taken at booking time so records outlive patient removal.
type Appointment struct {
	ID           int
	Practitioner *Physiotherapist
	Patient      Patient
	Treatment    Treatment
	Slot         *TimeSlot
	Status       Status
}

func (a Appointment) String() string {
	return fmt.Sprintf("Appointment #%d: %s with %s for %s at %s [%s]",
		a.ID, a.Patient.FullName, a.Practitioner.FullName, a.Treatment.Name, a.Slot.FormattedRange(), a.Status)
}

// SlotOffer is one row of a search result.
type SlotOffer struct {
	Practitioner *Physiotherapist
	Treatment    Treatment
	Slot         *TimeSlot
	DateKey      string
}
