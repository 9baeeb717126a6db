package validation

import (
	"fmt"
	"strings"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/booking"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictAvailabilityMismatch ConflictType = "availability_mismatch"
	ConflictDoubleBooking        ConflictType = "double_booking"
	ConflictNonIncreasingID      ConflictType = "non_increasing_id"
	ConflictForeignSlot          ConflictType = "foreign_slot"
	ConflictTreatmentExpertise   ConflictType = "treatment_outside_expertise"
	ConflictDuplicatePatientID   ConflictType = "duplicate_patient_id"
	ConflictStatusAfterTerminal  ConflictType = "status_after_terminal"
)

// Conflict represents a detected inconsistency between the registries
type Conflict struct {
	Type           ConflictType
	Description    string
	Date           string // YYYY-MM-DD (if applicable)
	TimeRange      string // formatted slot range (if applicable)
	Items          []string
	AppointmentIDs []int
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// ByType returns the conflicts of one type.
func (vr *ValidationResult) ByType(t ConflictType) []Conflict {
	var out []Conflict
	for _, c := range vr.Conflicts {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Source is the state a Validator inspects. *booking.Engine satisfies it.
type Source interface {
	Practitioners() []*booking.Physiotherapist
	Patients() []booking.Patient
	Appointments() []booking.Appointment
	Events() []booking.Event
}

// Validator checks the cross-registry invariants of a booking engine
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// Validate runs every check against src.
func (v *Validator) Validate(src Source) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	practitioners := src.Practitioners()
	appointments := src.Appointments()

	result.Conflicts = append(result.Conflicts, v.checkSlots(practitioners, appointments)...)
	result.Conflicts = append(result.Conflicts, v.checkOwnership(appointments)...)
	result.Conflicts = append(result.Conflicts, v.checkTreatments(practitioners)...)
	result.Conflicts = append(result.Conflicts, v.checkPatients(src.Patients())...)

	events := src.Events()
	result.Conflicts = append(result.Conflicts, v.checkIDs(appointments, events)...)
	result.Conflicts = append(result.Conflicts, v.checkTerminal(appointments, events)...)
	return result
}

// checkSlots verifies that a slot is unavailable exactly when a Booked or Attended
// appointment references it, and that no slot is consumed twice.
func (v *Validator) checkSlots(practitioners []*booking.Physiotherapist, appointments []booking.Appointment) []Conflict {
	var conflicts []Conflict

	holders := make(map[*booking.TimeSlot][]int)
	for _, a := range appointments {
		if a.Slot != nil && a.Status.Consumes() {
			holders[a.Slot] = append(holders[a.Slot], a.ID)
		}
	}

	seen := make(map[*booking.TimeSlot]bool)
	check := func(s *booking.TimeSlot, who string) {
		if seen[s] {
			return
		}
		seen[s] = true
		held := len(holders[s]) > 0
		if s.Available() == held {
			state := "available"
			if !s.Available() {
				state = "unavailable"
			}
			conflicts = append(conflicts, Conflict{
				Type: ConflictAvailabilityMismatch,
				Description: fmt.Sprintf("Slot %s (%s) is %s but held by %d appointment(s)",
					s.FormattedRange(), who, state, len(holders[s])),
				Date:           s.DateKey(),
				TimeRange:      s.FormattedRange(),
				Items:          []string{who},
				AppointmentIDs: holders[s],
			})
		}
		if len(holders[s]) > 1 {
			conflicts = append(conflicts, Conflict{
				Type:           ConflictDoubleBooking,
				Description:    fmt.Sprintf("Slot %s (%s) is held by appointments %v", s.FormattedRange(), who, holders[s]),
				Date:           s.DateKey(),
				TimeRange:      s.FormattedRange(),
				Items:          []string{who},
				AppointmentIDs: holders[s],
			})
		}
	}

	for _, p := range practitioners {
		for _, day := range p.Timetable() {
			for _, s := range day.Slots {
				check(s, p.FullName)
			}
		}
	}
	// Slots referenced by appointments but missing from every timetable.
	for _, a := range appointments {
		if a.Slot != nil && !seen[a.Slot] {
			check(a.Slot, "unfiled")
		}
	}
	return conflicts
}

func (v *Validator) checkOwnership(appointments []booking.Appointment) []Conflict {
	var conflicts []Conflict
	for _, a := range appointments {
		if a.Practitioner != nil && a.Practitioner.OwnsSlot(a.Slot) {
			continue
		}
		name := "<none>"
		if a.Practitioner != nil {
			name = a.Practitioner.FullName
		}
		timeRange := ""
		if a.Slot != nil {
			timeRange = a.Slot.FormattedRange()
		}
		conflicts = append(conflicts, Conflict{
			Type:           ConflictForeignSlot,
			Description:    fmt.Sprintf("Appointment %d references slot %q outside %s's timetable", a.ID, timeRange, name),
			TimeRange:      timeRange,
			Items:          []string{name},
			AppointmentIDs: []int{a.ID},
		})
	}
	return conflicts
}

func (v *Validator) checkTreatments(practitioners []*booking.Physiotherapist) []Conflict {
	var conflicts []Conflict
	for _, p := range practitioners {
		for _, t := range p.Treatments() {
			if p.HasExpertise(t.ExpertiseArea) {
				continue
			}
			conflicts = append(conflicts, Conflict{
				Type: ConflictTreatmentExpertise,
				Description: fmt.Sprintf("%s offers %q in %q without holding that expertise",
					p.FullName, t.Name, t.ExpertiseArea),
				Items: []string{p.FullName, t.Name},
			})
		}
	}
	return conflicts
}

func (v *Validator) checkPatients(patients []booking.Patient) []Conflict {
	var conflicts []Conflict
	names := make(map[int][]string)
	var order []int
	for _, p := range patients {
		if _, ok := names[p.ID]; !ok {
			order = append(order, p.ID)
		}
		names[p.ID] = append(names[p.ID], p.FullName)
	}
	for _, id := range order {
		if len(names[id]) > 1 {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictDuplicatePatientID,
				Description: fmt.Sprintf("Patient id %d is shared by %s", id, strings.Join(names[id], ", ")),
				Items:       names[id],
			})
		}
	}
	return conflicts
}

// checkIDs verifies that the store holds unique positive ids and that ids were issued in
// strictly increasing order.
func (v *Validator) checkIDs(appointments []booking.Appointment, events []booking.Event) []Conflict {
	var conflicts []Conflict

	prev := 0
	for _, a := range appointments {
		if a.ID <= prev {
			conflicts = append(conflicts, Conflict{
				Type:           ConflictNonIncreasingID,
				Description:    fmt.Sprintf("Appointment id %d follows %d in the store", a.ID, prev),
				AppointmentIDs: []int{prev, a.ID},
			})
		}
		prev = a.ID
	}

	prev = 0
	for _, ev := range events {
		if ev.Type != booking.EventAppointmentBooked && ev.Type != booking.EventAppointmentRescheduled {
			continue
		}
		if ev.AppointmentID <= prev {
			conflicts = append(conflicts, Conflict{
				Type:           ConflictNonIncreasingID,
				Description:    fmt.Sprintf("Appointment id %d was issued after %d", ev.AppointmentID, prev),
				AppointmentIDs: []int{prev, ev.AppointmentID},
			})
		}
		prev = ev.AppointmentID
	}
	return conflicts
}

func statusAfter(t booking.EventType) (booking.Status, bool) {
	switch t {
	case booking.EventAppointmentBooked, booking.EventAppointmentRescheduled:
		return booking.StatusBooked, true
	case booking.EventAppointmentCancelled:
		return booking.StatusCancelled, true
	case booking.EventAppointmentAttended:
		return booking.StatusAttended, true
	}
	return "", false
}

// checkTerminal replays the journal: once an appointment reaches Cancelled or Attended
// no later event may touch it, and its stored status must match the last event.
func (v *Validator) checkTerminal(appointments []booking.Appointment, events []booking.Event) []Conflict {
	var conflicts []Conflict

	last := make(map[int]booking.Status)
	for _, ev := range events {
		next, ok := statusAfter(ev.Type)
		if !ok {
			continue
		}
		if prev, seen := last[ev.AppointmentID]; seen && prev.Terminal() {
			conflicts = append(conflicts, Conflict{
				Type: ConflictStatusAfterTerminal,
				Description: fmt.Sprintf("Appointment %d moved from %s to %s",
					ev.AppointmentID, prev, next),
				AppointmentIDs: []int{ev.AppointmentID},
			})
		}
		last[ev.AppointmentID] = next
	}

	for _, a := range appointments {
		want, ok := last[a.ID]
		if !ok || want == a.Status {
			continue
		}
		conflicts = append(conflicts, Conflict{
			Type: ConflictStatusAfterTerminal,
			Description: fmt.Sprintf("Appointment %d is %s but its journal ends at %s",
				a.ID, a.Status, want),
			AppointmentIDs: []int{a.ID},
		})
	}
	return conflicts
}
