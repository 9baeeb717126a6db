package booking

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/logger"
)

// Engine coordinates the practitioner registry, patient registry and appointment store.
// Every operation either completes or leaves all state unchanged.
type Engine struct {
	mu sync.Mutex

	practitioners PractitionerRegistry
	patients      PatientRepository
	appointments  AppointmentRepository
	journal       Journal

	nextID int
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used to stamp journal events.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRepositories replaces the in-memory repositories.
func WithRepositories(patients PatientRepository, appointments AppointmentRepository) Option {
	return func(e *Engine) {
		e.patients = patients
		e.appointments = appointments
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		patients:     NewMemoryPatients(),
		appointments: NewMemoryAppointments(),
		nextID:       1,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, a := range e.appointments.All() {
		if a.ID >= e.nextID {
			e.nextID = a.ID + 1
		}
	}
	return e
}

// AddPractitioner registers p, rejecting an id already in use.
func (e *Engine) AddPractitioner(p *Physiotherapist) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.practitioners.ByID(p.ID); ok {
		return fmt.Errorf("%w: practitioner %d", ErrDuplicateID, p.ID)
	}
	e.practitioners.Add(p)
	logger.Debug("practitioner registered", "practitioner", p.FullName, "id", p.ID)
	return nil
}

func (e *Engine) AddPatient(p Patient) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.patients.Add(p); err != nil {
		logger.Warn("patient rejected", "patient", p.ID, "error", err)
		return err
	}
	e.journal.record(e.now(), EventPatientAdded, 0, p.ID, map[string]any{"name": p.FullName})
	logger.Info("patient added", "patient", p.ID, "name", p.FullName)
	return nil
}

// RemovePatient fails while the patient holds a Booked appointment.
func (e *Engine) RemovePatient(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.patients.ByID(id)
	if err != nil {
		return err
	}
	for _, a := range e.appointments.All() {
		if a.Patient.ID == id && a.Status == StatusBooked {
			logger.Warn("patient removal blocked", "patient", id, "appointment", a.ID)
			return fmt.Errorf("%w: patient %d holds appointment %d", ErrHasActiveAppointments, id, a.ID)
		}
	}
	if err := e.patients.Remove(id); err != nil {
		return err
	}
	e.journal.record(e.now(), EventPatientRemoved, 0, id, map[string]any{"name": p.FullName})
	logger.Info("patient removed", "patient", id)
	return nil
}

// Book reserves slot for the registered patient with patient.ID. The stored appointment carries
// the registry's copy of the patient, not the caller's. The slot must be available and belong to
// the practitioner, and the treatment must be one the practitioner offers.
func (e *Engine) Book(patient Patient, practitioner *Physiotherapist, treatment Treatment, slot *TimeSlot) (Appointment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	registered, err := e.patients.ByID(patient.ID)
	if err != nil {
		logger.Warn("booking rejected", "patient", patient.ID, "error", err)
		return Appointment{}, err
	}
	if err := e.checkOffer(practitioner, treatment, slot); err != nil {
		logger.Warn("booking rejected", "patient", patient.ID, "error", err)
		return Appointment{}, err
	}

	appt := Appointment{
		ID:           e.nextID,
		Practitioner: practitioner,
		Patient:      registered,
		Treatment:    treatment,
		Slot:         slot,
		Status:       StatusBooked,
	}
	if err := e.appointments.Put(appt); err != nil {
		return Appointment{}, err
	}
	e.nextID++
	slot.available = false

	e.journal.record(e.now(), EventAppointmentBooked, appt.ID, registered.ID, map[string]any{
		"practitioner": practitioner.ID,
		"treatment":    treatment.Name,
		"slot":         slot.FormattedRange(),
	})
	logger.Info("appointment booked", "appointment", appt.ID, "patient", registered.ID,
		"practitioner", practitioner.FullName, "slot", slot.FormattedRange())
	return appt, nil
}

func (e *Engine) checkOffer(practitioner *Physiotherapist, treatment Treatment, slot *TimeSlot) error {
	if practitioner == nil || slot == nil {
		return fmt.Errorf("%w: practitioner and slot are required", ErrNotFound)
	}
	if !slot.available {
		return fmt.Errorf("%w: %s", ErrSlotUnavailable, slot.FormattedRange())
	}
	if !practitioner.OwnsSlot(slot) {
		return fmt.Errorf("%w: %s is not in %s's timetable", ErrSlotNotOwned, slot.FormattedRange(), practitioner.FullName)
	}
	if !practitioner.offers(treatment) {
		return fmt.Errorf("%w: %s does not offer %q", ErrTreatmentNotOffered, practitioner.FullName, treatment.Name)
	}
	return nil
}

// Cancel moves a Booked appointment to Cancelled and frees its slot.
func (e *Engine) Cancel(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	appt, err := e.appointments.ByID(id)
	if err != nil {
		return err
	}
	if err := e.appointments.UpdateStatus(id, StatusBooked, StatusCancelled); err != nil {
		logger.Warn("cancel rejected", "appointment", id, "error", err)
		return err
	}
	appt.Slot.available = true

	e.journal.record(e.now(), EventAppointmentCancelled, id, appt.Patient.ID, map[string]any{
		"slot": appt.Slot.FormattedRange(),
	})
	logger.Info("appointment cancelled", "appointment", id, "slot", appt.Slot.FormattedRange())
	return nil
}

// Reschedule books newSlot for the same patient, practitioner and treatment, then cancels the
// original. The original record stays in the store as Cancelled.
func (e *Engine) Reschedule(id int, newSlot *TimeSlot) (Appointment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	old, err := e.appointments.ByID(id)
	if err != nil {
		return Appointment{}, err
	}
	if old.Status != StatusBooked {
		err := fmt.Errorf("%w: appointment %d is %s", ErrIllegalStateTransition, id, old.Status)
		logger.Warn("reschedule rejected", "appointment", id, "error", err)
		return Appointment{}, err
	}
	if err := e.checkOffer(old.Practitioner, old.Treatment, newSlot); err != nil {
		logger.Warn("reschedule rejected", "appointment", id, "error", err)
		return Appointment{}, err
	}

	next := Appointment{
		ID:           e.nextID,
		Practitioner: old.Practitioner,
		Patient:      old.Patient,
		Treatment:    old.Treatment,
		Slot:         newSlot,
		Status:       StatusBooked,
	}
	if err := e.appointments.UpdateStatus(id, StatusBooked, StatusCancelled); err != nil {
		return Appointment{}, err
	}
	old.Slot.available = true
	newSlot.available = false
	if err := e.appointments.Put(next); err != nil {
		// Roll back so the store is unchanged.
		newSlot.available = true
		old.Slot.available = false
		if rbErr := e.appointments.UpdateStatus(id, StatusCancelled, StatusBooked); rbErr != nil {
			logger.Error("reschedule rollback failed", "appointment", id, "error", rbErr)
			return Appointment{}, fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		logger.Warn("reschedule rolled back", "appointment", id, "error", err)
		return Appointment{}, err
	}
	e.nextID++

	now := e.now()
	e.journal.record(now, EventAppointmentCancelled, id, old.Patient.ID, map[string]any{
		"slot":        old.Slot.FormattedRange(),
		"replaced_by": next.ID,
	})
	e.journal.record(now, EventAppointmentRescheduled, next.ID, old.Patient.ID, map[string]any{
		"replaces": id,
		"from":     old.Slot.FormattedRange(),
		"to":       newSlot.FormattedRange(),
	})
	logger.Info("appointment rescheduled", "from", id, "to", next.ID, "slot", newSlot.FormattedRange())
	return next, nil
}

// MarkAttended closes a Booked appointment. The slot stays consumed.
func (e *Engine) MarkAttended(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	appt, err := e.appointments.ByID(id)
	if err != nil {
		return err
	}
	if err := e.appointments.UpdateStatus(id, StatusBooked, StatusAttended); err != nil {
		logger.Warn("attendance rejected", "appointment", id, "error", err)
		return err
	}
	e.journal.record(e.now(), EventAppointmentAttended, id, appt.Patient.ID, map[string]any{
		"treatment": appt.Treatment.Name,
	})
	logger.Info("appointment attended", "appointment", id)
	return nil
}

// Patients returns all patients in insertion order.
func (e *Engine) Patients() []Patient {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.patients.All()
}

func (e *Engine) Patient(id int) (Patient, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.patients.ByID(id)
}

// Appointments returns every record in ascending id order.
func (e *Engine) Appointments() []Appointment {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.appointments.All()
}

func (e *Engine) Appointment(id int) (Appointment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.appointments.ByID(id)
}

// Practitioners returns the registered practitioners in insertion order. The slice is a copy but
// the handles are shared with the registry: their slots flip availability as bookings change.
// Configure a practitioner with AddSlot, AddTreatment and AddExpertise before AddPractitioner.
func (e *Engine) Practitioners() []*Physiotherapist {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.practitioners.All()
}

// Practitioner returns the shared handle registered under id.
func (e *Engine) Practitioner(id int) (*Physiotherapist, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.practitioners.ByID(id)
}

func (e *Engine) PractitionerByName(name string) (*Physiotherapist, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.practitioners.ByNameCI(name)
}

// ExpertiseAreas returns the distinct areas across practitioners in first-seen order.
func (e *Engine) ExpertiseAreas() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var areas []string
	for _, p := range e.practitioners.items {
		for _, a := range p.expertise {
			if !slices.Contains(areas, a) {
				areas = append(areas, a)
			}
		}
	}
	return areas
}

// Events returns a copy of the lifecycle journal.
func (e *Engine) Events() []Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.journal.Events()
}

// History returns the journal events for one appointment in order.
func (e *Engine) History(id int) []Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.journal.ForAppointment(id)
}

// NextAppointmentID is the id the next successful booking will receive.
func (e *Engine) NextAppointmentID() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nextID
}
