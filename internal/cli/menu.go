package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/booking"
	apperrors "github.com/Aziz2597/Boost-Physio-Booking-App/internal/errors"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/logger"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/report"
)

// MenuCmd runs the interactive clinic menu until the operator exits or input ends.
type MenuCmd struct{}

func (cmd *MenuCmd) Run(ctx *Context) error {
	m := &menu{ctx: ctx, p: ctx.Prompt(), e: ctx.Engine}
	err := m.main()
	if errors.Is(err, io.EOF) {
		logger.Debug("menu input closed")
		return nil
	}
	return err
}

type menu struct {
	ctx *Context
	p   Prompter
	e   *booking.Engine
}

func (m *menu) say(format string, args ...any) {
	m.ctx.Printf(format+"\n", args...)
}

// fail reports a failed action and returns to the current menu. Only input errors propagate.
func (m *menu) fail(action string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return err
	case errors.Is(err, ErrInvalidInput):
		m.say("%s", apperrors.Format(err))
	default:
		m.say("%s", apperrors.Action(action, err))
	}
	return nil
}

// settle reports whether the prompt produced a number. Invalid input prints msg and
// returns to the caller's menu; other errors propagate.
func (m *menu) settle(err error, msg string) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrInvalidInput) {
		m.say("%s", msg)
		return false, nil
	}
	return false, err
}

func (m *menu) main() error {
	items := []string{
		"Patient Management",
		"Book Appointment by Expertise Area",
		"Book Appointment by Physiotherapist",
		"Manage Appointments",
		"Generate End of Term Report",
	}
	for {
		choice, err := m.p.Menu("===== BOOST PHYSIO CLINIC BOOKING SYSTEM =====", items, "Exit")
		if ok, err := m.settle(err, "Invalid choice. Please try again."); !ok {
			if err != nil {
				return err
			}
			continue
		}

		switch choice {
		case 1:
			err = m.patients()
		case 2:
			err = m.bookByExpertise()
		case 3:
			err = m.bookByPractitioner()
		case 4:
			err = m.appointments()
		case 5:
			m.say("\n----- GENERATE END OF TERM REPORT -----")
			m.say("\n%s", report.Generate(m.e))
		case 0:
			m.say("Exiting the system. Goodbye!")
			return nil
		default:
			m.say("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *menu) patients() error {
	items := []string{"List All Patients", "Add New Patient", "Remove Patient"}
	for {
		choice, err := m.p.Menu("----- PATIENT MANAGEMENT -----", items, "Back to Main Menu")
		if ok, err := m.settle(err, "Invalid choice. Please try again."); !ok {
			if err != nil {
				return err
			}
			continue
		}

		switch choice {
		case 1:
			m.listPatients()
		case 2:
			err = m.addPatient()
		case 3:
			err = m.removePatient()
		case 0:
			return nil
		default:
			m.say("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *menu) listPatients() {
	m.say("\n----- ALL PATIENTS -----")
	patients := m.e.Patients()
	if len(patients) == 0 {
		m.say("No patients registered in the system.")
		return
	}
	for _, p := range patients {
		m.say("%s", p)
	}
}

func (m *menu) addPatient() error {
	m.say("\n----- ADD NEW PATIENT -----")
	id, err := m.p.Int("Enter patient ID: ")
	if err != nil {
		return m.fail("adding patient", err)
	}
	if _, err := m.e.Patient(id); err == nil {
		m.say("Error: A patient with this ID already exists.")
		return nil
	}

	name, err := m.p.Text("Enter full name: ")
	if err != nil {
		return err
	}
	address, err := m.p.Text("Enter address: ")
	if err != nil {
		return err
	}
	phone, err := m.p.Text("Enter phone number: ")
	if err != nil {
		return err
	}

	if err := m.e.AddPatient(booking.NewPatient(id, name, address, phone)); err != nil {
		return m.fail("adding patient", err)
	}
	m.say("Patient added successfully!")
	return nil
}

func (m *menu) removePatient() error {
	m.say("\n----- REMOVE PATIENT -----")
	id, err := m.p.Int("Enter patient ID to remove: ")
	if err != nil {
		return m.fail("removing patient", err)
	}
	if err := m.e.RemovePatient(id); err != nil {
		return m.fail("removing patient", err)
	}
	m.say("Patient removed successfully!")
	return nil
}

func (m *menu) bookByExpertise() error {
	m.say("\n----- BOOK APPOINTMENT BY EXPERTISE AREA -----")
	areas := m.e.ExpertiseAreas()
	if len(areas) == 0 {
		m.say("No expertise areas available.")
		return nil
	}

	n, err := m.p.Pick("Available expertise areas:", areas, "Select expertise area (enter number): ")
	if ok, err := m.settle(err, "Invalid selection."); !ok {
		return err
	}
	if n < 1 || n > len(areas) {
		m.say("Invalid selection.")
		return nil
	}
	area := areas[n-1]

	offers := m.e.SearchByExpertise(area)
	if len(offers) == 0 {
		m.say("No available slots found for %s", area)
		return nil
	}
	rows := make([]string, len(offers))
	for i, o := range offers {
		rows[i] = FormatOffer(o)
	}
	n, err = m.p.Pick(fmt.Sprintf("\nAvailable appointments for %s:", area), rows,
		"\nSelect an appointment (enter number or 0 to cancel): ")
	if ok, err := m.settle(err, "Booking cancelled."); !ok {
		return err
	}
	if n < 1 || n > len(offers) {
		m.say("Booking cancelled.")
		return nil
	}
	return m.bookFor(offers[n-1])
}

func (m *menu) bookByPractitioner() error {
	m.say("\n----- BOOK APPOINTMENT BY PHYSIOTHERAPIST -----")
	practitioners := m.e.Practitioners()
	if len(practitioners) == 0 {
		m.say("No physiotherapists registered.")
		return nil
	}
	names := make([]string, len(practitioners))
	for i, p := range practitioners {
		names[i] = p.FullName
	}

	n, err := m.p.Pick("Available physiotherapists:", names, "Select physiotherapist (enter number): ")
	if ok, err := m.settle(err, "Invalid selection."); !ok {
		return err
	}
	if n < 1 || n > len(practitioners) {
		m.say("Invalid selection.")
		return nil
	}
	p := practitioners[n-1]

	offers := m.e.SearchByPractitioner(p.FullName)
	if len(offers) == 0 {
		m.say("No available slots found for %s", p.FullName)
		return nil
	}

	treatments := p.Treatments()
	labels := make([]string, len(treatments))
	for i, t := range treatments {
		labels[i] = fmt.Sprintf("%s (%d mins)", t.Name, t.DurationMinutes)
	}
	n, err = m.p.Pick(fmt.Sprintf("\nTreatments offered by %s:", p.FullName), labels,
		"Select treatment (enter number): ")
	if ok, err := m.settle(err, "Invalid treatment selection. Booking cancelled."); !ok {
		return err
	}
	if n < 1 || n > len(treatments) {
		m.say("Invalid treatment selection. Booking cancelled.")
		return nil
	}
	treatment := treatments[n-1]

	var filtered []booking.SlotOffer
	for _, o := range offers {
		if o.Treatment.Equal(treatment) {
			filtered = append(filtered, o)
		}
	}
	if len(filtered) == 0 {
		m.say("No available slots found for this treatment.")
		return nil
	}
	rows := make([]string, len(filtered))
	for i, o := range filtered {
		rows[i] = o.Slot.FormattedRange()
	}
	n, err = m.p.Pick(fmt.Sprintf("\nAvailable time slots for %s:", treatment.Name), rows,
		"\nSelect a time slot (enter number or 0 to cancel): ")
	if ok, err := m.settle(err, "Booking cancelled."); !ok {
		return err
	}
	if n < 1 || n > len(filtered) {
		m.say("Booking cancelled.")
		return nil
	}
	return m.bookFor(filtered[n-1])
}

// bookFor asks for the patient and books the chosen offer.
func (m *menu) bookFor(o booking.SlotOffer) error {
	patients := m.e.Patients()
	if len(patients) == 0 {
		m.say("No patients registered in the system.")
		return nil
	}
	names := make([]string, len(patients))
	for i, p := range patients {
		names[i] = p.FullName
	}
	n, err := m.p.Pick("\nSelect patient:", names, "Enter patient number: ")
	if ok, err := m.settle(err, "Invalid patient selection. Booking cancelled."); !ok {
		return err
	}
	if n < 1 || n > len(patients) {
		m.say("Invalid patient selection. Booking cancelled.")
		return nil
	}

	appt, err := m.e.Book(patients[n-1], o.Practitioner, o.Treatment, o.Slot)
	if err != nil {
		return m.fail("booking appointment", err)
	}
	m.say("\nAppointment booked successfully!")
	m.say("Appointment ID: %d", appt.ID)
	m.say("%s", appt)
	return nil
}

func (m *menu) appointments() error {
	items := []string{
		"List All Appointments",
		"Cancel Appointment",
		"Reschedule Appointment",
		"Mark Appointment as Attended",
		"View Booking Journal",
	}
	for {
		choice, err := m.p.Menu("----- APPOINTMENT MANAGEMENT -----", items, "Back to Main Menu")
		if ok, err := m.settle(err, "Invalid choice. Please try again."); !ok {
			if err != nil {
				return err
			}
			continue
		}

		switch choice {
		case 1:
			m.listAppointments()
		case 2:
			err = m.cancel()
		case 3:
			err = m.reschedule()
		case 4:
			err = m.markAttended()
		case 5:
			err = m.journal()
		case 0:
			return nil
		default:
			m.say("Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *menu) listAppointments() {
	m.say("\n----- ALL APPOINTMENTS -----")
	appts := m.e.Appointments()
	if len(appts) == 0 {
		m.say("No appointments found in the system.")
		return
	}
	for _, a := range appts {
		m.say("%s", a)
	}
}

func (m *menu) cancel() error {
	m.say("\n----- CANCEL APPOINTMENT -----")
	id, err := m.p.Int("Enter appointment ID to cancel: ")
	if err != nil {
		return m.fail("cancelling appointment", err)
	}
	if err := m.e.Cancel(id); err != nil {
		return m.fail("cancelling appointment", err)
	}
	m.say("Appointment cancelled successfully!")
	return nil
}

func (m *menu) reschedule() error {
	m.say("\n----- RESCHEDULE APPOINTMENT -----")
	id, err := m.p.Int("Enter appointment ID to reschedule: ")
	if err != nil {
		return m.fail("rescheduling appointment", err)
	}
	appt, err := m.e.Appointment(id)
	if err != nil {
		m.say("Appointment not found.")
		return nil
	}
	if appt.Status != booking.StatusBooked {
		m.say("Only booked appointments can be rescheduled.")
		return nil
	}

	var slots []*booking.TimeSlot
	for _, o := range m.e.SearchByPractitioner(appt.Practitioner.FullName) {
		if o.Treatment.Equal(appt.Treatment) {
			slots = append(slots, o.Slot)
		}
	}
	m.say("\nAvailable time slots for %s:", appt.Practitioner.FullName)
	if len(slots) == 0 {
		m.say("No available slots found for rescheduling.")
		return nil
	}
	rows := make([]string, len(slots))
	for i, s := range slots {
		rows[i] = s.FormattedRange()
	}
	n, err := m.p.Pick("", rows, "\nSelect a new time slot (enter number or 0 to cancel): ")
	if ok, err := m.settle(err, "Rescheduling cancelled."); !ok {
		return err
	}
	if n < 1 || n > len(slots) {
		m.say("Rescheduling cancelled.")
		return nil
	}

	next, err := m.e.Reschedule(id, slots[n-1])
	if err != nil {
		return m.fail("rescheduling appointment", err)
	}
	m.say("\nAppointment rescheduled successfully!")
	m.say("New Appointment ID: %d", next.ID)
	m.say("%s", next)
	return nil
}

func (m *menu) markAttended() error {
	m.say("\n----- MARK APPOINTMENT AS ATTENDED -----")
	id, err := m.p.Int("Enter appointment ID: ")
	if err != nil {
		return m.fail("updating appointment", err)
	}
	if err := m.e.MarkAttended(id); err != nil {
		return m.fail("updating appointment", err)
	}
	m.say("Appointment marked as attended successfully!")
	return nil
}

// journal prints the lifecycle events, either all of them or one appointment's history.
func (m *menu) journal() error {
	m.say("\n----- BOOKING JOURNAL -----")
	id, err := m.p.Int("Enter appointment ID (0 for all): ")
	if err != nil {
		return m.fail("reading journal", err)
	}
	events := m.e.Events()
	if id != 0 {
		events = m.e.History(id)
	}
	if len(events) == 0 {
		m.say("No events recorded.")
		return nil
	}
	for _, ev := range events {
		line := fmt.Sprintf("%s  %-23s patient=%d", ev.At.Format("2006-01-02 15:04:05"), ev.Type, ev.PatientID)
		if ev.AppointmentID != 0 {
			line += fmt.Sprintf(" appointment=%d", ev.AppointmentID)
		}
		if len(ev.Payload) > 0 {
			line += " " + string(ev.Payload)
		}
		m.say("%s", line)
	}
	return nil
}
