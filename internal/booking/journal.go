package booking

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/logger"
)

type EventType string

const (
	EventPatientAdded           EventType = "PATIENT_ADDED"
	EventPatientRemoved         EventType = "PATIENT_REMOVED"
	EventAppointmentBooked      EventType = "APPOINTMENT_BOOKED"
	EventAppointmentCancelled   EventType = "APPOINTMENT_CANCELLED"
	EventAppointmentRescheduled EventType = "APPOINTMENT_RESCHEDULED"
	EventAppointmentAttended    EventType = "APPOINTMENT_ATTENDED"
)

// Event is one entry of the lifecycle journal. AppointmentID is 0 for patient events.
type Event struct {
	ID            uuid.UUID
	Type          EventType
	AppointmentID int
	PatientID     int
	Payload       json.RawMessage
	At            time.Time
}

// Journal is an append-only record of successful lifecycle operations.
type Journal struct {
	events []Event
}

func (j *Journal) record(at time.Time, typ EventType, appointmentID, patientID int, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Warn("failed to marshal event payload", "event", typ, "error", err)
		data = nil
	}
	j.events = append(j.events, Event{
		ID:            uuid.New(),
		Type:          typ,
		AppointmentID: appointmentID,
		PatientID:     patientID,
		Payload:       data,
		At:            at,
	})
}

// Events returns a copy of the journal in recording order.
func (j *Journal) Events() []Event {
	return slices.Clone(j.events)
}

// ForAppointment returns the events recorded against one appointment id.
func (j *Journal) ForAppointment(id int) []Event {
	var out []Event
	for _, ev := range j.events {
		if ev.AppointmentID == id {
			out = append(out, ev)
		}
	}
	return out
}
