// Package seed populates an engine with the sample clinic.
package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/booking"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/logger"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/scheduler"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/utils"
)

// Sample treatments.
var (
	DeepTissueMassage    = booking.Treatment{Name: "Deep Tissue Massage", ExpertiseArea: "Physiotherapy", DurationMinutes: 60}
	Acupuncture          = booking.Treatment{Name: "Acupuncture", ExpertiseArea: "Acupuncture", DurationMinutes: 45}
	InitialAssessment    = booking.Treatment{Name: "Initial Assessment", ExpertiseArea: "Physiotherapy", DurationMinutes: 60}
	OsteopathicTreatment = booking.Treatment{Name: "Osteopathic Treatment", ExpertiseArea: "Osteopathy", DurationMinutes: 60}
	SportsRehab          = booking.Treatment{Name: "Sports Rehab", ExpertiseArea: "Sports Therapy", DurationMinutes: 45}
)

type practitionerSpec struct {
	id         int
	name       string
	address    string
	phone      string
	expertise  []string
	treatments []booking.Treatment
}

var practitioners = []practitionerSpec{
	{
		id: 1, name: "John Smith", address: "123 Main St", phone: "555-1234",
		expertise:  []string{"Physiotherapy", "Sports Therapy"},
		treatments: []booking.Treatment{DeepTissueMassage, InitialAssessment, SportsRehab},
	},
	{
		id: 2, name: "Jane Doe", address: "456 Oak Ave", phone: "555-5678",
		expertise:  []string{"Osteopathy", "Physiotherapy"},
		treatments: []booking.Treatment{InitialAssessment, OsteopathicTreatment},
	},
	{
		// Deep Tissue Massage is a Physiotherapy treatment; it is rejected for this practitioner.
		id: 3, name: "Michael Johnson", address: "789 Pine Rd", phone: "555-9012",
		expertise:  []string{"Acupuncture", "Massage Therapy"},
		treatments: []booking.Treatment{Acupuncture, DeepTissueMassage},
	},
}

var patients = []booking.Patient{
	booking.NewPatient(101, "Alice Williams", "321 Elm St", "555-1111"),
	booking.NewPatient(102, "Bob Johnson", "654 Maple Ave", "555-2222"),
	booking.NewPatient(103, "Carol Davis", "987 Birch Rd", "555-3333"),
	booking.NewPatient(104, "David Brown", "135 Cedar Ln", "555-4444"),
	booking.NewPatient(105, "Emily Wilson", "246 Pine St", "555-5555"),
}

// FirstFakePatientID is the id given to the first generated patient.
const FirstFakePatientID = 106

// Options controls the sample clinic.
type Options struct {
	FirstDay     time.Time
	Days         int
	Scheduler    *scheduler.Scheduler
	FakePatients int
	FakeSeed     uint64
}

// Summary reports what Clinic loaded.
type Summary struct {
	Practitioners     int
	Slots             int
	Patients          int
	Appointments      int
	RejectedOfferings []error
}

// Clinic loads the sample practitioners, timetables, patients and two demonstration
// appointments: one booked on the first day and one attended on the second.
func Clinic(e *booking.Engine, opts Options) (Summary, error) {
	var sum Summary
	sched := opts.Scheduler
	if sched == nil {
		sched = scheduler.New(opts.FirstDay.Location())
	}

	built := make([]*booking.Physiotherapist, 0, len(practitioners))
	for _, spec := range practitioners {
		p := booking.NewPhysiotherapist(spec.id, spec.name, spec.address, spec.phone)
		for _, area := range spec.expertise {
			p.AddExpertise(area)
		}
		for _, t := range spec.treatments {
			if err := p.AddTreatment(t); err != nil {
				logger.Warn("sample treatment rejected", "practitioner", p.FullName, "treatment", t.Name, "error", err)
				sum.RejectedOfferings = append(sum.RejectedOfferings, err)
			}
		}
		n, err := sched.Fill(p, opts.FirstDay, opts.Days)
		if err != nil {
			return sum, err
		}
		sum.Slots += n
		if err := e.AddPractitioner(p); err != nil {
			return sum, fmt.Errorf("seed practitioner %d: %w", spec.id, err)
		}
		built = append(built, p)
		sum.Practitioners++
	}

	for _, p := range patients {
		if err := e.AddPatient(p); err != nil {
			return sum, fmt.Errorf("seed patient %d: %w", p.ID, err)
		}
		sum.Patients++
	}

	n, err := FakePatients(e, opts.FakePatients, opts.FakeSeed)
	sum.Patients += n
	if err != nil {
		return sum, err
	}

	sum.Appointments, err = demoAppointments(e, built, opts.FirstDay)
	if err != nil {
		return sum, err
	}

	logger.Info("sample clinic loaded", "practitioners", sum.Practitioners, "slots", sum.Slots,
		"patients", sum.Patients, "appointments", sum.Appointments)
	return sum, nil
}

func demoAppointments(e *booking.Engine, ps []*booking.Physiotherapist, firstDay time.Time) (int, error) {
	n := 0
	smith, doe := ps[0], ps[1]

	first := utils.DateKey(firstDay)
	if slots := smith.AvailableSlotsOn(first); len(slots) > 0 {
		if _, err := e.Book(patients[0], smith, DeepTissueMassage, slots[0]); err != nil {
			return n, fmt.Errorf("seed booking: %w", err)
		}
		n++
	}

	second := utils.DateKey(firstDay.AddDate(0, 0, 1))
	if slots := doe.AvailableSlotsOn(second); len(slots) > 0 {
		a, err := e.Book(patients[1], doe, OsteopathicTreatment, slots[0])
		if err != nil {
			return n, fmt.Errorf("seed booking: %w", err)
		}
		n++
		if err := e.MarkAttended(a.ID); err != nil {
			return n, fmt.Errorf("seed attendance: %w", err)
		}
	}
	return n, nil
}

// FakePatients adds count generated patients with ids from FirstFakePatientID upward.
// A zero seed draws a random one.
func FakePatients(e *booking.Engine, count int, seed uint64) (int, error) {
	if count <= 0 {
		return 0, nil
	}
	faker := gofakeit.New(seed)

	added := 0
	for id := FirstFakePatientID; added < count; id++ {
		if _, err := e.Patient(id); err == nil {
			continue
		}
		p := booking.NewPatient(id, faker.Name(), faker.Street(), faker.Phone())
		if err := e.AddPatient(p); err != nil {
			return added, fmt.Errorf("seed fake patient %d: %w", id, err)
		}
		added++
	}
	logger.Debug("generated patients", "count", added, "seed", seed)
	return added, nil
}
