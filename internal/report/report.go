// Package report builds the end-of-term summary from the practitioner registry and appointment store.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/booking"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/constants"
)

// Source is the read-only view the report is built from. *booking.Engine satisfies it.
type Source interface {
	Practitioners() []*booking.Physiotherapist
	Appointments() []booking.Appointment
}

// PractitionerSummary aggregates one practitioner's appointments.
type PractitionerSummary struct {
	Practitioner *booking.Physiotherapist
	Booked       int
	Cancelled    int
	Attended     int
	Appointments []booking.Appointment
}

func (s PractitionerSummary) Total() int {
	return len(s.Appointments)
}

// EndOfTerm is the ranked summary: practitioners by attended count, ties in registry order.
type EndOfTerm struct {
	Summaries []PractitionerSummary
}

// Build aggregates src without modifying it.
func Build(src Source) EndOfTerm {
	practitioners := src.Practitioners()
	index := make(map[*booking.Physiotherapist]int, len(practitioners))
	summaries := make([]PractitionerSummary, len(practitioners))
	for i, p := range practitioners {
		index[p] = i
		summaries[i].Practitioner = p
	}

	for _, a := range src.Appointments() {
		i, ok := index[a.Practitioner]
		if !ok {
			continue
		}
		s := &summaries[i]
		s.Appointments = append(s.Appointments, a)
		switch a.Status {
		case booking.StatusBooked:
			s.Booked++
		case booking.StatusCancelled:
			s.Cancelled++
		case booking.StatusAttended:
			s.Attended++
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Attended > summaries[j].Attended
	})
	return EndOfTerm{Summaries: summaries}
}

const rule = "------------------------------------------------"

// String renders the plain-text report.
func (r EndOfTerm) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "===== %s: END OF TERM REPORT =====\n\n", constants.ClinicName)

	b.WriteString("PHYSIOTHERAPIST RANKINGS (by attended appointments):\n")
	b.WriteString(rule + "\n")
	for i, s := range r.Summaries {
		fmt.Fprintf(&b, "%d. %s - %d attended appointments\n", i+1, s.Practitioner.FullName, s.Attended)
	}

	b.WriteString("\n\nDETAILED APPOINTMENT RECORDS BY PHYSIOTHERAPIST:\n")
	b.WriteString(rule + "\n\n")
	for _, s := range r.Summaries {
		fmt.Fprintf(&b, "PHYSIOTHERAPIST: %s\n", s.Practitioner.FullName)
		fmt.Fprintf(&b, "Expertise Areas: %s\n", strings.Join(s.Practitioner.ExpertiseAreas(), ", "))
		b.WriteString(rule + "--\n")

		if len(s.Appointments) == 0 {
			b.WriteString("No appointments recorded.\n\n")
			continue
		}

		fmt.Fprintf(&b, "Total Appointments: %d (Booked: %d, Cancelled: %d, Attended: %d)\n\n",
			s.Total(), s.Booked, s.Cancelled, s.Attended)
		b.WriteString("APPOINTMENT DETAILS:\n")
		for _, a := range s.Appointments {
			fmt.Fprintf(&b, "- %s | Treatment: %s | Patient: %s | Status: %s\n",
				a.Slot.FormattedRange(), a.Treatment.Name, patientName(a.Patient), a.Status)
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

func patientName(p booking.Patient) string {
	if p.FullName == "" {
		return fmt.Sprintf("patient #%d", p.ID)
	}
	return p.FullName
}

// Generate returns the rendered end-of-term report for src.
func Generate(src Source) string {
	return Build(src).String()
}
