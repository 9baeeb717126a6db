package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/booking"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/tui/components/appointments"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/tui/components/timetable"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/validation"
)

type SessionState int

const (
	StateTimetable SessionState = iota
	StateAppointments
)

const tabCount = 2

// Source is the registry view the browser reads.
type Source interface {
	Practitioners() []*booking.Physiotherapist
	Patients() []booking.Patient
	Appointments() []booking.Appointment
	Events() []booking.Event
}

type Model struct {
	src               Source
	state             SessionState
	keys              KeyMap
	help              help.Model
	practitioners     []*booking.Physiotherapist
	active            int
	timetableModel    timetable.Model
	appointmentsModel appointments.Model
	quitting          bool
	width             int
	height            int
	validationWarning string
}

func NewModel(src Source) Model {
	m := Model{
		src:               src,
		state:             StateTimetable,
		keys:              DefaultKeyMap(),
		help:              help.New(),
		timetableModel:    timetable.New(0, 0),
		appointmentsModel: appointments.New(nil, 0, 0),
	}
	m.reload()
	return m
}

// reload re-reads the registry into both tabs.
func (m *Model) reload() {
	m.practitioners = m.src.Practitioners()
	if m.active >= len(m.practitioners) {
		m.active = 0
	}
	appts := m.src.Appointments()

	var current *booking.Physiotherapist
	if len(m.practitioners) > 0 {
		current = m.practitioners[m.active]
	}
	m.timetableModel.SetPractitioner(current, appts)
	m.appointmentsModel.SetAppointments(appts)
	m.updateValidationStatus()
}

// Active returns the practitioner shown in the timetable tab.
func (m Model) Active() *booking.Physiotherapist {
	if len(m.practitioners) == 0 {
		return nil
	}
	return m.practitioners[m.active]
}

func (m Model) State() SessionState {
	return m.state
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateTimetable {
		keys = append(keys, m.keys.Left, m.keys.Right)
	}
	return append(keys, m.keys.Refresh)
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}
	if m.state == StateTimetable {
		navigation = append(navigation, m.keys.Left, m.keys.Right)
	}
	return [][]key.Binding{global, navigation}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) updateValidationStatus() {
	result := validation.New().Validate(m.src)
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}
