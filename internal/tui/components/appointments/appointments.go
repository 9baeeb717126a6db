package appointments

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/booking"
)

type Item struct {
	Appointment booking.Appointment
}

func (i Item) Title() string {
	return fmt.Sprintf("#%d %s - %s", i.Appointment.ID, i.Appointment.Patient.FullName, i.Appointment.Treatment.Name)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s | %s | %s",
		i.Appointment.Slot.FormattedRange(), i.Appointment.Practitioner.FullName, i.Appointment.Status)
}

func (i Item) FilterValue() string {
	return i.Appointment.Patient.FullName + " " + i.Appointment.Practitioner.FullName
}

type Model struct {
	list list.Model
}

func New(appts []booking.Appointment, width, height int) Model {
	l := list.New(items(appts), list.NewDefaultDelegate(), width, height)
	l.Title = "Appointments"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	return Model{list: l}
}

func items(appts []booking.Appointment) []list.Item {
	out := make([]list.Item, len(appts))
	for i, a := range appts {
		out[i] = Item{Appointment: a}
	}
	return out
}

func (m *Model) SetAppointments(appts []booking.Appointment) {
	m.list.SetItems(items(appts))
}

// Filtering reports whether the filter prompt has focus.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "No appointments found in the system."
	}
	return m.list.View()
}
