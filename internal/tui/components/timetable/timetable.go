package timetable

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/booking"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/constants"
)

var (
	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	expertiseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

const (
	dateWidth   = 22
	timeWidth   = 13
	statusWidth = 40
)

// Model shows one practitioner's timetable as a table of slots.
type Model struct {
	table        table.Model
	Practitioner *booking.Physiotherapist
	width        int
	height       int
}

func New(width, height int) Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: dateWidth},
			{Title: "Time", Width: timeWidth},
			{Title: "Status", Width: statusWidth},
		}),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)

	m := Model{table: t}
	m.SetSize(width, height)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Practitioner == nil {
		return "No physiotherapists registered."
	}
	header := lipgloss.JoinVertical(lipgloss.Left,
		nameStyle.Render(m.Practitioner.FullName),
		expertiseStyle.Render(strings.Join(m.Practitioner.ExpertiseAreas(), ", ")),
	)
	if len(m.table.Rows()) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", "No time slots in the timetable.")
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.table.View())
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	// name, expertise and a blank line sit above the table
	if h := height - 3; h > 0 {
		m.table.SetHeight(h)
	}
	if width > 0 {
		m.table.SetWidth(width)
	}
}

// SetPractitioner loads p's slots. appts resolves who holds each unavailable slot.
func (m *Model) SetPractitioner(p *booking.Physiotherapist, appts []booking.Appointment) {
	m.Practitioner = p
	m.table.SetRows(Rows(p, appts))
	m.table.GotoTop()
}

// Rows returns one row per slot in timetable order.
func Rows(p *booking.Physiotherapist, appts []booking.Appointment) []table.Row {
	if p == nil {
		return nil
	}
	holders := make(map[*booking.TimeSlot]booking.Appointment)
	for _, a := range appts {
		if a.Status.Consumes() {
			holders[a.Slot] = a
		}
	}

	var rows []table.Row
	for _, day := range p.Timetable() {
		for _, s := range day.Slots {
			rows = append(rows, table.Row{
				s.Start().Format("Monday 2 January 2006"),
				s.Start().Format(constants.TimeFormat) + "-" + s.End().Format(constants.TimeFormat),
				slotStatus(s, holders),
			})
		}
	}
	return rows
}

func slotStatus(s *booking.TimeSlot, holders map[*booking.TimeSlot]booking.Appointment) string {
	if s.Available() {
		return "Available"
	}
	a, ok := holders[s]
	if !ok {
		return "Unavailable"
	}
	return fmt.Sprintf("%s: %s (#%d)", a.Status, a.Patient.FullName, a.ID)
}
