package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateTimetable:
		content = m.viewTimetable()
	case StateAppointments:
		content = docStyle.Render(m.appointmentsModel.View())
	}

	parts := []string{m.viewTabs()}
	if m.validationWarning != "" {
		parts = append(parts, warningStyle.Render(m.validationWarning))
	}
	parts = append(parts, content, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Timetable", "Appointments"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewTimetable() string {
	var names []string
	for i, p := range m.practitioners {
		if i == m.active {
			names = append(names, activeTabStyle.Render(p.FullName))
		} else {
			names = append(names, inactiveTabStyle.Render(p.FullName))
		}
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, names...),
		"",
		m.timetableModel.View(),
	))
}
