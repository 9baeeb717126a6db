package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// tabs, help and margins
const chromeHeight = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.timetableModel.SetSize(msg.Width-4, msg.Height-chromeHeight)
		m.appointmentsModel.SetSize(msg.Width-4, msg.Height-chromeHeight)
		return m, nil

	case tea.KeyMsg:
		if m.state == StateAppointments && m.appointmentsModel.Filtering() {
			m.appointmentsModel, cmd = m.appointmentsModel.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.reload()
			return m, nil
		case m.state == StateTimetable && key.Matches(msg, m.keys.Right):
			m.step(1)
			return m, nil
		case m.state == StateTimetable && key.Matches(msg, m.keys.Left):
			m.step(-1)
			return m, nil
		}
	}

	switch m.state {
	case StateTimetable:
		m.timetableModel, cmd = m.timetableModel.Update(msg)
	case StateAppointments:
		m.appointmentsModel, cmd = m.appointmentsModel.Update(msg)
	}
	return m, cmd
}

func (m *Model) step(delta int) {
	n := len(m.practitioners)
	if n == 0 {
		return
	}
	m.active = (m.active + delta + n) % n
	m.timetableModel.SetPractitioner(m.practitioners[m.active], m.src.Appointments())
}
