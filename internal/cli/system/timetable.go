package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/cli"
	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/tui"
)

type TimetableCmd struct{}

func (c *TimetableCmd) Run(ctx *cli.Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.Engine), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
