package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Aziz2597/Boost-Physio-Booking-App/internal/report"
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	reportSectionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")).
				Bold(true)

	reportMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// ReportCmd prints the end of term report.
type ReportCmd struct{}

func (cmd *ReportCmd) Run(ctx *Context) error {
	text := report.Generate(ctx.Engine)
	if ctx.Config.Plain {
		ctx.Println(text)
		return nil
	}
	ctx.Println(styleReport(text))
	return nil
}

func styleReport(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "====="):
			lines[i] = reportTitleStyle.Render(line)
		case strings.HasPrefix(line, "PHYSIOTHERAPIST:"), strings.HasSuffix(line, ":") && strings.ToUpper(line) == line:
			lines[i] = reportSectionStyle.Render(line)
		case strings.HasPrefix(line, "---"), line == "No appointments recorded.":
			lines[i] = reportMutedStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
