package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	section  lipgloss.Style
	heading  lipgloss.Style
	relay    lipgloss.Style
	count    lipgloss.Style
	detail   lipgloss.Style
	warning  lipgloss.Style
	empty    lipgloss.Style
	position lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:  lipgloss.NewStyle().MarginTop(1),
		heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		relay:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		count:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:    lipgloss.NewStyle().Faint(true),
		position: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}
