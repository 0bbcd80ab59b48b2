package summary

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	section     lipgloss.Style
	sectionName lipgloss.Style
	name        lipgloss.Style
	detail      lipgloss.Style
	empty       lipgloss.Style
	warning     lipgloss.Style
	total       lipgloss.Style
	barBracket  lipgloss.Style
	barFill     lipgloss.Style
	barEmpty    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:     lipgloss.NewStyle().MarginTop(1),
		sectionName: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		name:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		detail:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:       lipgloss.NewStyle().Faint(true),
		warning:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		total:       lipgloss.NewStyle().Bold(true),
		barBracket:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:     lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
