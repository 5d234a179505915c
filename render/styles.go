package render

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#874BFD") // headers
	colorGood    = lipgloss.Color("#00FF99") // totals, reachable
	colorSubtle  = lipgloss.Color("#64748B") // labels
	colorWarning = lipgloss.Color("#F59E0B") // closures, unreachable

	titleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorGood).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)
)
