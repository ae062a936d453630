package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the browser
type Styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Pill     lipgloss.Style
	Card     lipgloss.Style
	CardName lipgloss.Style
	Drawer   lipgloss.Style
	Heading  lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Empty    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default palette
func DefaultStyles() Styles {
	primary := lipgloss.Color("#047857")
	stone := lipgloss.Color("#78716C")
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1C1917")),
		Subtle:   lipgloss.NewStyle().Foreground(stone),
		Pill:     lipgloss.NewStyle().Foreground(primary).Background(lipgloss.Color("#D1FAE5")).Padding(0, 1).MarginRight(1),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#D6D3D1")).Padding(0, 1).Width(34),
		CardName: lipgloss.NewStyle().Bold(true),
		Drawer:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(primary).Padding(0, 1).Width(36),
		Heading:  lipgloss.NewStyle().Bold(true).MarginTop(1),
		Selected: lipgloss.NewStyle().Foreground(primary).Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(primary),
		Empty:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(stone).Padding(1, 2),
		Help:     lipgloss.NewStyle().Foreground(stone).MarginTop(1),
	}
}
