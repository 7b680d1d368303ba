package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#8BC34A")
	muted   = lipgloss.Color("#6b7280")
	accent  = lipgloss.Color("#2196F3")
)

// Styles groups the lipgloss styles used by the product view.
type Styles struct {
	Heading  lipgloss.Style
	Section  lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Button   lipgloss.Style
	Popup    lipgloss.Style
	Label    lipgloss.Style
}

// DefaultStyles returns the styles used when none are configured.
func DefaultStyles() Styles {
	return Styles{
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(primary),
		Section:  lipgloss.NewStyle().Bold(true).Underline(true),
		Header:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:     lipgloss.NewStyle().Padding(0, 1),
		Selected: lipgloss.NewStyle().Padding(0, 1).Foreground(accent).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Button:   lipgloss.NewStyle().Foreground(primary),
		Popup:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		Label:    lipgloss.NewStyle().Width(14),
	}
}
