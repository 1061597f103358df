package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used to render the browser.
type Styles struct {
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Input     lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Muted     lipgloss.Style
	Title     lipgloss.Style
	Error     lipgloss.Style
	Status    lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() *Styles {
	var (
		primary = lipgloss.Color("#7C3AED")
		fg      = lipgloss.Color("#CDD6F4")
		muted   = lipgloss.Color("#6C7086")
		border  = lipgloss.Color("#45475A")
		red     = lipgloss.Color("#F38BA8")
	)
	return &Styles{
		Tab:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(fg).Background(primary).Padding(0, 1),
		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Item:     lipgloss.NewStyle().Foreground(fg).PaddingLeft(2),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(primary).PaddingLeft(1),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		Error:    lipgloss.NewStyle().Foreground(red),
		Status:   lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
	}
}
