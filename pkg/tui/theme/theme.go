package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header  HeaderTheme
	Section SectionTheme
	Task    TaskTheme
	Footer  FooterTheme
}

// HeaderTheme styles the top line with the view and active filters.
type HeaderTheme struct {
	Title  lipgloss.Style
	Filter lipgloss.Style
}

// SectionTheme styles list and date headings.
type SectionTheme struct {
	Title    lipgloss.Style
	Count    lipgloss.Style
	Selected lipgloss.Style
	// Drop highlights the heading a grabbed task would land on.
	Drop lipgloss.Style
}

// TaskTheme styles task rows.
type TaskTheme struct {
	Normal    lipgloss.Style
	Selected  lipgloss.Style
	Completed lipgloss.Style
	Grabbed   lipgloss.Style
	Due       lipgloss.Style
	Overdue   lipgloss.Style
	ID        lipgloss.Style
}

// FooterTheme groups styles used by the bottom status and help lines.
type FooterTheme struct {
	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
	Input  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	selected := lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true)

	return Theme{
		Header: HeaderTheme{
			Title:  lipgloss.NewStyle().Bold(true).Underline(true),
			Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Section: SectionTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Count:    lipgloss.NewStyle().Faint(true),
			Selected: selected.Underline(true),
			Drop: lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("212")).
				Bold(true),
		},
		Task: TaskTheme{
			Normal:    lipgloss.NewStyle(),
			Selected:  selected,
			Completed: lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Grabbed:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Italic(true),
			Due:       lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
			Overdue:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			ID:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
		Footer: FooterTheme{
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Input:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		},
	}
}
