package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Cell         *lipgloss.Style
	ResolvedCell *lipgloss.Style
	Prompt       *lipgloss.Style
	Idle         *lipgloss.Style
	Error        *lipgloss.Style
	Info         *lipgloss.Style
	Footer       *lipgloss.Style
	Prefix       *lipgloss.Style
	PrefixPrompt *lipgloss.Style
	Cursor       *lipgloss.Style
}

var defaultStyles = Styles{
	Cell: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	),
	ResolvedCell: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Bold(true),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(PromptColor.Lipgloss()),
	),
	Idle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Prefix: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	PrefixPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// CellStyle returns the label style painted in color.
func (s *Styles) CellStyle(color RGBA, resolved bool) lipgloss.Style {
	base := *s.Cell
	if resolved {
		base = *s.ResolvedCell
	}
	return base.Background(color.Lipgloss())
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
