package modal

import "github.com/charmbracelet/lipgloss"

// Palette. Values are ANSI-256 indices so they degrade on basic terminals.
var (
	Primary = lipgloss.Color("212")
	Error   = lipgloss.Color("196")
	Warning = lipgloss.Color("214")
	Info    = lipgloss.Color("45")
	Muted   = lipgloss.Color("241")
	Dimmed  = lipgloss.Color("238")
)

// Buttons
var (
	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238")).
		Padding(0, 2)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	ButtonHover = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("245")).
			Padding(0, 2)

	ButtonDanger = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("52")).
			Padding(0, 2)

	ButtonDangerFocused = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(Error).
				Bold(true).
				Padding(0, 2)

	ButtonDangerHover = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("203")).
				Padding(0, 2)
)

// Text
var (
	Title     = lipgloss.NewStyle().Bold(true)
	MutedText = lipgloss.NewStyle().Foreground(Muted)
	Body      = lipgloss.NewStyle()
	Label     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	InputFocused = lipgloss.NewStyle().Foreground(Primary)
	InputBlurred = lipgloss.NewStyle().Foreground(Muted)

	// Backdrop is applied to the host view while a modal is visible.
	Backdrop = lipgloss.NewStyle().Foreground(Dimmed)
)

// borderColor returns the frame color for a variant.
func borderColor(v Variant) lipgloss.Color {
	switch v {
	case VariantDanger:
		return Error
	case VariantWarning:
		return Warning
	case VariantInfo:
		return Info
	default:
		return Primary
	}
}

// frame is the box drawn around the modal. Border is 1 cell, padding 1x2.
func frame(v Variant) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor(v)).
		Padding(1, 2)
}

const (
	frameBorder = 1
	framePadX   = 2
	framePadY   = 1
)
