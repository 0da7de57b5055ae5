package demo

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/popup/pkg/popup/modal"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(modal.Primary).
			Bold(true)

	itemNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	itemSelected = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(modal.Primary).
			Bold(true)

	ageStyle    = lipgloss.NewStyle().Foreground(modal.Muted)
	helpStyle   = lipgloss.NewStyle().Foreground(modal.Muted)
	filterStyle = lipgloss.NewStyle().Foreground(modal.Info)
	emptyStyle  = lipgloss.NewStyle().Foreground(modal.Muted).Italic(true)
)
