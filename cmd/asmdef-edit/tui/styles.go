package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

var (
	// TitleStyle is used for the assembly name header.
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue).
			Padding(0, 1).
			Bold(true)

	// SectionStyle is used for section headers (references, platforms...).
	SectionStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// LabelStyle is used for field names.
	LabelStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	// TrueStyle and FalseStyle render concrete boolean values.
	TrueStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	FalseStyle = lipgloss.NewStyle().Foreground(colorText)

	// MixedStyle renders fields the selected records disagree on.
	MixedStyle = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)

	// UnresolvedStyle grays out dangling references.
	UnresolvedStyle = lipgloss.NewStyle().Foreground(colorOverlay0)

	// ErrorStyle renders load and save failures.
	ErrorStyle = lipgloss.NewStyle().Foreground(colorRed)

	// CursorStyle highlights the selected editor row.
	CursorStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Background(colorSurface0).
			Bold(true)

	// StatusStyle renders the editor's one-line status bar.
	StatusStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Italic(true)
)
