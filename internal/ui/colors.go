package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors as ANSI codes for terminal compatibility.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
)

// Success renders s in the success colour.
func Success(s string) string {
	return lipgloss.NewStyle().Foreground(ColorSuccess).Render(s)
}

// Failure renders s in the error colour.
func Failure(s string) string {
	return lipgloss.NewStyle().Foreground(ColorError).Bold(true).Render(s)
}

// DisableColors switches lipgloss to plain output (--no-color).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ColorsDisabled reports whether output is currently monochrome.
func ColorsDisabled() bool {
	return lipgloss.ColorProfile() == termenv.Ascii
}
