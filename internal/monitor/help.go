package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/glitchtop/internal/theme"
)

var (
	overlayFrame = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 2)

	overlayHeading = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
)

// renderHelpOverlay replaces the dashboard with the key reference and the
// live runtime switches, centered on screen.
func (m Model) renderHelpOverlay() string {
	bindings := m.help
	bindings.ShowAll = true

	sections := []string{
		overlayHeading.Render("Keyboard Shortcuts"),
		"",
		bindings.View(m.keys),
		"",
		overlayHeading.Render("Runtime"),
		m.runtimeSummary(),
		"",
		overlayHeading.Render("Themes"),
		themeRoster(m.themes.Active()),
		"",
		LabelStyle.Render("? or esc to return"),
	}

	w, h := m.size()
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
		overlayFrame.Render(strings.Join(sections, "\n")))
}

func (m Model) runtimeSummary() string {
	cycle := "off"
	if m.themes.CycleEnabled() {
		cycle = "every " + m.themes.CycleInterval().String()
	}
	rows := [][2]string{
		{"glitch", onOff(m.glitch.Enabled())},
		{"threshold", fmt.Sprintf("%.0f%%", m.threshold)},
		{"refresh", m.interval.String()},
		{"theme cycle", cycle},
	}

	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s", LabelStyle.Render(fmt.Sprintf("%-12s", r[0])), r[1])
	}
	return b.String()
}

// themeRoster lists every theme with its glyph ramp, marking the active one.
func themeRoster(active theme.Name) string {
	names := theme.Names()
	lines := make([]string, len(names))
	for i, n := range names {
		marker := "  "
		if n == active {
			marker = overlayHeading.Render("▸ ")
		}
		g := theme.Get(n).Glyphs()
		lines[i] = fmt.Sprintf("%s%-10s %s", marker, n, strings.Join(g[:], ""))
	}
	return strings.Join(lines, "\n")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
