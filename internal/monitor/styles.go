package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Dashboard color palette. Panel borders use the ANSI ramp so they follow
// the user's terminal theme; chrome uses fixed neon accents.
const (
	ColorBorder    = lipgloss.Color("#2A2A4A")
	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorDarkBg    = lipgloss.Color("#0A0A0F")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple
	ColorGraph     = lipgloss.Color("#00FFFF") // Neon cyan
)

// Border colours per panel.
const (
	BorderCPU       = lipgloss.Color("2")
	BorderMemory    = lipgloss.Color("4")
	BorderDisk      = lipgloss.Color("3")
	BorderProcesses = lipgloss.Color("5")
	BorderGPU       = lipgloss.Color("6")
	BorderSensors   = lipgloss.Color("1")
	BorderEntropy   = lipgloss.Color("5")
	BorderNetwork   = lipgloss.Color("6")
	BorderHeader    = lipgloss.Color("5")
)

var (
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	// PlaceholderStyle marks panels whose data is unavailable.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)
)

// minBoxWidth and minBoxHeight are the smallest boxes that still show a border.
const (
	minBoxWidth  = 6
	minBoxHeight = 2
)

// SectionHeader renders the top border with the title on the left and an
// optional value on the right.
// Format: ╭─ Title ─────────────────────── Value ─╮
func SectionHeader(title, value string, width int, border lipgloss.Color) string {
	if width < minBoxWidth {
		width = minBoxWidth
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(border).Bold(true)

	// "╭─ " + title + " " ... " ╮"
	maxTitle := width - 6
	title = ansi.Truncate(title, maxTitle, "")
	left := 3 + lipgloss.Width(title) + 1
	right := 2

	var valuePart string
	if value != "" {
		room := width - left - right - 3
		if room > 0 {
			value = ansi.Truncate(value, room, "")
			valuePart = " " + value + " "
			right += lipgloss.Width(valuePart) + 1
		}
	}

	fill := width - left - right
	if fill < 0 {
		fill = 0
	}

	out := borderStyle.Render("╭─ ") + titleStyle.Render(title) + borderStyle.Render(" "+strings.Repeat("─", fill))
	if valuePart != "" {
		out += ValueStyle.Render(valuePart) + borderStyle.Render("─")
	}
	return out + borderStyle.Render("─╮")
}

// SectionFooter renders the bottom border of a section.
// Format: ╰──────────────────────────────╯
func SectionFooter(width int, border lipgloss.Color) string {
	if width < minBoxWidth {
		width = minBoxWidth
	}
	return lipgloss.NewStyle().Foreground(border).Render("╰" + strings.Repeat("─", width-2) + "╯")
}

// SectionContentLine renders one content line between side borders,
// clipped or padded to the inner width.
// Format: │ content                       │
func SectionContentLine(content string, width int, border lipgloss.Color) string {
	if width < minBoxWidth {
		width = minBoxWidth
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)

	inner := width - 4
	content = ansi.Truncate(content, inner, "")
	padding := inner - lipgloss.Width(content)
	if padding < 0 {
		padding = 0
	}
	return borderStyle.Render("│") + " " + content + strings.Repeat(" ", padding) + " " + borderStyle.Render("│")
}

// Box draws a bordered box of exactly width x height cells around the
// rendered body. Overflowing lines are clipped and short bodies padded.
func Box(title, value, body string, width, height int, border lipgloss.Color) string {
	if width < minBoxWidth {
		width = minBoxWidth
	}
	if height < minBoxHeight {
		height = minBoxHeight
	}

	lines := make([]string, 0, height)
	lines = append(lines, SectionHeader(title, value, width, border))

	var bodyLines []string
	if body != "" {
		bodyLines = strings.Split(body, "\n")
	}
	for i := 0; i < height-2; i++ {
		content := ""
		if i < len(bodyLines) {
			content = bodyLines[i]
		}
		lines = append(lines, SectionContentLine(content, width, border))
	}

	lines = append(lines, SectionFooter(width, border))
	return strings.Join(lines, "\n")
}

// BoxInnerSize returns the content area of a box of the given outer size.
func BoxInnerSize(width, height int) (int, int) {
	w, h := width-4, height-2
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}
