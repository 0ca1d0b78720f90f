package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rileyhilliard/glitchtop/internal/styled"
	"github.com/rileyhilliard/glitchtop/internal/theme"
)

// Fixed row budgets for the non-body strips.
const (
	HeaderHeight  = 3
	FooterHeight  = 3
	EntropyStrip  = EntropyHeight + 2
	minBodyHeight = 8

	DefaultWidth  = 120
	DefaultHeight = 40
)

// Column and stack ratios of the body.
var (
	columnRatios = []int{2, 1}       // left, right
	leftRatios   = []int{2, 3}       // cpu, processes
	rightRatios  = []int{3, 1, 1, 1} // memory, disk, sensors, gpu
)

// AppTitle heads every frame.
const AppTitle = "GLITCH_TOP // SYSTEM_MONITOR"

// HeaderInfo is the state shown in the title bar.
type HeaderInfo struct {
	Theme         theme.Name
	GlitchEnabled bool
	CycleEnabled  bool
	CycleInterval time.Duration
	Clock         time.Time
	Degraded      []string
}

// HeaderPanel renders the title bar.
func HeaderPanel(info HeaderInfo) Panel {
	onOff := func(b bool) string {
		if b {
			return "ON"
		}
		return "OFF"
	}
	cycle := onOff(info.CycleEnabled)
	if info.CycleEnabled {
		cycle = info.CycleInterval.String()
	}

	body := styled.New(
		styled.Run{Content: AppTitle, Style: HeaderTitleStyle},
		styled.Run{
			Content: fmt.Sprintf("  THEME: %s | GLITCH: %s | CYCLE: %s", info.Theme, onOff(info.GlitchEnabled), cycle),
			Style:   LabelStyle,
		},
	)
	if len(info.Degraded) > 0 {
		body = body.Append(" | DEGRADED: "+strings.Join(info.Degraded, ","), lipgloss.NewStyle().Foreground(theme.ColorHigh))
	}

	value := ""
	if !info.Clock.IsZero() {
		value = info.Clock.Format("15:04:05")
	}
	return Panel{Title: "GLITCHTOP", Value: value, Border: BorderHeader, Body: body}
}

// Frame holds one tick's panels in their layout slots.
type Frame struct {
	Header    Panel
	CPU       Panel
	Processes Panel
	Memory    Panel
	Disk      Panel
	Sensors   Panel
	GPU       Panel
	Entropy   Panel
	Footer    Panel
}

// Compose places the panels into the fixed grid and returns a frame of at
// most width x height cells. Everything is rebuilt from f on every call.
func Compose(f Frame, width, height int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	bodyHeight := height - HeaderHeight - EntropyStrip - FooterHeight
	if bodyHeight < minBodyHeight {
		bodyHeight = minBodyHeight
	}

	cols := splitRatio(width, columnRatios...)
	leftW, rightW := cols[0], cols[1]

	lh := splitRatio(bodyHeight, leftRatios...)
	left := lipgloss.JoinVertical(lipgloss.Left,
		f.CPU.Render(leftW, lh[0]),
		f.Processes.Render(leftW, lh[1]),
	)

	rh := splitRatio(bodyHeight, rightRatios...)
	right := lipgloss.JoinVertical(lipgloss.Left,
		f.Memory.Render(rightW, rh[0]),
		f.Disk.Render(rightW, rh[1]),
		f.Sensors.Render(rightW, rh[2]),
		f.GPU.Render(rightW, rh[3]),
	)

	out := lipgloss.JoinVertical(lipgloss.Left,
		f.Header.Render(width, HeaderHeight),
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		f.Entropy.Render(width, EntropyStrip),
		f.Footer.Render(width, FooterHeight),
	)
	return clip(out, width, height)
}

// splitRatio divides total by ratios; the last slot absorbs rounding.
func splitRatio(total int, ratios ...int) []int {
	sum := 0
	for _, r := range ratios {
		sum += r
	}
	out := make([]int, len(ratios))
	if sum == 0 {
		return out
	}
	used := 0
	for i, r := range ratios {
		if i == len(ratios)-1 {
			out[i] = total - used
			break
		}
		out[i] = total * r / sum
		used += out[i]
	}
	return out
}

// clip cuts a rendered block to the terminal.
func clip(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		if lipgloss.Width(l) > width {
			lines[i] = ansi.Truncate(l, width, "")
		}
	}
	return strings.Join(lines, "\n")
}
