package monitor

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/rileyhilliard/glitchtop/internal/glitch"
	"github.com/rileyhilliard/glitchtop/internal/metrics"
	"github.com/rileyhilliard/glitchtop/internal/styled"
	"github.com/rileyhilliard/glitchtop/internal/theme"
	"github.com/rileyhilliard/glitchtop/internal/ui"
)

// Panel is one rendered dashboard unit. It lives for a single frame.
type Panel struct {
	Title  string
	Value  string
	Border lipgloss.Color
	Body   styled.Text

	// Intensity is the glitch intensity the body was generated with.
	Intensity float64
}

// Render boxes the panel at the given outer size.
func (p Panel) Render(width, height int) string {
	return Box(p.Title, p.Value, p.Body.Render(), width, height, p.Border)
}

const (
	// CPUGridColumns is the number of cores per CPU grid row.
	CPUGridColumns = 4

	MemoryBarHeight = 10
	MemoryBarWidth  = 20

	// memoryGlitchFloor is the pressure above which the bar starts to corrupt.
	memoryGlitchFloor = 0.8

	// ProcessNameWidth is the NAME column width; longer names are cut.
	ProcessNameWidth = 15

	// Entropy is drawn at a fixed size and clipped by its box.
	EntropyWidth  = 96
	EntropyHeight = 2

	bytesPerMB = 1024 * 1024
)

var (
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Faint(true)
	readStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	writeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

func placeholder(msg string) styled.Text {
	return styled.New(styled.Run{Content: msg, Style: PlaceholderStyle})
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// CPUIntensity returns the mean core load and the glitch intensity it
// earns: avg/100 once the mean exceeds threshold, otherwise 0.
func CPUIntensity(cores []float64, threshold float64) (avg, intensity float64) {
	if len(cores) == 0 {
		return 0, 0
	}
	var sum float64
	for _, c := range cores {
		sum += c
	}
	avg = sum / float64(len(cores))
	if avg > threshold {
		intensity = clamp01(avg / 100)
	}
	return avg, intensity
}

// CPUPanel draws one glyph per core in a wrapping grid.
func CPUPanel(cores []float64, th theme.Theme, eng *glitch.Engine, threshold float64) Panel {
	avg, intensity := CPUIntensity(cores, threshold)
	p := Panel{
		Title:     fmt.Sprintf("CPU [ %.1f%% ]", avg),
		Border:    BorderCPU,
		Intensity: intensity,
	}
	if len(cores) == 0 {
		p.Body = placeholder("no cpu data")
		return p
	}

	grid := styled.Text{}
	for i, c := range cores {
		grid = grid.Append(" "+th.GlyphFor(c)+" ", lipgloss.NewStyle().Foreground(theme.ColorFor(c)))
		if (i+1)%CPUGridColumns == 0 && i < len(cores)-1 {
			grid = grid.Append("\n", lipgloss.NewStyle())
		}
	}
	p.Body = eng.Corrupt(grid, intensity)
	return p
}

// MemoryIntensity is (pressure-0.8)*2 above 80% pressure, else 0.
func MemoryIntensity(pressure float64) float64 {
	pressure = clamp01(pressure)
	if pressure <= memoryGlitchFloor {
		return 0
	}
	return clamp01((pressure - memoryGlitchFloor) * 2)
}

// MemoryFilledRows is the number of bar rows lit for pressure.
func MemoryFilledRows(pressure float64) int {
	return int(math.Floor(clamp01(pressure) * MemoryBarHeight))
}

// MemoryPanel draws a vertical fill bar, filled from the bottom.
func MemoryPanel(pressure float64, th theme.Theme, eng *glitch.Engine) Panel {
	pressure = clamp01(pressure)
	intensity := MemoryIntensity(pressure)
	filled := MemoryFilledRows(pressure)

	fill := th.Glyph(theme.BandMed)
	if pressure > memoryGlitchFloor {
		fill = th.Glyph(theme.BandCritical)
	}
	fillStyle := lipgloss.NewStyle().Foreground(theme.ColorFor(pressure * 100))
	empty := th.Glyph(theme.BandLow)

	bar := styled.Text{}
	for row := 0; row < MemoryBarHeight; row++ {
		if row > 0 {
			bar = bar.Append("\n", lipgloss.NewStyle())
		}
		level := MemoryBarHeight - 1 - row
		if level < filled {
			bar = bar.Append(strings.Repeat(fill, MemoryBarWidth), fillStyle)
		} else {
			bar = bar.Append(strings.Repeat(empty, MemoryBarWidth), dimStyle)
		}
	}

	return Panel{
		Title:     fmt.Sprintf("MEM [ %.1f%% ]", pressure*100),
		Border:    BorderMemory,
		Body:      eng.Corrupt(bar, intensity),
		Intensity: intensity,
	}
}

// DiskPanel shows cumulative read and write totals in MB.
func DiskPanel(disk metrics.DiskCounters) Panel {
	body := styled.New(
		styled.Run{Content: fmt.Sprintf("R: %.1f MB\n", float64(disk.ReadBytes)/bytesPerMB), Style: readStyle},
		styled.Run{Content: fmt.Sprintf("W: %.1f MB", float64(disk.WriteBytes)/bytesPerMB), Style: writeStyle},
	)
	return Panel{Title: "DISK I/O", Border: BorderDisk, Body: body}
}

// TruncateName cuts s to at most n characters.
func TruncateName(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// processColumns sizes NAME by display cells so wide-character names keep
// all ProcessNameWidth runes instead of being cut again by the table.
func processColumns(names []string) []ui.TableColumn {
	nameWidth := ProcessNameWidth
	for _, n := range names {
		nameWidth = max(nameWidth, lipgloss.Width(n))
	}
	return []ui.TableColumn{
		{Title: "PID", Width: 7, Right: true},
		{Title: "NAME", Width: nameWidth},
		{Title: "CPU%", Width: 6, Right: true},
		{Title: "MEM%", Width: 6, Right: true},
	}
}

// ProcessPanel lists at most limit processes in the order given.
func ProcessPanel(procs []metrics.Process, limit int) Panel {
	p := Panel{Title: "TOP PROCS", Border: BorderProcesses}
	if limit > 0 && len(procs) > limit {
		procs = procs[:limit]
	}
	if len(procs) == 0 {
		p.Body = placeholder("no process data")
		return p
	}

	rows := make([][]string, len(procs))
	names := make([]string, len(procs))
	for i, proc := range procs {
		names[i] = TruncateName(proc.Name, ProcessNameWidth)
		rows[i] = []string{
			fmt.Sprintf("%d", proc.PID),
			names[i],
			fmt.Sprintf("%5.1f", proc.CPUPercent),
			fmt.Sprintf("%5.1f", proc.MemPercent),
		}
	}
	p.Body = styled.Plain(ui.RenderSimpleTable(processColumns(names), rows))
	return p
}

// gpuBarWidth is the glyph count of the GPU utilisation bar.
const gpuBarWidth = 10

// GPUPanel shows utilisation, memory and thermals, or a placeholder.
func GPUPanel(gpu *metrics.GPU, th theme.Theme) Panel {
	p := Panel{Title: "GPU", Border: BorderGPU}
	if gpu == nil {
		p.Body = placeholder("no gpu detected")
		return p
	}
	p.Value = gpu.Name

	util := theme.Clamp(gpu.Utilization)
	lit := int(util / 100 * gpuBarWidth)
	utilStyle := lipgloss.NewStyle().Foreground(theme.ColorFor(util))
	memStyle := lipgloss.NewStyle().Foreground(theme.ColorFor(gpu.MemPercent()))

	p.Body = styled.New(
		styled.Run{Content: "UTIL ", Style: LabelStyle},
		styled.Run{Content: strings.Repeat(th.GlyphFor(util), lit), Style: utilStyle},
		styled.Run{Content: strings.Repeat(th.Glyph(theme.BandLow), gpuBarWidth-lit), Style: dimStyle},
		styled.Run{Content: fmt.Sprintf(" %.0f%%\n", util), Style: utilStyle},
		styled.Run{Content: "VRAM ", Style: LabelStyle},
		styled.Run{Content: humanize.IBytes(gpu.MemUsed) + " / " + humanize.IBytes(gpu.MemTotal) + "\n", Style: memStyle},
		styled.Run{Content: fmt.Sprintf("TEMP %d°C  PWR %dW", gpu.Temperature, gpu.PowerWatts), Style: ValueStyle},
	)
	return p
}

// sensorLabelWidth is the width sensor names are padded or cut to.
const sensorLabelWidth = 14

// SensorsPanel lists temperatures, coloured against each sensor's
// critical point when the hardware reports one.
func SensorsPanel(temps []metrics.Temperature) Panel {
	p := Panel{Title: "SENSORS", Border: BorderSensors}
	if len(temps) == 0 {
		p.Body = placeholder("no temperature data")
		return p
	}

	lines := make([]styled.Text, 0, len(temps))
	for _, t := range temps {
		load := t.Celsius
		if t.Critical > 0 {
			load = t.Celsius / t.Critical * 100
		}
		label := fmt.Sprintf("%-*s", sensorLabelWidth, TruncateName(t.Sensor, sensorLabelWidth))
		lines = append(lines, styled.New(
			styled.Run{Content: label, Style: LabelStyle},
			styled.Run{Content: fmt.Sprintf(" %5.1f°C", t.Celsius), Style: lipgloss.NewStyle().Foreground(theme.ColorFor(load))},
		))
	}
	p.Body = styled.Join(lines, "\n")
	return p
}

// EntropyIntensity combines CPU and memory load into one 0-1 figure.
func EntropyIntensity(avgCPU, memoryPressure float64) float64 {
	return clamp01((avgCPU/100 + memoryPressure) / 2)
}

// EntropyPanel is decorative noise whose density follows intensity.
func EntropyPanel(intensity float64, th theme.Theme, eng *glitch.Engine) Panel {
	intensity = clamp01(intensity)
	rng := eng.Rand()

	noise := styled.Text{}
	for row := 0; row < EntropyHeight; row++ {
		if row > 0 {
			noise = noise.Append("\n", lipgloss.NewStyle())
		}
		for col := 0; col < EntropyWidth; col++ {
			v := intensity*100 + (rng.Float64()-0.5)*50
			noise = noise.Append(th.GlyphFor(v), lipgloss.NewStyle().Foreground(theme.ColorFor(v)))
		}
	}

	return Panel{
		Title:     "ENTROPY",
		Value:     fmt.Sprintf("%.2f", intensity),
		Border:    BorderEntropy,
		Body:      eng.Corrupt(noise, intensity),
		Intensity: intensity,
	}
}

// NetworkPanel is the footer: totals, the delta sparkline and battery state.
func NetworkPanel(net metrics.NetCounters, history []int64, battery *metrics.Battery) Panel {
	body := styled.New(
		styled.Run{
			Content: fmt.Sprintf("NET_IO :: UP: %.2f MB | DOWN: %.2f MB ", float64(net.BytesSent)/bytesPerMB, float64(net.BytesRecv)/bytesPerMB),
			Style:   ValueStyle,
		},
		styled.Run{Content: Sparkline(history, NetHistorySize), Style: lipgloss.NewStyle().Foreground(ColorGraph)},
	)
	if battery != nil {
		body = body.Append(" | "+BatteryText(battery), lipgloss.NewStyle().Foreground(theme.ColorFor(100-battery.Percent)))
	}
	return Panel{Title: "NETWORK", Border: BorderNetwork, Body: body}
}

// BatteryText formats battery state, e.g. "BAT 80% [AC]".
func BatteryText(b *metrics.Battery) string {
	if b == nil {
		return ""
	}
	s := fmt.Sprintf("BAT %.0f%%", b.Percent)
	if b.Plugged {
		s += " [AC]"
	}
	return s
}
