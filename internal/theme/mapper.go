package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Band thresholds. Each bound is exclusive on the upper end.
const (
	medThreshold      = 25.0
	highThreshold     = 50.0
	criticalThreshold = 75.0
)

// Colour ramp from calm to alarming, ANSI codes for broad terminal support.
const (
	ColorLow      lipgloss.Color = "2" // green
	ColorMed      lipgloss.Color = "6" // cyan
	ColorHigh     lipgloss.Color = "3" // yellow
	ColorCritical lipgloss.Color = "1" // red
)

var ramp = [4]lipgloss.Color{ColorLow, ColorMed, ColorHigh, ColorCritical}

// Clamp limits value to [0, 100]. NaN is treated as 0.
func Clamp(value float64) float64 {
	switch {
	case math.IsNaN(value), value < 0:
		return 0
	case value > 100:
		return 100
	default:
		return value
	}
}

// BandFor maps a value to its band: [0,25) low, [25,50) med, [50,75) high,
// [75,100] critical. Out-of-range values are clamped first.
func BandFor(value float64) Band {
	value = Clamp(value)
	switch {
	case value < medThreshold:
		return BandLow
	case value < highThreshold:
		return BandMed
	case value < criticalThreshold:
		return BandHigh
	default:
		return BandCritical
	}
}

// ColorFor returns the ramp colour for a 0-100 value.
func ColorFor(value float64) lipgloss.Color {
	return ramp[BandFor(value)]
}

// BandColor returns the ramp colour for a band.
func BandColor(b Band) lipgloss.Color {
	if b < BandLow || b > BandCritical {
		b = BandLow
	}
	return ramp[b]
}
