package monitor

import (
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	// Plain text output so tests can assert on glyphs rather than escape codes.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestSparkline(t *testing.T) {
	tests := []struct {
		name    string
		samples []int64
		width   int
		want    string
	}{
		{"empty", nil, 10, ""},
		{"zero width", []int64{1, 2}, 0, ""},
		{"flat series sits on the floor", []int64{5, 5, 5}, 10, "▁▁▁"},
		{"min to max", []int64{0, 70, 35, 70}, 10, "▁█▄█"},
		{"negative deltas floor at zero", []int64{-500, 0, 100}, 10, "▁▁█"},
		{"compressed keeps peaks", []int64{0, 0, 0, 100, 0, 0}, 3, "▁█▁"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sparkline(tt.samples, tt.width))
		})
	}
}

func TestSparkline_WidthNeverExceeded(t *testing.T) {
	samples := make([]int64, NetHistorySize)
	for i := range samples {
		samples[i] = int64(i * i)
	}
	for _, width := range []int{1, 7, 20, 39, 40, 80} {
		got := Sparkline(samples, width)
		want := width
		if want > len(samples) {
			want = len(samples)
		}
		assert.Equal(t, want, utf8.RuneCountInString(got), "width %d", width)
	}
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, 0.0, normalizeValue(5, 5, 5))
	assert.Equal(t, 0.5, normalizeValue(50, 0, 100))
	assert.Equal(t, 1.0, normalizeValue(100, 0, 100))
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, clampInt(-1, 7))
	assert.Equal(t, 7, clampInt(12, 7))
	assert.Equal(t, 3, clampInt(3, 7))
}

func TestResampleData_DownsamplingPreservesPeaks(t *testing.T) {
	data := []float64{1, 9, 1, 1, 1, 1, 1, 8}
	assert.Equal(t, []float64{9, 1, 1, 8}, resampleData(data, 4))
	assert.Equal(t, data, resampleData(data, 20))
	assert.Nil(t, resampleData(nil, 4))
}
