package monitor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionHeader_ExactWidth(t *testing.T) {
	for _, width := range []int{6, 10, 20, 47, 120} {
		h := SectionHeader("CPU [ 89.5% ]", "", width, BorderCPU)
		assert.Equal(t, width, lipgloss.Width(h), "width %d", width)

		h = SectionHeader("GPU", "RTX 4090", width, BorderGPU)
		assert.Equal(t, width, lipgloss.Width(h), "width %d with value", width)
	}
}

func TestSectionHeader_Content(t *testing.T) {
	h := SectionHeader("DISK I/O", "live", 30, BorderDisk)
	assert.True(t, strings.HasPrefix(h, "╭─ DISK I/O "))
	assert.Contains(t, h, " live ")
	assert.True(t, strings.HasSuffix(h, "─╮"))
}

func TestSectionContentLine_ClipsAndPads(t *testing.T) {
	line := SectionContentLine("short", 20, BorderCPU)
	assert.Equal(t, 20, lipgloss.Width(line))
	assert.Equal(t, "│ short"+strings.Repeat(" ", 12)+"│", line)

	long := SectionContentLine(strings.Repeat("x", 100), 20, BorderCPU)
	assert.Equal(t, 20, lipgloss.Width(long))
	assert.Equal(t, "│ "+strings.Repeat("x", 16)+" │", long)
}

func TestBox_Dimensions(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		width  int
		height int
	}{
		{"empty body", "", 20, 5},
		{"body fits", "a\nb", 20, 5},
		{"body overflows", "1\n2\n3\n4\n5\n6\n7", 12, 4},
		{"tiny box", "hello", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := Box("T", "", tt.body, tt.width, tt.height, BorderCPU)
			lines := strings.Split(box, "\n")

			wantW, wantH := tt.width, tt.height
			if wantW < minBoxWidth {
				wantW = minBoxWidth
			}
			if wantH < minBoxHeight {
				wantH = minBoxHeight
			}
			require.Len(t, lines, wantH)
			for _, l := range lines {
				assert.Equal(t, wantW, lipgloss.Width(l))
			}
		})
	}
}

func TestBoxInnerSize(t *testing.T) {
	w, h := BoxInnerSize(30, 12)
	assert.Equal(t, 26, w)
	assert.Equal(t, 10, h)

	w, h = BoxInnerSize(2, 1)
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, h)
}
