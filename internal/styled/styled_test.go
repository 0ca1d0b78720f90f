package styled

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestAppendDoesNotMutateReceiver(t *testing.T) {
	base := Plain("a")
	grown := base.Append("b", lipgloss.NewStyle().Bold(true))

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, grown.Len())
	assert.Equal(t, "ab", grown.String())
}

func TestAppendDropsEmpty(t *testing.T) {
	txt := Plain("x").Append("", lipgloss.NewStyle())
	assert.Equal(t, 1, txt.Len())
}

func TestRunsReturnsCopy(t *testing.T) {
	txt := Plain("abc")
	runs := txt.Runs()
	runs[0].Content = "zzz"
	assert.Equal(t, "abc", txt.String())
}

func TestJoin(t *testing.T) {
	txt := Join([]Text{Plain("one"), Plain("two"), Plain("three")}, "\n")
	assert.Equal(t, "one\ntwo\nthree", txt.String())
	assert.Equal(t, 5, txt.Len())
}

func TestRenderKeepsNewlinesOutsideStyles(t *testing.T) {
	txt := New(
		Run{Content: " # ", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("1"))},
		Run{Content: "\n", Style: lipgloss.NewStyle()},
		Run{Content: " · ", Style: lipgloss.NewStyle().Foreground(lipgloss.Color("2"))},
	)
	assert.Equal(t, " # \n · ", txt.Render())
}

func TestRenderMultiLineRunIsNotPadded(t *testing.T) {
	txt := Plain("long line\nx")
	assert.Equal(t, "long line\nx", txt.Render())
}
