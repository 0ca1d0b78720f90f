package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/glitchtop/internal/theme"
)

func TestThemePreview(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	assert.Equal(t, "·+#█", ThemePreview(theme.Get(theme.Standard), 1))
	assert.Equal(t, "..--==##", ThemePreview(theme.Get(theme.ASCII), 2))
	assert.Equal(t, "01Ӝ▓", ThemePreview(theme.Get(theme.Matrix), 0))
}

func TestRenderThemeList(t *testing.T) {
	out := ansi.Strip(RenderThemeList(theme.Matrix))

	for _, n := range theme.Names() {
		assert.Contains(t, out, string(n))
	}

	var matrixLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "matrix") {
			matrixLine = line
		}
	}
	require.NotEmpty(t, matrixLine)
	assert.Contains(t, matrixLine, SymbolActive)
	assert.Contains(t, matrixLine, "ӜӜӜӜӜӜ")
}

func TestThemeOptions(t *testing.T) {
	opts := ThemeOptions()
	require.Len(t, opts, len(theme.Names()))
	for i, n := range theme.Names() {
		assert.Equal(t, string(n), opts[i].Value)
		assert.True(t, strings.HasPrefix(ansi.Strip(opts[i].Key), string(n)))
	}
}
