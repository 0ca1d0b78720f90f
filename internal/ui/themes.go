package ui

import (
	stderrors "errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/glitchtop/internal/errors"
	"github.com/rileyhilliard/glitchtop/internal/theme"
)

var themeColumns = []TableColumn{
	{Title: " ", Width: 1},
	{Title: "THEME", Width: 10},
	{Title: "LOW", Width: 4},
	{Title: "MED", Width: 4},
	{Title: "HIGH", Width: 4},
	{Title: "CRIT", Width: 4},
	{Title: "RAMP", Width: 24},
}

// ThemePreview renders a theme's glyph ramp, each band in its colour.
func ThemePreview(t theme.Theme, repeat int) string {
	if repeat < 1 {
		repeat = 1
	}
	var b strings.Builder
	for band := theme.BandLow; band <= theme.BandCritical; band++ {
		style := lipgloss.NewStyle().Foreground(theme.BandColor(band))
		b.WriteString(style.Render(strings.Repeat(t.Glyph(band), repeat)))
	}
	return b.String()
}

// RenderThemeList renders every registered theme, marking the active one.
func RenderThemeList(active theme.Name) string {
	names := theme.Names()
	rows := make([][]string, 0, len(names))
	for _, n := range names {
		t := theme.Get(n)
		g := t.Glyphs()
		mark := SymbolPending
		if n == active {
			mark = SymbolActive
		}
		rows = append(rows, []string{
			mark, string(n), g[0], g[1], g[2], g[3],
			strings.Repeat(g[0], 6) + strings.Repeat(g[1], 6) + strings.Repeat(g[2], 6) + strings.Repeat(g[3], 6),
		})
	}
	return RenderSimpleTable(themeColumns, rows)
}

// ThemeOptions builds the picker entries, one per registered theme.
func ThemeOptions() []huh.Option[string] {
	names := theme.Names()
	options := make([]huh.Option[string], 0, len(names))
	for _, n := range names {
		label := string(n) + "  " + ThemePreview(theme.Get(n), 3)
		options = append(options, huh.NewOption(label, string(n)))
	}
	return options
}

// PickTheme asks the user to choose a theme, starting on current.
// Aborting the form is reported as a user halt.
func PickTheme(current theme.Name) (theme.Name, error) {
	selected := string(theme.Get(current).Name)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick a glyph theme").
				Description("Low to critical load, left to right").
				Options(ThemeOptions()...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return current, errors.NewUserHalt()
		}
		return current, errors.WrapWithCode(err, errors.ErrDisplay, "theme picker failed", "Run without --pick to list themes")
	}
	return theme.Name(selected), nil
}
