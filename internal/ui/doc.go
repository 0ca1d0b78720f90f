// Package ui holds the terminal pieces glitchtop prints outside the
// dashboard frame, plus the table the process panel embeds.
//
// Colors are ANSI codes so they degrade on basic terminals: ColorSuccess
// (green) for confirmations, ColorError (red) for the fatal status line.
// DisableColors switches lipgloss to monochrome for --no-color.
//
// RenderSimpleTable wraps the Bubbles table for one-shot, unfocused output.
// RenderThemeList and PickTheme back the `glitchtop themes` command.
package ui
