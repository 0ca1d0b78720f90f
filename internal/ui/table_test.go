package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "PID", Width: 7, Right: true},
		{Title: "NAME", Width: 15},
	}
	rows := []table.Row{
		{"1", "init"},
		{"2048", "postgres"},
	}

	view := ansi.Strip(NewTable(columns, rows).View())
	assert.Contains(t, view, "PID")
	assert.Contains(t, view, "NAME")
	assert.Contains(t, view, "init")
	assert.Contains(t, view, "postgres")
}

func TestNewTable_EmptyRows(t *testing.T) {
	view := NewTable([]TableColumn{{Title: "NAME", Width: 20}}, []table.Row{}).View()
	assert.Contains(t, ansi.Strip(view), "NAME")
}

func TestTableColumn_Align(t *testing.T) {
	right := TableColumn{Title: "CPU%", Width: 6, Right: true}
	left := TableColumn{Title: "NAME", Width: 6}

	assert.Equal(t, "    42", right.align("42"))
	assert.Equal(t, "toolong", right.align("toolong"))
	assert.Equal(t, "42", left.align("42"))
}

func TestRenderSimpleTable_RightAligned(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out := RenderSimpleTable([]TableColumn{{Title: "MEM%", Width: 6, Right: true}}, [][]string{{"3.5"}})
	assert.Contains(t, out, "   3.5")
	assert.Contains(t, out, "  MEM%")
}

func TestRenderSimpleTable_AllRowsVisible(t *testing.T) {
	columns := []TableColumn{{Title: "THEME", Width: 10}}
	rows := [][]string{{"one"}, {"two"}, {"three"}, {"four"}, {"five"}}

	out := ansi.Strip(RenderSimpleTable(columns, rows))
	for _, r := range rows {
		assert.Contains(t, out, r[0])
	}
	assert.GreaterOrEqual(t, len(strings.Split(out, "\n")), len(rows)+1)
}

func TestRenderSimpleTable_EmptyRows(t *testing.T) {
	assert.Equal(t, "", RenderSimpleTable([]TableColumn{{Title: "NAME", Width: 20}}, nil))
}
