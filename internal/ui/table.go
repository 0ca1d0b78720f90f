package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Table colours: dim rule, bright header, plain cells.
const (
	tableRuleColor   lipgloss.Color = "8"
	tableHeaderColor lipgloss.Color = "6"
	tableCellColor   lipgloss.Color = "7"
)

// TableColumn describes one column. Right-aligned columns suit numbers.
type TableColumn struct {
	Title string
	Width int
	Right bool
}

// NewTable builds an unfocused table tall enough to show every row.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{Title: c.align(c.Title), Width: c.Width}
	}

	aligned := make([]table.Row, len(rows))
	for i, row := range rows {
		out := make(table.Row, len(row))
		for j, cell := range row {
			if j < len(columns) {
				cell = columns[j].align(cell)
			}
			out[j] = cell
		}
		aligned[i] = out
	}

	// Height is set before the styles, so it counts one header line and
	// the viewport holds exactly len(rows) lines.
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(aligned),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(tableRuleColor).
		BorderBottom(true).
		Bold(true).
		Foreground(tableHeaderColor)
	s.Cell = s.Cell.Foreground(tableCellColor)
	// The cursor row would otherwise be highlighted.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}

// align left-pads s to the column width when the column is right-aligned.
func (c TableColumn) align(s string) string {
	if !c.Right {
		return s
	}
	if w := lipgloss.Width(s); w < c.Width {
		return strings.Repeat(" ", c.Width-w) + s
	}
	return s
}

// RenderSimpleTable renders rows as a static table; no rows renders nothing.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}
	return NewTable(columns, tableRows).View()
}
