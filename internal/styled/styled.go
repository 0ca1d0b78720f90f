// Package styled models text as an ordered list of runs, each carrying its
// own lipgloss style. Panels build Text values, the glitch engine rewrites
// them run by run, and Render turns them into terminal output.
package styled

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Run is a contiguous piece of content drawn with one style.
type Run struct {
	Content string
	Style   lipgloss.Style
}

// Text is an ordered sequence of runs.
type Text struct {
	runs []Run
}

// New builds a Text from runs.
func New(runs ...Run) Text {
	t := Text{}
	for _, r := range runs {
		t = t.Append(r.Content, r.Style)
	}
	return t
}

// Plain builds a single unstyled run.
func Plain(content string) Text {
	return New(Run{Content: content, Style: lipgloss.NewStyle()})
}

// Append returns a new Text with the run added at the end. Empty content is dropped.
func (t Text) Append(content string, style lipgloss.Style) Text {
	if content == "" {
		return t
	}
	runs := make([]Run, len(t.runs), len(t.runs)+1)
	copy(runs, t.runs)
	runs = append(runs, Run{Content: content, Style: style})
	return Text{runs: runs}
}

// Concat returns a new Text with other's runs after t's.
func (t Text) Concat(other Text) Text {
	runs := make([]Run, 0, len(t.runs)+len(other.runs))
	runs = append(runs, t.runs...)
	runs = append(runs, other.runs...)
	return Text{runs: runs}
}

// Join concatenates texts with sep (an unstyled run) between them.
func Join(texts []Text, sep string) Text {
	out := Text{}
	for i, t := range texts {
		if i > 0 {
			out = out.Append(sep, lipgloss.NewStyle())
		}
		out = out.Concat(t)
	}
	return out
}

// Runs returns a copy of the runs.
func (t Text) Runs() []Run {
	out := make([]Run, len(t.runs))
	copy(out, t.runs)
	return out
}

// Len returns the number of runs.
func (t Text) Len() int {
	return len(t.runs)
}

// String returns the content without styling.
func (t Text) String() string {
	var b strings.Builder
	for _, r := range t.runs {
		b.WriteString(r.Content)
	}
	return b.String()
}

// Render draws every run with its style. Newlines are kept outside the
// styled segments so multi-line runs do not get padded by lipgloss.
func (t Text) Render() string {
	var b strings.Builder
	for _, r := range t.runs {
		lines := strings.Split(r.Content, "\n")
		for i, line := range lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(r.Style.Render(line))
			}
		}
	}
	return b.String()
}
