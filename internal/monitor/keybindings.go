package monitor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap lists the dashboard's key bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Quit         key.Binding
	NextTheme    key.Binding
	ToggleGlitch key.Binding
	ToggleCycle  key.Binding
	Help         key.Binding
	Close        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "halt"),
		),
		NextTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		ToggleGlitch: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "toggle glitch"),
		),
		ToggleCycle: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle theme cycle"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.NextTheme, k.ToggleGlitch, k.ToggleCycle, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTheme, k.ToggleGlitch, k.ToggleCycle},
		{k.Help, k.Close, k.Quit},
	}
}

// HandleKeyMsg processes keyboard input. Returns true if the key was handled.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Help toggle takes priority
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return true, nil
	}
	if m.showHelp && key.Matches(msg, m.keys.Close) {
		m.showHelp = false
		return true, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.halted = true
		return true, tea.Quit

	case key.Matches(msg, m.keys.NextTheme):
		m.themes.Advance(m.now())
		m.log.Debug("theme switched to %s", m.themes.Active())
		m.render()
		return true, nil

	case key.Matches(msg, m.keys.ToggleGlitch):
		m.glitch.SetEnabled(!m.glitch.Enabled())
		m.render()
		return true, nil

	case key.Matches(msg, m.keys.ToggleCycle):
		m.themes.SetCycleEnabled(!m.themes.CycleEnabled(), m.now())
		m.render()
		return true, nil
	}

	return false, nil
}
