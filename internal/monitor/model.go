package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/glitchtop/internal/glitch"
	"github.com/rileyhilliard/glitchtop/internal/logger"
	"github.com/rileyhilliard/glitchtop/internal/metrics"
	"github.com/rileyhilliard/glitchtop/internal/theme"
)

// DefaultInterval is 4 frames per second.
const DefaultInterval = 250 * time.Millisecond

// DefaultGlitchThreshold is the mean CPU load that switches on CPU corruption.
const DefaultGlitchThreshold = 80.0

// Options configures a dashboard Model.
type Options struct {
	Source          metrics.Source
	Themes          *theme.State
	Glitch          *glitch.Engine
	GlitchThreshold float64
	Interval        time.Duration
	TopProcesses    int

	// CollectTimeout bounds one metrics acquisition. Defaults to the interval.
	CollectTimeout time.Duration

	Logger logger.Logger
	Now    func() time.Time
}

// Model is the Bubble Tea model for the dashboard.
//
// A tick is: collect a snapshot off the UI goroutine, then apply it inside
// Update and sleep one interval before the next collection. Ticks never
// overlap, and View only ever returns a finished frame.
type Model struct {
	source    metrics.Source
	themes    *theme.State
	glitch    *glitch.Engine
	threshold float64
	interval  time.Duration
	timeout   time.Duration
	topN      int
	log       logger.Logger
	now       func() time.Time

	history  *NetHistory
	keys     KeyMap
	help     help.Model
	snapshot metrics.Snapshot
	hasData  bool
	frame    string

	width    int
	height   int
	showHelp bool
	quitting bool
	halted   bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// snapshotMsg carries a freshly collected snapshot.
type snapshotMsg struct {
	snapshot metrics.Snapshot
}

// NewModel creates a dashboard model. Missing options get defaults.
func NewModel(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.CollectTimeout <= 0 {
		opts.CollectTimeout = opts.Interval
	}
	if opts.GlitchThreshold <= 0 {
		opts.GlitchThreshold = DefaultGlitchThreshold
	}
	if opts.TopProcesses <= 0 {
		opts.TopProcesses = metrics.DefaultTopProcesses
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	if opts.Themes == nil {
		opts.Themes = theme.NewState(theme.Default, false, theme.DefaultCycleInterval, opts.Now())
	}
	if opts.Glitch == nil {
		opts.Glitch = glitch.New(true)
	}

	m := Model{
		source:    opts.Source,
		themes:    opts.Themes,
		glitch:    opts.Glitch,
		threshold: opts.GlitchThreshold,
		interval:  opts.Interval,
		timeout:   opts.CollectTimeout,
		topN:      opts.TopProcesses,
		log:       opts.Logger,
		now:       opts.Now,
		history:   NewNetHistory(NetHistorySize),
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
	m.render()
	return m
}

// Init triggers the first collection.
func (m Model) Init() tea.Cmd {
	return m.collectCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.HandleKeyMsg(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.render()

	case tickMsg:
		return m, m.collectCmd()

	case snapshotMsg:
		m.apply(msg.snapshot)
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.frame
}

// Halted reports whether the user asked the dashboard to stop.
func (m Model) Halted() bool {
	return m.halted
}

// Frame returns the last composed frame.
func (m Model) Frame() string {
	return m.frame
}

// Snapshot returns the snapshot the current frame was built from.
func (m Model) Snapshot() metrics.Snapshot {
	return m.snapshot
}

// History returns the network delta history.
func (m Model) History() *NetHistory {
	return m.history
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectCmd acquires one snapshot off the UI goroutine.
func (m Model) collectCmd() tea.Cmd {
	source, timeout := m.source, m.timeout
	return func() tea.Msg {
		if source == nil {
			return snapshotMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return snapshotMsg{snapshot: source.Collect(ctx)}
	}
}

// apply runs one tick: rotate the theme if due, record the network delta,
// and rebuild the frame.
func (m *Model) apply(snap metrics.Snapshot) {
	now := m.now()
	if m.themes.MaybeRotate(now) {
		m.log.Debug("theme rotated to %s", m.themes.Active())
	}
	m.history.Observe(snap.Net.Total())
	m.snapshot = snap
	m.hasData = true
	m.render()
}

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// render composes the frame from the current snapshot and settings.
func (m *Model) render() {
	w, h := m.size()
	m.frame = Compose(m.buildFrame(), w, h)
}
