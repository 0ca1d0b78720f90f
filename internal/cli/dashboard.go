package cli

import (
	stderrors "errors"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rileyhilliard/glitchtop/internal/config"
	"github.com/rileyhilliard/glitchtop/internal/errors"
	"github.com/rileyhilliard/glitchtop/internal/glitch"
	"github.com/rileyhilliard/glitchtop/internal/logger"
	"github.com/rileyhilliard/glitchtop/internal/metrics"
	"github.com/rileyhilliard/glitchtop/internal/monitor"
	"github.com/rileyhilliard/glitchtop/internal/theme"
)

// isTerminal reports whether stdin and stdout are both interactive.
// Replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

// dashboardCommand loads config and runs the TUI until the user quits.
func dashboardCommand(cmd *cobra.Command, demo bool) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// Settle the theme while stderr is still visible; the log redirect
	// below would swallow the fallback warning.
	settleTheme(cfg, logger.NewEnvLogger("[config]"))

	if !isTerminal() {
		return errors.New(errors.ErrDisplay,
			"glitchtop needs an interactive terminal",
			"Run it directly in a terminal, not through a pipe or redirect.")
	}

	restore, err := redirectLogs(os.Getenv(logger.LogFileEnvVar))
	if err != nil {
		return err
	}
	defer restore()

	dashLog := logger.NewEnvLogger("[glitchtop]")
	model := monitor.NewModel(dashboardOptions(cfg, demo, dashLog, time.Now))

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		if stderrors.Is(err, tea.ErrInterrupted) {
			return errors.NewUserHalt()
		}
		return errors.WrapWithCode(err, errors.ErrDisplay,
			"Display driver failed",
			"Check that your terminal supports the alternate screen.")
	}
	if m, ok := final.(monitor.Model); ok && m.Halted() {
		return errors.NewUserHalt()
	}
	return nil
}

// settleTheme replaces an unknown cfg.Theme with the default, warning once.
func settleTheme(cfg *config.Config, log logger.Logger) {
	cfg.Theme = string(config.ResolveTheme(cfg, log))
}

// dashboardOptions turns a validated config into monitor options.
func dashboardOptions(cfg *config.Config, demo bool, dashLog logger.Logger, now func() time.Time) monitor.Options {
	var source metrics.Source
	if demo {
		source = metrics.NewSynthetic(runtime.NumCPU(), uint64(now().UnixNano()))
	} else {
		source = metrics.NewCollector(metrics.CollectorConfig{
			TopProcesses: cfg.TopProcesses,
			GPUTimeout:   cfg.GPUTimeout,
			Logger:       dashLog,
		})
	}

	name := config.ResolveTheme(cfg, dashLog)
	return monitor.Options{
		Source:          source,
		Themes:          theme.NewState(name, cfg.ThemeCycleEnabled, cfg.ThemeCycleInterval, now()),
		Glitch:          glitch.New(cfg.GlitchEnabled),
		GlitchThreshold: cfg.GlitchThreshold,
		Interval:        cfg.Interval(),
		TopProcesses:    cfg.TopProcesses,
		Logger:          dashLog,
		Now:             now,
	}
}

// redirectLogs points the standard logger at path for the lifetime of the
// alternate screen, or discards it when path is empty. The returned func
// restores stderr.
func redirectLogs(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}

	f, err := tea.LogToFile(path, "glitchtop")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot open log file "+path,
			"Check that "+logger.LogFileEnvVar+" points at a writable file.")
	}
	return func() {
		f.Close()
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
	}, nil
}
