package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rileyhilliard/glitchtop/internal/config"
	"github.com/rileyhilliard/glitchtop/internal/errors"
	"github.com/rileyhilliard/glitchtop/internal/ui"
)

// Global flags
var (
	cfgFile string
	noColor bool
)

// Dashboard flags
var (
	noGlitchFlag bool
	demoFlag     bool
)

// flagKeys maps root flags onto config keys. Flags only override the
// config file and environment when set explicitly.
var flagKeys = map[string]string{
	"theme":     "theme",
	"cycle":     "theme_cycle_enabled",
	"rate":      "refresh_rate",
	"threshold": "glitch_threshold",
}

// rootCmd runs the dashboard when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "glitchtop",
	Short: "Glitch-styled terminal system monitor",
	Long: `glitchtop renders live CPU, memory, disk, network, process, GPU and
sensor readings as a themed glyph dashboard. When the machine is under
load the panels start to corrupt.

Keys: q quit, t next theme, g toggle glitch, c toggle auto-cycle, ? help.

Examples:
  glitchtop
  glitchtop --theme matrix --cycle
  glitchtop --demo --no-glitch`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd, demoFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.glitchtop.yaml or ~/.config/glitchtop/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	addDashboardFlags(rootCmd)
}

// addDashboardFlags registers the flags that shape a dashboard run.
func addDashboardFlags(cmd *cobra.Command) {
	cmd.Flags().String("theme", "", "starting theme (standard, runes, matrix, braille, ascii)")
	cmd.Flags().Bool("cycle", false, "rotate through themes automatically")
	cmd.Flags().Float64("rate", 0, "refresh rate in ticks per second")
	cmd.Flags().Float64("threshold", 0, "average CPU percent that triggers corruption")
	cmd.Flags().BoolVar(&noGlitchFlag, "no-glitch", false, "disable the corruption effect")
	cmd.Flags().BoolVar(&demoFlag, "demo", false, "run against synthetic metrics instead of this machine")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	return exitCode(err, os.Stdout, os.Stderr)
}

// exitCode prints the final status line for err and maps it to an exit
// code. An interrupted program counts as a user halt.
func exitCode(err error, stdout, stderr io.Writer) int {
	if stderrors.Is(err, tea.ErrInterrupted) {
		err = errors.NewUserHalt()
	}
	switch {
	case err == nil:
	case errors.IsUserHalt(err):
		fmt.Fprintln(stdout, errors.Status(err))
	default:
		fmt.Fprintf(stderr, "%s %s\n", ui.Failure(ui.SymbolFail), errors.Status(err))
		var gtErr *errors.Error
		if stderrors.As(err, &gtErr) {
			if gtErr.Cause != nil {
				fmt.Fprintf(stderr, "\n  %s\n", gtErr.Cause.Error())
			}
			if gtErr.Suggestion != "" {
				fmt.Fprintf(stderr, "\n  %s\n", gtErr.Suggestion)
			}
		}
	}
	return errors.ExitCode(err)
}

// loadConfig merges defaults, the config file, GLITCHTOP_* env vars and
// any explicitly set flags, in increasing precedence. It returns the
// config and the file it came from ("" when none was found).
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	v := config.NewViper()
	if err := bindFlags(v, cmd); err != nil {
		return nil, "", err
	}

	path, err := config.Find(cfgFile)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadViper(v, path)
	if err != nil {
		return nil, "", err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.Flags()
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to bind --"+name,
				"This is a bug; please report it")
		}
	}
	if f := flags.Lookup("no-glitch"); f != nil && f.Changed && f.Value.String() == "true" {
		v.Set("glitch_enabled", false)
	}
	return nil
}
