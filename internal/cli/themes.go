package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/glitchtop/internal/config"
	"github.com/rileyhilliard/glitchtop/internal/errors"
	"github.com/rileyhilliard/glitchtop/internal/theme"
	"github.com/rileyhilliard/glitchtop/internal/ui"
)

var themesPick bool

// themesCmd lists the registered themes or picks one interactively.
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List glyph themes, or pick one with --pick",
	Long: `Print every registered theme with its low-to-critical glyph ramp.

With --pick, choose a theme interactively and save it to your config file
(the file glitchtop would load, or ~/.config/glitchtop/config.yaml).

Examples:
  glitchtop themes
  glitchtop themes --pick`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return themesCommand(cmd, themesPick)
	},
}

func init() {
	themesCmd.Flags().BoolVar(&themesPick, "pick", false, "choose a theme interactively and save it")
	rootCmd.AddCommand(themesCmd)
}

func themesCommand(cmd *cobra.Command, pick bool) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	active := config.ResolveTheme(cfg, nil)
	out := cmd.OutOrStdout()

	if !pick {
		fmt.Fprintln(out, ui.RenderThemeList(active))
		return nil
	}

	if !isTerminal() {
		return errors.New(errors.ErrDisplay,
			"--pick needs an interactive terminal",
			"Set 'theme:' in your config file instead.")
	}
	chosen, err := ui.PickTheme(active)
	if err != nil {
		return err
	}
	return saveTheme(out, path, chosen)
}

// saveTheme persists name to path, or to the user config when path is empty.
func saveTheme(w io.Writer, path string, name theme.Name) error {
	if path == "" {
		path = config.GlobalPath()
	}
	if path == "" {
		return errors.New(errors.ErrConfig,
			"Nowhere to save the theme",
			"Pass --config with a file path.")
	}

	if err := config.SaveTheme(path, string(name)); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to save theme",
			"Check that "+path+" is writable.")
	}
	fmt.Fprintf(w, "%s theme set to %s (%s)\n", ui.Success(ui.SymbolSuccess), name, path)
	return nil
}
