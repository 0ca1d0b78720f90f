package cli

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

// buildInfo is stamped by main from ldflags.
type buildInfo struct {
	Version string
	Commit  string
	Date    string
}

var build = buildInfo{Version: "dev", Commit: "none", Date: "unknown"}

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout(), versionShort)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
	rootCmd.AddCommand(versionCmd)
}

// printVersion writes either the bare version or a two-line build summary:
//
//	glitchtop v1.2.3 (abc1234, built 2025-01-08)
//	go1.24.11 linux/amd64
func printVersion(w io.Writer, short bool) {
	v := build.resolvedVersion()
	if short {
		fmt.Fprintln(w, v)
		return
	}

	var meta []string
	if build.Commit != "" && build.Commit != "none" {
		meta = append(meta, build.Commit)
	}
	if build.Date != "" && build.Date != "unknown" {
		meta = append(meta, "built "+build.Date)
	}

	line := "glitchtop " + displayVersion(v)
	if len(meta) > 0 {
		line += " (" + strings.Join(meta, ", ") + ")"
	}
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// resolvedVersion prefers the ldflags value and falls back to the module
// version recorded by `go install`.
func (b buildInfo) resolvedVersion() string {
	if b.Version != "" && b.Version != "dev" {
		return b.Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if mv := info.Main.Version; mv != "" && mv != "(devel)" {
			return mv
		}
	}
	return b.Version
}

// displayVersion adds a v prefix to release versions.
func displayVersion(v string) string {
	if v == "" || v == "dev" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

// SetVersionInfo records ldflags build metadata. main calls it before Execute.
func SetVersionInfo(version, commit, date string) {
	build = buildInfo{Version: version, Commit: commit, Date: date}
	rootCmd.Version = displayVersion(build.resolvedVersion())
}
