// Package cli implements the glitchtop command-line interface.
//
// # Command Structure
//
// The root command runs the dashboard; subcommands cover everything else:
//
//	glitchtop                  - Live system dashboard
//	glitchtop themes [--pick]  - List themes, or pick and save one
//	glitchtop version          - Build information
//	glitchtop completion SHELL - Shell completion script
//
// # Flag Handling
//
// Global flags (--config, --no-color) live on the root command. Dashboard
// flags (--theme, --cycle, --rate, --threshold) are bound to viper keys so
// they override the config file and GLITCHTOP_* environment variables only
// when set. --no-glitch forces glitch_enabled off.
//
// # Exit Codes
//
// Execute returns 0 on success and when the user halts the dashboard
// ("SYSTEM HALTED BY USER"), and 1 for config or display errors, which are
// reported as "CRITICAL ERROR: <message>".
package cli
