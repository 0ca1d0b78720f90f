// Package config loads glitchtop settings from YAML, environment variables
// and command-line flags using viper, validates them, and writes the chosen
// theme back with yaml.v3 so the rest of the file is left as the user wrote it.
package config
