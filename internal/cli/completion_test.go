package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCompletion(t *testing.T, shell string) string {
	t.Helper()
	var buf bytes.Buffer
	completionCmd.SetOut(&buf)
	t.Cleanup(func() { completionCmd.SetOut(nil) })

	require.NoError(t, completionCmd.RunE(completionCmd, []string{shell}))
	return buf.String()
}

func TestCompletionBash(t *testing.T) {
	output := runCompletion(t, "bash")
	assert.Contains(t, output, "# bash completion")
	assert.Contains(t, output, "glitchtop")
}

func TestCompletionZsh(t *testing.T) {
	output := runCompletion(t, "zsh")
	assert.Contains(t, output, "#compdef glitchtop")
}

func TestCompletionFish(t *testing.T) {
	output := runCompletion(t, "fish")
	assert.Contains(t, output, "complete -c glitchtop")
}

func TestCompletionPowerShell(t *testing.T) {
	output := runCompletion(t, "powershell")
	assert.Contains(t, output, "glitchtop")
}

func TestCompletionUnknownShell(t *testing.T) {
	err := completionCmd.RunE(completionCmd, []string{"tcsh"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown shell")
}

func TestCompletionValidArgs(t *testing.T) {
	assert.ElementsMatch(t, []string{"bash", "zsh", "fish", "powershell"}, completionCmd.ValidArgs)
}
