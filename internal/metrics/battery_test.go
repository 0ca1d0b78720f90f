package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSupply(t *testing.T, root, name string, files map[string]string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for file, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644))
	}
}

func TestReadBattery_NoBattery(t *testing.T) {
	root := t.TempDir()
	writeSupply(t, root, "AC", map[string]string{"online": "1\n"})

	bat, err := ReadBattery(root)
	require.NoError(t, err)
	assert.Nil(t, bat)
}

func TestReadBattery_Discharging(t *testing.T) {
	root := t.TempDir()
	writeSupply(t, root, "BAT0", map[string]string{"capacity": "73\n", "status": "Discharging\n"})
	writeSupply(t, root, "AC", map[string]string{"online": "0\n"})

	bat, err := ReadBattery(root)
	require.NoError(t, err)
	require.NotNil(t, bat)
	assert.Equal(t, 73.0, bat.Percent)
	assert.False(t, bat.Plugged)
}

func TestReadBattery_PluggedViaAdapter(t *testing.T) {
	root := t.TempDir()
	writeSupply(t, root, "BAT1", map[string]string{"capacity": "100", "status": "Not charging"})
	writeSupply(t, root, "ADP1", map[string]string{"online": "1"})

	bat, err := ReadBattery(root)
	require.NoError(t, err)
	require.NotNil(t, bat)
	assert.True(t, bat.Plugged)
}

func TestReadBattery_PluggedViaStatus(t *testing.T) {
	root := t.TempDir()
	writeSupply(t, root, "BAT0", map[string]string{"capacity": "42", "status": "Charging"})

	bat, err := ReadBattery(root)
	require.NoError(t, err)
	require.NotNil(t, bat)
	assert.True(t, bat.Plugged)
	assert.Equal(t, 42.0, bat.Percent)
}

func TestReadBattery_BadCapacity(t *testing.T) {
	root := t.TempDir()
	writeSupply(t, root, "BAT0", map[string]string{"capacity": "lots"})

	_, err := ReadBattery(root)
	assert.Error(t, err)
}
