package logger

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLog swaps the standard logger's output for a buffer until the test ends.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	return &buf
}

func TestEnvLogger_DebugGate(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{env: "", want: ""},
		{env: "1", want: "[collector] probe gpu skipped\n"},
		{env: "yes", want: "[collector] probe gpu skipped\n"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("env=%q", tt.env), func(t *testing.T) {
			buf := captureLog(t)
			t.Setenv(DebugEnvVar, tt.env)

			NewEnvLogger("[collector]").Debug("probe %s skipped", "gpu")

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestEnvLogger_Levels(t *testing.T) {
	buf := captureLog(t)
	l := NewEnvLogger("[config]")

	l.Info("loaded %s", ".glitchtop.yaml")
	l.Warn("unknown theme %q", "neon")
	l.Error("refresh_rate %d invalid", -1)

	assert.Equal(t,
		"[config] loaded .glitchtop.yaml\n"+
			"[config] WARN: unknown theme \"neon\"\n"+
			"[config] ERROR: refresh_rate -1 invalid\n",
		buf.String())
}

func TestEnvLogger_FollowsRedirect(t *testing.T) {
	first := captureLog(t)
	l := NewEnvLogger("[glitchtop]")
	l.Info("before")

	var second bytes.Buffer
	log.SetOutput(&second)
	l.Info("after")

	assert.Contains(t, first.String(), "before")
	assert.NotContains(t, first.String(), "after")
	assert.Contains(t, second.String(), "after")
}

func TestNoop(t *testing.T) {
	buf := captureLog(t)
	t.Setenv(DebugEnvVar, "1")

	l := Noop()
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")

	assert.Empty(t, buf.String())
}

func TestBufferLogger_Records(t *testing.T) {
	b := NewBufferLogger()
	b.Debug("cpu %d%%", 42)
	b.Warn("gpu timeout after %s", "1s")
	b.Warn("disk probe failed")
	b.Error("boom")

	entries := b.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, Entry{Level: LevelDebug, Message: "cpu 42%"}, entries[0])
	assert.Equal(t, Entry{Level: LevelWarn, Message: "gpu timeout after 1s"}, entries[1])

	assert.Equal(t, 2, b.Count(LevelWarn))
	assert.Equal(t, 0, b.Count(LevelInfo))
	assert.True(t, b.HasLevel("error"))
	assert.False(t, b.HasLevel("info"))

	last, ok := b.Last(LevelWarn)
	require.True(t, ok)
	assert.Equal(t, "disk probe failed", last.Message)

	_, ok = b.Last(LevelInfo)
	assert.False(t, ok)
}

func TestBufferLogger_EntriesIsCopy(t *testing.T) {
	b := NewBufferLogger()
	b.Info("one")

	entries := b.Entries()
	entries[0].Message = "mutated"

	assert.Equal(t, "one", b.Entries()[0].Message)
}

func TestBufferLogger_Clear(t *testing.T) {
	b := NewBufferLogger()
	b.Info("a")
	b.Error("b")
	b.Clear()

	assert.Empty(t, b.Entries())
	assert.False(t, b.HasLevel(LevelError))
}

func TestBufferLogger_Concurrent(t *testing.T) {
	b := NewBufferLogger()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				b.Debug("probe %d tick %d", i, j)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 200, b.Count(LevelDebug))
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv(DebugEnvVar, "")
	assert.False(t, DebugEnabled())

	t.Setenv(DebugEnvVar, "1")
	assert.True(t, DebugEnabled())
}

func TestImplementations(t *testing.T) {
	var _ Logger = NewEnvLogger("")
	var _ Logger = Noop()
	var _ Logger = NewBufferLogger()
}
