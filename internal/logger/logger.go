// Package logger is the small leveled logging seam shared by the collector,
// the config loader and the dashboard model.
//
// The dashboard owns the terminal while it runs, so anything written to
// stderr would tear the frame. The CLI points the standard logger at a file
// (or io.Discard) before the alternate screen is entered.
package logger

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// DebugEnvVar enables debug output when set to any non-empty value.
const DebugEnvVar = "GLITCHTOP_DEBUG"

// LogFileEnvVar names the file dashboard logs are appended to.
const LogFileEnvVar = "GLITCHTOP_LOG"

// Level tags a log line.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Logger takes printf-style messages at four levels.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// DebugEnabled reports whether debug logging is switched on.
func DebugEnabled() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// stdLogger writes through the standard log package so a redirect made with
// log.SetOutput applies to every component at once.
type stdLogger struct {
	component string
}

// NewEnvLogger returns a Logger tagged with component, e.g. "[collector]".
// Debug lines are dropped unless GLITCHTOP_DEBUG is set at call time.
func NewEnvLogger(component string) Logger {
	return stdLogger{component: component}
}

func (l stdLogger) emit(lvl Level, format string, args []any) {
	msg := fmt.Sprintf(format, args...)
	switch lvl {
	case LevelWarn, LevelError:
		log.Printf("%s %s: %s", l.component, levelTag(lvl), msg)
	default:
		log.Printf("%s %s", l.component, msg)
	}
}

func levelTag(lvl Level) string {
	switch lvl {
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return ""
}

func (l stdLogger) Debug(format string, args ...any) {
	if !DebugEnabled() {
		return
	}
	l.emit(LevelDebug, format, args)
}

func (l stdLogger) Info(format string, args ...any)  { l.emit(LevelInfo, format, args) }
func (l stdLogger) Warn(format string, args ...any)  { l.emit(LevelWarn, format, args) }
func (l stdLogger) Error(format string, args ...any) { l.emit(LevelError, format, args) }

type discard struct{}

// Noop returns a Logger that drops everything.
func Noop() Logger { return discard{} }

func (discard) Debug(string, ...any) {}
func (discard) Info(string, ...any)  {}
func (discard) Warn(string, ...any)  {}
func (discard) Error(string, ...any) {}

// Entry is one line captured by a BufferLogger.
type Entry struct {
	Level   Level
	Message string
}

// BufferLogger records entries in memory. It is safe for concurrent use,
// since the collector's probes log from their own goroutines.
type BufferLogger struct {
	mu      sync.Mutex
	entries []Entry
}

// NewBufferLogger returns an empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (b *BufferLogger) Debug(format string, args ...any) { b.add(LevelDebug, format, args) }
func (b *BufferLogger) Info(format string, args ...any)  { b.add(LevelInfo, format, args) }
func (b *BufferLogger) Warn(format string, args ...any)  { b.add(LevelWarn, format, args) }
func (b *BufferLogger) Error(format string, args ...any) { b.add(LevelError, format, args) }

func (b *BufferLogger) add(lvl Level, format string, args []any) {
	e := Entry{Level: lvl, Message: fmt.Sprintf(format, args...)}
	b.mu.Lock()
	b.entries = append(b.entries, e)
	b.mu.Unlock()
}

// Entries returns a copy of everything recorded so far.
func (b *BufferLogger) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Count returns how many entries were recorded at lvl.
func (b *BufferLogger) Count(lvl Level) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, e := range b.entries {
		if e.Level == lvl {
			n++
		}
	}
	return n
}

// HasLevel reports whether anything was recorded at lvl.
func (b *BufferLogger) HasLevel(lvl Level) bool {
	return b.Count(lvl) > 0
}

// Last returns the most recent entry at lvl.
func (b *BufferLogger) Last(lvl Level) (Entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.entries) - 1; i >= 0; i-- {
		if b.entries[i].Level == lvl {
			return b.entries[i], true
		}
	}
	return Entry{}, false
}

// Clear drops all recorded entries.
func (b *BufferLogger) Clear() {
	b.mu.Lock()
	b.entries = nil
	b.mu.Unlock()
}
