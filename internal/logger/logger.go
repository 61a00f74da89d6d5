// Package logger writes CalcCraft's debug log. The TUI owns the terminal,
// so nothing is ever printed to stdout or stderr from here; everything goes
// to a file under /tmp via log/slog.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultLogPath is where the log goes when Init is never called.
const DefaultLogPath = "/tmp/calccraft-debug.log"

// logGlob matches every log file CalcCraft may have written.
const logGlob = "/tmp/calccraft-*.log"

var (
	mu       sync.Mutex
	base     *slog.Logger
	levelVar = new(slog.LevelVar)
	level    = LevelInfo
	file     *os.File
	path     string
	ready    bool
)

// SetLevel sets the minimum level written to the log.
func SetLevel(l LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	levelVar.Set(l.slogLevel())
}

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelInfo)
}

// Init opens the log at p. Calls after the first successful one are no-ops.
func Init(p string) error {
	mu.Lock()
	defer mu.Unlock()

	if ready {
		return nil
	}
	if err := openLocked(p); err != nil {
		return fmt.Errorf("failed to open log file %s: %w", p, err)
	}
	return nil
}

// openLocked opens p and builds the base logger. mu must be held.
func openLocked(p string) error {
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	file = f
	path = p
	levelVar.Set(level.slogLevel())
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	ready = true
	base.Info("logger initialized", "path", p)
	return nil
}

// ensureLocked falls back to DefaultLogPath. mu must be held.
func ensureLocked() {
	if ready {
		return
	}
	if err := openLocked(DefaultLogPath); err != nil {
		// mark ready anyway so a broken /tmp is reported once, not per call
		ready = true
		fmt.Fprintf(os.Stderr, "Warning: failed to open log file %s: %v\n", DefaultLogPath, err)
	}
}

func logf(l slog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	ensureLocked()
	if base == nil || !base.Enabled(context.Background(), l) {
		return
	}
	base.Log(context.Background(), l, fmt.Sprintf(format, args...))
}

// Debug logs a printf-style message at debug level.
func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// Info logs a printf-style message at info level.
func Info(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

// Warn logs a printf-style message at warn level.
func Warn(format string, args ...any) { logf(slog.LevelWarn, format, args...) }

// Error logs a printf-style message at error level.
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// Path returns the file currently being written, or "" before first use.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return path
}

// Close closes the log file. Later calls log nowhere until Reset.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		file.Close()
		file = nil
	}
	base = nil
}

// Reset returns the package to its initial state. Tests use it between cases.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		file.Close()
		file = nil
	}
	base = nil
	ready = false
	path = ""
	level = LevelInfo
	levelVar = new(slog.LevelVar)
}

// ClearLogs deletes every CalcCraft log file in /tmp and reports how many
// were removed.
func ClearLogs() (int, error) {
	matches, err := filepath.Glob(logGlob)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, m := range matches {
		if err := os.Remove(m); err == nil {
			count++
		} else if !os.IsNotExist(err) {
			return count, err
		}
	}
	return count, nil
}

// ComponentLogger returns a structured logger tagged with component, e.g.
//
//	log := logger.ComponentLogger("script")
//	log.Info("step applied", "index", i, "expression", st.Expression)
func ComponentLogger(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureLocked()
	if base == nil {
		return slog.New(slog.DiscardHandler)
	}
	return base.With(slog.String("component", component))
}
