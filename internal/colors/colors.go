// Package colors provides colored console output helpers. Console output is
// mirrored to the structured logger when one is set.
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Gray   = "\033[0;90m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger defines the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	debugEnabled = false
	logger       Logger
	loggerMu     sync.RWMutex

	// Out and Err are swappable for tests.
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

func init() {
	if val := os.Getenv("DEVKNIFE_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// SetLogger sets the structured logger to mirror console output.
func SetLogger(l Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func mirrored() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// Error outputs an error message to stderr, prefixed with the localized
// error marker.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := mirrored(); l != nil {
		l.Error(msg)
	}
	fmt.Fprintf(Err, "%s오류:%s %s\n", Red, Reset, msg)
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := mirrored(); l != nil {
		l.Warn(msg)
	}
	fmt.Fprintf(Err, "%s경고:%s %s\n", Yellow, Reset, msg)
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := mirrored(); l != nil {
		l.Info(msg)
	}
	fmt.Fprintf(Out, "%s%s%s\n", Blue, msg, Reset)
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := mirrored(); l != nil {
		l.Info(msg, "type", "success")
	}
	fmt.Fprintf(Out, "%s%s%s %s\n", Green, checkmark, Reset, msg)
}

// Debug outputs a debug message to stderr when debug mode is enabled.
func Debug(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := mirrored(); l != nil {
		l.Debug(msg)
	}
	if !debugEnabled {
		return
	}
	fmt.Fprintf(Err, "%sDEBUG:%s %s\n", Gray, Reset, msg)
}
