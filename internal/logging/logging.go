// Package logging writes leveled log lines to an optional file. The terminal
// belongs to the editor UI, so nothing is ever written to stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Verbosity levels, matching -v and -vv.
const (
	Quiet = iota
	Info
	Debug
)

type Logger struct {
	mu        sync.Mutex
	w         io.Writer
	c         io.Closer
	verbosity int
}

// Open appends to the log file at path, creating it and its directory if
// missing. An empty path yields a logger that discards everything.
func Open(path, prog, version string, verbosity int) (*Logger, error) {
	if path == "" {
		return Discard(), nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	_, _ = fmt.Fprintf(f, "=== %s %s started at %s ===\n", prog, version, time.Now().Format(time.RFC3339))
	return &Logger{w: f, c: f, verbosity: verbosity}, nil
}

// New logs to w. Used by tests.
func New(w io.Writer, verbosity int) *Logger {
	return &Logger{w: w, verbosity: verbosity}
}

func Discard() *Logger { return &Logger{w: io.Discard} }

func (l *Logger) Close() error {
	if l == nil || l.c == nil {
		return nil
	}
	return l.c.Close()
}

// Errorf is always written when a file is configured.
func (l *Logger) Errorf(format string, args ...any) { l.logf(Quiet, "ERROR", format, args...) }

func (l *Logger) Infof(format string, args ...any) { l.logf(Info, "INFO", format, args...) }

func (l *Logger) Debugf(format string, args ...any) { l.logf(Debug, "DEBUG", format, args...) }

func (l *Logger) logf(level int, tag, format string, args ...any) {
	if l == nil || l.verbosity < level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.w, "%s [%s] %s\n", time.Now().Format("15:04:05.000"), tag, fmt.Sprintf(format, args...))
}
