// Package logging provides a small leveled logger over the standard log package.
package logging

import (
	"io"
	"log"
	"os"
	"strings"
)

// Level represents logging verbosity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// String returns the level name as accepted by ParseLevel.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to a Level. Unknown names yield LevelInfo
// and false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError, true
	case "WARN", "WARNING":
		return LevelWarn, true
	case "INFO":
		return LevelInfo, true
	case "DEBUG":
		return LevelDebug, true
	}
	return LevelInfo, false
}

// Logger provides leveled logging
type Logger struct {
	level Level
	out   *log.Logger
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// Default logs INFO and above to stderr.
var Default = New(os.Stderr, LevelInfo)

// Discard drops everything; used by tests.
var Discard = New(io.Discard, LevelError)

// Writer returns the underlying destination so other components (the HTTP
// access log) can share it.
func (l *Logger) Writer() io.Writer {
	return l.out.Writer()
}

// Level returns the current level.
func (l *Logger) Level() Level {
	return l.level
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

// Info logs info messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

// Debug logs debug messages
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if l.level < level {
		return
	}
	l.out.Printf("["+level.String()+"] "+format, args...)
}
