// Package logging provides the pass's diagnostic logger: a thin wrapper
// over the standard library's log package, in the same spirit as the
// plain log.Print calls the rest of this ecosystem uses directly. It
// exists only to add a level prefix and a single switch for verbosity.
package logging

import (
	"io"
	"log"
	"os"
)

// Level controls which messages Logger.Debugf actually prints.
type Level int

const (
	LevelInfo Level = iota
	LevelDebug
)

// Logger wraps a standard *log.Logger with a verbosity level.
type Logger struct {
	l     *log.Logger
	level Level
}

// New returns a Logger writing to w with the given level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{l: log.New(w, "", log.LstdFlags), level: level}
}

// Default returns a Logger writing to stderr at LevelInfo.
func Default() *Logger {
	return New(os.Stderr, LevelInfo)
}

// Infof logs an informational message.
func (lg *Logger) Infof(format string, args ...interface{}) {
	lg.l.Printf("INFO "+format, args...)
}

// Debugf logs a message only when the logger's level is LevelDebug.
func (lg *Logger) Debugf(format string, args ...interface{}) {
	if lg.level < LevelDebug {
		return
	}
	lg.l.Printf("DEBUG "+format, args...)
}

// Errorf logs an error message.
func (lg *Logger) Errorf(format string, args ...interface{}) {
	lg.l.Printf("ERROR "+format, args...)
}
