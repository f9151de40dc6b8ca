package logger

import (
	"fmt"
	"io"

	charm "github.com/charmbracelet/log"
)

// Logger wraps a charm logger and adds the Trace level.
type Logger struct {
	charm *charm.Logger
}

// NewLogger wraps an existing charm logger.
func NewLogger(l *charm.Logger) *Logger {
	l.SetStyles(styles())
	return &Logger{charm: l}
}

// Charm returns the underlying charm logger.
func (l *Logger) Charm() *charm.Logger {
	return l.charm
}

func (l *Logger) Trace(msg interface{}, keyvals ...interface{}) {
	l.charm.Log(TraceLevel, msg, keyvals...)
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	l.charm.Log(TraceLevel, fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(msg interface{}, keyvals ...interface{}) {
	l.charm.Debug(msg, keyvals...)
}

func (l *Logger) Info(msg interface{}, keyvals ...interface{}) {
	l.charm.Info(msg, keyvals...)
}

func (l *Logger) Warn(msg interface{}, keyvals ...interface{}) {
	l.charm.Warn(msg, keyvals...)
}

func (l *Logger) Error(msg interface{}, keyvals ...interface{}) {
	l.charm.Error(msg, keyvals...)
}

// With returns a child logger that always carries keyvals.
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{charm: l.charm.With(keyvals...)}
}

func (l *Logger) SetLevel(level charm.Level) {
	l.charm.SetLevel(level)
}

func (l *Logger) GetLevel() charm.Level {
	return l.charm.GetLevel()
}

// GetLevelString returns the lowercase name of the current level.
func (l *Logger) GetLevelString() string {
	switch level := l.charm.GetLevel(); {
	case level == TraceLevel:
		return "trace"
	case level > charm.FatalLevel:
		return "off"
	default:
		return level.String()
	}
}

func (l *Logger) SetOutput(w io.Writer) {
	l.charm.SetOutput(w)
}

func (l *Logger) SetReportTimestamp(report bool) {
	l.charm.SetReportTimestamp(report)
}

// Configure applies a parsed level.
func (l *Logger) Configure(level LogLevel) {
	l.charm.SetLevel(level.CharmLevel())
}
