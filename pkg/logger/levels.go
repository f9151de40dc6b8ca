package logger

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	charm "github.com/charmbracelet/log"
)

// TraceLevel is one step more verbose than Debug.
const TraceLevel = charm.DebugLevel - 1

func styles() *charm.Styles {
	s := charm.DefaultStyles()
	s.Levels[TraceLevel] = lipgloss.NewStyle().
		SetString("TRCE").
		Bold(true).
		MaxWidth(4).
		Foreground(lipgloss.Color("61"))
	return s
}

func Trace(msg interface{}, keyvals ...interface{}) {
	Default().Trace(msg, keyvals...)
}

func Tracef(format string, args ...interface{}) {
	Default().Trace(fmt.Sprintf(format, args...))
}

func Debug(msg interface{}, keyvals ...interface{}) {
	Default().Debug(msg, keyvals...)
}

func Info(msg interface{}, keyvals ...interface{}) {
	Default().Info(msg, keyvals...)
}

func Warn(msg interface{}, keyvals ...interface{}) {
	Default().Warn(msg, keyvals...)
}

func Error(msg interface{}, keyvals ...interface{}) {
	Default().Error(msg, keyvals...)
}
