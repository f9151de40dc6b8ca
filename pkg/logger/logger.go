package logger

import (
	"strings"

	charm "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	errUtils "github.com/mdlint/mdlint/errors"
)

// LogLevel is the user-facing name of a log level as written in flags and env vars.
type LogLevel string

const (
	LogLevelOff     LogLevel = "Off"
	LogLevelTrace   LogLevel = "Trace"
	LogLevelDebug   LogLevel = "Debug"
	LogLevelInfo    LogLevel = "Info"
	LogLevelWarning LogLevel = "Warning"
)

// offLevel sits above every level charm emits.
const offLevel = charm.FatalLevel + 1

// ParseLogLevel converts a level name, case-insensitively. Empty means Info.
func ParseLogLevel(logLevel string) (LogLevel, error) {
	if logLevel == "" {
		return LogLevelInfo, nil
	}

	for _, level := range []LogLevel{LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelOff} {
		if strings.EqualFold(logLevel, string(level)) {
			return level, nil
		}
	}
	// "warn" is accepted as well since the charm level is named that way.
	if strings.EqualFold(logLevel, "warn") {
		return LogLevelWarning, nil
	}

	return "", errors.Wrapf(errUtils.ErrInvalidLogLevel,
		"'%s'. Supported log levels are Trace, Debug, Info, Warning, Off", logLevel)
}

// CharmLevel maps a LogLevel to the charm level used for filtering.
func (l LogLevel) CharmLevel() charm.Level {
	switch l {
	case LogLevelTrace:
		return TraceLevel
	case LogLevelDebug:
		return charm.DebugLevel
	case LogLevelWarning:
		return charm.WarnLevel
	case LogLevelOff:
		return offLevel
	default:
		return charm.InfoLevel
	}
}
