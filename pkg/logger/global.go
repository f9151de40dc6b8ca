package logger

import (
	"os"
	"sync/atomic"

	charm "github.com/charmbracelet/log"
)

// defaultLogger is the process default Logger stored atomically.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(NewLogger(charm.Default()))
}

// Default returns the process default Logger.
func Default() *Logger {
	return defaultLogger.Load().(*Logger)
}

// SetDefault replaces the process default Logger. Nil is ignored.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// New creates a Logger writing to stderr.
func New() *Logger {
	return NewLogger(charm.New(os.Stderr))
}
