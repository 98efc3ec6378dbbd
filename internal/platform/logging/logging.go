// Package logging builds the structured loggers shared by service components.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger = New(os.Stderr, "info")
)

// New returns a base logger writing to w at the named level. Unknown level
// names fall back to info.
func New(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
}

// ParseLevel maps a configured level name to a logger level.
func ParseLevel(level string) log.Level {
	parsed, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return parsed
}

// ForComponent derives a child logger tagged with the component name.
func ForComponent(base *log.Logger, component string) *log.Logger {
	if base == nil {
		base = Default()
	}
	component = strings.TrimSpace(component)
	if component == "" {
		return base
	}
	return base.With("component", component)
}

// Default returns the process-wide logger.
func Default() *log.Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide logger. Nil is ignored.
func SetDefault(logger *log.Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}
