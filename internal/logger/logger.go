package logger

import (
	"os"
	"strings"
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	// globalLogger holds the singleton logger instance.
	globalLogger *Logger
	once         sync.Once
)

// Get returns a singleton stdout logger configured with the provided level.
// The first call initializes the logger; subsequent calls ignore the level
// and return the already initialized instance.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(normalizeLevel(level), os.Stdout)
	})
	return globalLogger
}

// normalizeLevel accepts "INFO", " warn " and the like.
func normalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}
