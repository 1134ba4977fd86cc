package logger

import (
	"sync"

	"go.uber.org/zap"
)

// Log levels accepted by the log.level config key.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	// globalLogger is the instance handed out by Get.
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process-wide logger. The first call fixes its level; later
// calls ignore level.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = New(level)
	})
	return globalLogger
}

// New builds a standalone logger writing to stdout.
func New(level string) *Logger {
	return newZapLogger(level)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}
