package internal

import (
	"log"
	"os"
)

// LogLevel controls logging verbosity
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// Logger provides leveled logging for the underwriting services
type Logger struct {
	level LogLevel
}

// NewLogger creates a logger with the specified level
func NewLogger(level LogLevel) *Logger {
	return &Logger{level: level}
}

// NewDefaultLogger reads the level from the LOG_LEVEL environment variable,
// defaulting to INFO
func NewDefaultLogger() *Logger {
	switch os.Getenv("LOG_LEVEL") {
	case "ERROR":
		return NewLogger(LogLevelError)
	case "WARN":
		return NewLogger(LogLevelWarn)
	case "DEBUG":
		return NewLogger(LogLevelDebug)
	default:
		return NewLogger(LogLevelInfo)
	}
}

func (l *Logger) Error(format string, args ...interface{}) {
	if l.level >= LogLevelError {
		log.Printf("[ERROR] "+format, args...)
	}
}

func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level >= LogLevelWarn {
		log.Printf("[WARN] "+format, args...)
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LogLevelInfo {
		log.Printf("[INFO] "+format, args...)
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LogLevelDebug {
		log.Printf("[DEBUG] "+format, args...)
	}
}
