// Package logger provides leveled logging for the CLI and the HTTP server.
// Text output goes through the standard log package; json output writes one
// object per line.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents a logging level
type Level int

const (
	// DebugLevel logs are typically voluminous, and are usually disabled in production.
	DebugLevel Level = iota
	// InfoLevel is the default logging priority.
	InfoLevel
	// WarnLevel logs are more important than Info, but don't need individual human review.
	WarnLevel
	// ErrorLevel logs are high-priority.
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	}
	return "INFO"
}

// ParseLevel maps a config value to a Level. Unknown values mean InfoLevel.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	}
	return InfoLevel
}

// Logger provides leveled logging
type Logger struct {
	mu     sync.Mutex
	level  Level
	json   bool
	out    io.Writer
	logger *log.Logger
}

var defaultLogger = New(os.Stderr, "info", "text")

// New creates a logger writing to w.
func New(w io.Writer, level, format string) *Logger {
	return &Logger{
		level:  ParseLevel(level),
		json:   strings.ToLower(format) == "json",
		out:    w,
		logger: log.New(w, "", log.LstdFlags|log.Lmicroseconds),
	}
}

// Init replaces the default logger with the specified level and format
func Init(level string, format string) {
	defaultLogger = New(os.Stderr, level, format)
}

// SetOutput redirects the default logger, keeping its level and format.
func SetOutput(w io.Writer) {
	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()
	defaultLogger.out = w
	defaultLogger.logger.SetOutput(w)
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if level < l.level {
		return
	}
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.json {
		line, _ := json.Marshal(struct {
			Time  string `json:"time"`
			Level string `json:"level"`
			Msg   string `json:"msg"`
		}{time.Now().UTC().Format(time.RFC3339Nano), level.String(), msg})
		_, _ = l.out.Write(append(line, '\n'))
		return
	}
	_ = l.logger.Output(3, "["+level.String()+"] "+msg)
}

// Debugf logs at DebugLevel
func (l *Logger) Debugf(format string, args ...any) { l.logf(DebugLevel, format, args...) }

// Infof logs at InfoLevel
func (l *Logger) Infof(format string, args ...any) { l.logf(InfoLevel, format, args...) }

// Warnf logs at WarnLevel
func (l *Logger) Warnf(format string, args ...any) { l.logf(WarnLevel, format, args...) }

// Errorf logs at ErrorLevel
func (l *Logger) Errorf(format string, args ...any) { l.logf(ErrorLevel, format, args...) }

// Debug logs a message at DebugLevel
func Debug(format string, args ...any) { defaultLogger.logf(DebugLevel, format, args...) }

// Info logs a message at InfoLevel
func Info(format string, args ...any) { defaultLogger.logf(InfoLevel, format, args...) }

// Warn logs a message at WarnLevel
func Warn(format string, args ...any) { defaultLogger.logf(WarnLevel, format, args...) }

// Error logs a message at ErrorLevel
func Error(format string, args ...any) { defaultLogger.logf(ErrorLevel, format, args...) }
