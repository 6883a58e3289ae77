package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger tags every entry with the component that produced it
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

func (l LogLevel) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "unknown"
	}
}

// Zerolog maps the level onto zerolog's scale
func (l LogLevel) Zerolog() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// ParseLevel accepts debug, info, warn (or warning) and error
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// LevelFromEnv reads LOG_LEVEL, falling back to DEBUG=1 and then info
func LevelFromEnv() LogLevel {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		if os.Getenv("DEBUG") == "1" {
			return DebugLevel
		}
		return InfoLevel
	}
}

// New builds the process logger. Format "json" writes one JSON object per line,
// anything else uses zerolog's console writer.
func New(level LogLevel, format string, out io.Writer) *ZerologAdapter {
	if out == nil {
		out = os.Stderr
	}
	if format == "json" {
		return NewZerolog(out, level.Zerolog())
	}
	return NewZerolog(zerolog.ConsoleWriter{Out: out}, level.Zerolog())
}
