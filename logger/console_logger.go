package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// ConsoleLogger implements the Logger interface using charmbracelet/log
type ConsoleLogger struct {
	logger *log.Logger
}

// NewStdOutLogger creates a ConsoleLogger writing debug and above to stdout
func NewStdOutLogger() *ConsoleLogger {
	return NewConsoleLogger(os.Stdout, log.DebugLevel)
}

// NewStdErrLogger creates a ConsoleLogger writing to stderr. Plugin binaries
// must use it as stdout carries the plugin handshake.
func NewStdErrLogger(level log.Level) *ConsoleLogger {
	return NewConsoleLogger(os.Stderr, level)
}

// NewConsoleLogger creates a ConsoleLogger for w at the given level
func NewConsoleLogger(w io.Writer, level log.Level) *ConsoleLogger {
	l := log.New(w)
	l.SetLevel(level)
	l.SetStyles(Styles())

	return &ConsoleLogger{logger: l}
}

// ParseLevel converts a level name such as "debug" or "warn" to a log.Level
func ParseLevel(level string) (log.Level, error) {
	return log.ParseLevel(level)
}

// Styles returns the level styles used for console output
func Styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.WarnLevel] = s.Levels[log.WarnLevel].Foreground(lipgloss.Color("214"))
	s.Levels[log.ErrorLevel] = s.Levels[log.ErrorLevel].Foreground(lipgloss.Color("196"))
	s.Keys["design"] = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	s.Keys["element"] = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	return s
}

// WithPrefix returns a copy of the logger that prefixes every message
func (l *ConsoleLogger) WithPrefix(prefix string) *ConsoleLogger {
	return &ConsoleLogger{logger: l.logger.WithPrefix(prefix)}
}

// Ensure ConsoleLogger implements the Logger interface
var _ Logger = (*ConsoleLogger)(nil)

// Info logs an informational message
func (l *ConsoleLogger) Info(msg string, args ...interface{}) {
	l.logger.Info(msg, args...)
}

// Debug logs a debug message
func (l *ConsoleLogger) Debug(msg string, args ...interface{}) {
	l.logger.Debug(msg, args...)
}

// Warn logs a warning message
func (l *ConsoleLogger) Warn(msg string, args ...interface{}) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message
func (l *ConsoleLogger) Error(msg string, args ...interface{}) {
	l.logger.Error(msg, args...)
}
