package logger

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// TestLogger implements the Logger interface and buffers logs until test failure
// This logger only outputs logs if the test fails, keeping successful test output clean
type TestLogger struct {
	t      *testing.T
	buffer []Entry
	mu     sync.Mutex
}

// Entry is a single buffered log line
type Entry struct {
	Level     string
	Message   string
	Args      []interface{}
	Timestamp time.Time
}

func (e Entry) String() string {
	msg := fmt.Sprintf("[%s] [%s] %s", e.Timestamp.Format("15:04:05.000"), e.Level, e.Message)

	var parts []string
	for i := 0; i < len(e.Args); i += 2 {
		if i+1 < len(e.Args) {
			parts = append(parts, fmt.Sprintf("%v=%v", e.Args[i], e.Args[i+1]))
		} else {
			parts = append(parts, fmt.Sprintf("%v", e.Args[i]))
		}
	}

	if len(parts) > 0 {
		msg += " " + strings.Join(parts, " ")
	}

	return msg
}

// NewTestLogger creates a new TestLogger that will output logs only on test failure
func NewTestLogger(t *testing.T) *TestLogger {
	logger := &TestLogger{
		t:      t,
		buffer: make([]Entry, 0),
	}

	t.Cleanup(func() {
		logger.flushIfFailed()
	})

	return logger
}

// Ensure TestLogger implements the Logger interface
var _ Logger = (*TestLogger)(nil)

func (l *TestLogger) Info(msg string, args ...interface{}) {
	l.addEntry("INFO", msg, args)
}

func (l *TestLogger) Debug(msg string, args ...interface{}) {
	l.addEntry("DEBUG", msg, args)
}

func (l *TestLogger) Warn(msg string, args ...interface{}) {
	l.addEntry("WARN", msg, args)
}

func (l *TestLogger) Error(msg string, args ...interface{}) {
	l.addEntry("ERROR", msg, args)
}

// Entries returns a copy of the buffered entries
func (l *TestLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]Entry(nil), l.buffer...)
}

// Has returns true when an entry with level contains msg
func (l *TestLogger) Has(level, msg string) bool {
	for _, e := range l.Entries() {
		if e.Level == level && strings.Contains(e.Message, msg) {
			return true
		}
	}

	return false
}

func (l *TestLogger) addEntry(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.buffer = append(l.buffer, Entry{
		Level:     level,
		Message:   msg,
		Args:      args,
		Timestamp: time.Now(),
	})
}

func (l *TestLogger) flushIfFailed() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.t.Failed() {
		l.t.Log("=== Buffered Logs (test failed) ===")
		for _, entry := range l.buffer {
			l.t.Log(entry.String())
		}
		l.t.Log("=== End Buffered Logs ===")
	}

	l.buffer = l.buffer[:0]
}
