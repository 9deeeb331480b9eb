package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	entries := []map[string]interface{}{}

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		e := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		entries = append(entries, e)
	}

	return entries
}

func TestJSONLoggerWritesOneObjectPerEntry(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := NewJSONLogger(buf, "info")
	require.NoError(t, err)

	l.Info("design started", "design", "top", "output", "top.txt")
	l.Warn("unsupported gate", "element", "g2")

	entries := decodeEntries(t, buf)
	require.Len(t, entries, 2)

	require.Equal(t, "info", entries[0]["level"])
	require.Equal(t, "design started", entries[0]["msg"])
	require.Equal(t, "top", entries[0]["design"])
	require.Equal(t, "warn", entries[1]["level"])
	require.Equal(t, "g2", entries[1]["element"])
}

func TestJSONLoggerFiltersByLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := NewJSONLogger(buf, "warn")
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("hidden")
	l.Error("shown")

	entries := decodeEntries(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "shown", entries[0]["msg"])
}

func TestJSONLoggerWithPrefixSetsLoggerName(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := NewJSONLogger(buf, "info")
	require.NoError(t, err)

	l.WithPrefix("tgt-stub").Info("ready")

	entries := decodeEntries(t, buf)
	require.Equal(t, "tgt-stub", entries[0]["logger"])
}

func TestNewJSONLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewJSONLogger(&bytes.Buffer{}, "loud")
	require.Error(t, err)
}
