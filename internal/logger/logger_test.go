package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decodeLines(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()
	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"theme": "dark", "slides": 10})
	log.Info("deck written")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "deck written", entries[0]["message"])
	require.Equal(t, "dark", entries[0]["theme"])
	require.EqualValues(t, 10, entries[0]["slides"])
	require.Equal(t, "info", entries[0]["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("slide composed")
	require.Empty(t, strings.TrimSpace(buf.String()))
	require.False(t, log.Enabled(zerolog.DebugLevel))
	require.True(t, log.Enabled(zerolog.WarnLevel))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.With("path", "out/deck.pptx").Error(errors.New("boom"), "save failed")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "error", entries[0]["level"])
	require.Equal(t, "out/deck.pptx", entries[0]["path"])
	require.Equal(t, "boom", entries[0]["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Warn("text overflow")
	require.Contains(t, buf.String(), "text overflow")
	require.Contains(t, buf.String(), "WRN")
}

func TestNilAndNopLoggersAreSilent(t *testing.T) {
	t.Parallel()

	var nilLog *Logger
	require.NotPanics(t, func() {
		nilLog.Info("x")
		nilLog.Debug("x")
		nilLog.Warn("x")
		nilLog.Error(errors.New("x"), "x")
		require.Nil(t, nilLog.WithFields(map[string]any{"a": 1}))
		require.Nil(t, nilLog.With("a", 1))
	})
	require.False(t, nilLog.Enabled(zerolog.ErrorLevel))

	nop := Nop()
	require.NotPanics(t, func() { nop.Info("x") })
}
