package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"palette_id": "0190-abc", "harmony": "triadic"})
	log.Info("palette saved")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "palette saved", entry["message"])
	require.Equal(t, "0190-abc", entry["palette_id"])
	require.Equal(t, "triadic", entry["harmony"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerWarnAndErrorIncludeCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf, Component: "store"})
	require.NoError(t, err)

	log.Warn(errors.New("disk full"), "persist failed")
	log.WithComponent("naming").Error(errors.New("boom"), "namer failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var warn logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &warn))
	require.Equal(t, "warn", warn["level"])
	require.Equal(t, "disk full", warn["error"])
	require.Equal(t, "store", warn["component"])

	var failure logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failure))
	require.Equal(t, "namer failed", failure["message"])
	require.Equal(t, "boom", failure["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	nilLogger.Info("ignored")
	nilLogger.Warn(nil, "ignored")
	require.Nil(t, nilLogger.WithComponent("x"))

	Nop().Error(errors.New("ignored"), "ignored")
}
