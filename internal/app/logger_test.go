package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerHonorsLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("warn", "json", &buf)

	logger.Info("below threshold")
	logger.Warn("at threshold")

	out := buf.String()
	require.NotContains(t, out, "below threshold")
	require.Contains(t, out, "at threshold")
	require.True(t, strings.HasPrefix(out, "{"), "json format expected, got: %s", out)
}

func TestNewLoggerDefaultsEmptyLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("", "", &buf)

	logger.Debug("below default threshold")
	logger.Info("at default threshold")

	out := buf.String()
	require.NotContains(t, out, "below default threshold")
	require.Contains(t, out, "at default threshold")
	require.True(t, strings.HasPrefix(out, "time="), "text format expected, got: %s", out)
}

func TestNewLoggerPanicsOnUnknownValues(t *testing.T) {
	var buf bytes.Buffer

	require.PanicsWithValue(t, `unknown log level "verbose"`, func() {
		newLogger("verbose", "text", &buf)
	})
	require.PanicsWithValue(t, `unknown log format "xml"`, func() {
		newLogger("info", "xml", &buf)
	})
}
