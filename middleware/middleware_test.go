package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestWithLogging(t *testing.T) {
	logs := captureLogs(t)

	called := false
	run := WithLogging("results", func(cmd *cobra.Command, args []string) error {
		called = true
		assert.Equal(t, []string{"a", "b"}, args)
		return nil
	})

	require.NoError(t, run(&cobra.Command{}, []string{"a", "b"}))
	assert.True(t, called)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 2)

	var started, completed map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &started))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &completed))

	assert.Equal(t, "command started", started["msg"])
	assert.Equal(t, float64(2), started["args"])
	assert.Equal(t, "command completed", completed["msg"])
	assert.Equal(t, "results", completed["command"])
	assert.Contains(t, completed, "duration_ms")
}

func TestWithLogging_PreservesError(t *testing.T) {
	logs := captureLogs(t)
	boom := errors.New("boom")

	err := WithLogging("vote", func(*cobra.Command, []string) error { return boom })(&cobra.Command{}, nil)
	assert.Same(t, boom, err)
	assert.Contains(t, logs.String(), `"msg":"command failed"`)
	assert.Contains(t, logs.String(), `"error":"boom"`)
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(&buf, "info", "auto")
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown", "k", 1)

	// a buffer is not a terminal, so auto picks JSON
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.NotContains(t, buf.String(), "hidden")

	buf.Reset()
	logger, err = NewLogger(&buf, "debug", "text")
	require.NoError(t, err)
	logger.Debug("plain")
	assert.Contains(t, buf.String(), "msg=plain")

	_, err = NewLogger(&buf, "info", "xml")
	assert.Error(t, err)
	_, err = NewLogger(&buf, "chatty", "json")
	assert.Error(t, err)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestJSONResponse(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONResponse(&buf, map[string]int{"ballots_cast": 3}))
	assert.Equal(t, "{\n  \"ballots_cast\": 3\n}\n", buf.String())

	assert.Error(t, JSONResponse(&buf, func() {}))
}
