package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "INFO", "", "warn", "warning", "error", "off"} {
		_, err := ParseLevel(name)
		assert.NoError(t, err, name)
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	require.NoError(t, err)

	_ = level.Debug(logger).Log("msg", "hidden")
	_ = level.Info(logger).Log("msg", "shown", "score", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "msg=shown score=3")
	assert.Contains(t, out, "ts=")
	assert.Contains(t, out, "caller=logging_test.go:")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")
	logger, closer, err := Open(path, "debug")
	require.NoError(t, err)

	_ = level.Debug(logger).Log("msg", "to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `msg="to file"`)
}

func TestOpenRejectsBadLevel(t *testing.T) {
	_, _, err := Open("", "loud")
	assert.Error(t, err)
}

func TestGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug")
	require.NoError(t, err)

	prev := GlobalLogger()
	SetGlobalLogger(logger)
	t.Cleanup(func() { SetGlobalLogger(prev) })

	_ = GlobalLogger().Log("msg", "global")
	assert.Contains(t, buf.String(), "msg=global")
}
