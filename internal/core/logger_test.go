package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quip.log")

	logger, err := NewLogger(false, path)
	require.NoError(t, err)

	WithIRCContext(logger, "#test", "alice").Infow("command dispatched", "command", "ping")
	logger.Debug("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `"msg":"command dispatched"`)
	assert.Contains(t, out, `"channel":"#test"`)
	assert.Contains(t, out, `"user":"alice"`)
	assert.Contains(t, out, `"command":"ping"`)
	assert.NotContains(t, out, "hidden at info level")
}

func TestNewLogger_VerboseLogsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quip.log")

	logger, err := NewLogger(true, path)
	require.NoError(t, err)

	logger.Debugw("user cmd", "cmd", "help")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"user cmd"`)
}

func TestNewLogger_NoFile(t *testing.T) {
	logger, err := NewLogger(false, "")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
