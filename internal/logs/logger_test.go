package logs_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ian-shakespeare/gmplus/internal/logs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("terminalLevel", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, closer, err := logs.New(logs.Options{Level: "warn", Terminal: &buf})
		require.NoError(t, err)
		defer closer.Close()

		logger.Info("hidden")
		logger.Warn("shown", "tokens", 3)

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
		assert.Contains(t, buf.String(), "tokens=3")
	})

	t.Run("fanout", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		path := filepath.Join(t.TempDir(), "gmplus.log")
		logger, closer, err := logs.New(logs.Options{Level: "debug", Terminal: &buf, File: path})
		require.NoError(t, err)

		logger.Debug("parsed", "statements", 2)
		require.NoError(t, closer.Close())

		assert.Contains(t, buf.String(), "msg=parsed")

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(content))), &record))
		assert.Equal(t, "parsed", record["msg"])
		assert.Equal(t, float64(2), record["statements"])
	})

	t.Run("badLevel", func(t *testing.T) {
		t.Parallel()

		_, _, err := logs.New(logs.Options{Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("badFile", func(t *testing.T) {
		t.Parallel()

		_, _, err := logs.New(logs.Options{Level: "info", File: filepath.Join(t.TempDir(), "missing", "x.log")})
		assert.Error(t, err)
	})
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := logs.Discard()
	assert.NotPanics(t, func() {
		logger.Error("dropped")
	})
}
