package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plus3/blockfall/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerConsole(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.LogLevel = "warn"

	logger, closeLog, err := config.NewLogger(cfg, &buf)
	require.NoError(t, err)
	defer closeLog()

	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("hidden")
	logger.Warn().Str("device", "speaker").Msg("audio unavailable")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "audio unavailable")
	assert.Contains(t, out, "device=")
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.log")
	cfg := config.Default()
	cfg.LogFile = path

	var console bytes.Buffer
	logger, closeLog, err := config.NewLogger(cfg, &console)
	require.NoError(t, err)

	logger.Info().Int("score", 100).Msg("lines cleared")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.Contains(t, line, `"message":"lines cleared"`)
	assert.Contains(t, line, `"score":100`)
	assert.Contains(t, line, `"time":`)
	assert.Zero(t, console.Len())
}

func TestNewLoggerWithoutOutput(t *testing.T) {
	logger, closeLog, err := config.NewLogger(config.Default(), nil)
	require.NoError(t, err)
	logger.Info().Msg("dropped")
	assert.NoError(t, closeLog())
}

func TestNewLoggerErrors(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "loud"
	_, _, err := config.NewLogger(cfg, nil)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "missing", "dir", "x.log")
	_, _, err = config.NewLogger(cfg, nil)
	assert.Error(t, err)
}
