package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("test")
	require.Equal(t, LevelInfo, cfg.Level)
	require.Equal(t, "text", cfg.Format)
	require.Equal(t, "test", cfg.Source)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CDOX_LOG_LEVEL", "debug")
	t.Setenv("CDOX_LOG_FORMAT", "json")

	cfg := LoadConfigFromEnv("worker")
	require.Equal(t, LevelDebug, cfg.Level)
	require.Equal(t, "json", cfg.Format)
	require.Equal(t, "worker", cfg.Source)
}

func TestLoadConfigFromEnvIgnoresInvalidLevel(t *testing.T) {
	t.Setenv("CDOX_LOG_LEVEL", "loud")

	cfg := LoadConfigFromEnv("test")
	require.Equal(t, LevelInfo, cfg.Level)
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: "text", Output: &buf, Source: "cli"})

	logger.Info("extracting", "files", 3)
	out := buf.String()
	require.Contains(t, out, "extracting")
	require.Contains(t, out, "source=cli")
	require.Contains(t, out, "files=3")
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelWarn, Format: "json", Output: &buf, Source: "cli"})

	logger.Info("dropped") // below level
	require.Empty(t, buf.String())

	logger.Warn("slow file", "path", "big.c")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "slow file", entry["msg"])
	require.Equal(t, "cli", entry["source"])
	require.Equal(t, "big.c", entry["path"])
}

func TestNop(t *testing.T) {
	require.NotPanics(t, func() {
		Nop().Error("discarded")
	})
}
