package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesJSONWithTimestamp(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })
	var buf bytes.Buffer

	logger := Setup(&buf, "info", "development")
	logger.Info().Str("op", "list").Msg("hello")
	logger.Debug().Msg("filtered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "list", entry["op"])
	assert.Contains(t, entry, "time")
}

func TestSetup_LevelFallsBackByEnv(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	Setup(&bytes.Buffer{}, "bogus", "production")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	Setup(&bytes.Buffer{}, "", "development")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetupFile_Appends(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })
	path := filepath.Join(t.TempDir(), "shopview.log")

	logger, closer, err := SetupFile(path, "info", "development")
	require.NoError(t, err)
	logger.Error().Msg("request failed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "request failed")
}
