package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecod3rs/vibe"
	vibejson "github.com/vibecod3rs/vibe/json"
)

func TestLoadCatalog_Default(t *testing.T) {
	t.Parallel()
	c, err := loadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, vibe.DefaultCatalog().Tracks(), c.Tracks())
}

func TestLoadCatalog_FromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "tracks.json")
	want := vibe.NewCatalog([]vibe.Track{{ID: "ai", Title: "AI агенты"}})
	require.NoError(t, vibejson.SaveCatalog(path, want))

	c, err := loadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, want.Tracks(), c.Tracks())
}

func TestLoadCatalog_Invalid(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "tracks.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 1, "tracks": []}`), 0o644))

	_, err := loadCatalog(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, vibe.ErrValidation)
	assert.Contains(t, err.Error(), "load tracks")
}

func TestNewLogger_NoPathDiscards(t *testing.T) {
	t.Parallel()
	logger, closeLog, err := newLogger("", "info")
	require.NoError(t, err)
	defer closeLog()
	logger.Info().Msg("dropped")
}

func TestNewLogger_WritesJSONToFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "vibe.log")
	logger, closeLog, err := newLogger(path, "warn")
	require.NoError(t, err)

	logger.Info().Msg("below level")
	logger.Warn().Str("kind", "transport").Msg("send message failed")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"level":"warn"`)
	assert.Contains(t, lines[0], `"kind":"transport"`)
	assert.Contains(t, lines[0], `"app":"vibe"`)
}

func TestNewLogger_BadLevel(t *testing.T) {
	t.Parallel()
	_, _, err := newLogger(filepath.Join(t.TempDir(), "vibe.log"), "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
