package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("WHISPER_MODEL", "models/ggml-base.bin")
}

func TestLoadDefaults(t *testing.T) {
	validEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Token)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "data/captures.db", cfg.IndexDB)
	assert.Equal(t, "data/data.xlsx", cfg.LogPath())
	assert.Equal(t, "ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, 2, cfg.TranscodeWorkers)
	assert.Equal(t, "auto", cfg.WhisperLanguage)
	assert.Equal(t, 0, cfg.WhisperThreads)
}

func TestLoadOverrides(t *testing.T) {
	validEnv(t)
	t.Setenv("CAPTURE_DATA_DIR", "/var/lib/capturebot")
	t.Setenv("CAPTURE_INDEX_DB", "/tmp/idx.db")
	t.Setenv("TRANSCODE_WORKERS", "4")
	t.Setenv("WHISPER_LANGUAGE", "en")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/capturebot/data.xlsx", cfg.LogPath())
	assert.Equal(t, "/tmp/idx.db", cfg.IndexDB)
	assert.Equal(t, 4, cfg.TranscodeWorkers)
	assert.Equal(t, "en", cfg.WhisperLanguage)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("WHISPER_MODEL", "models/ggml-base.bin")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadMissingModel(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	_, err := Load()
	require.Error(t, err)
}
