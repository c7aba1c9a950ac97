package config

import (
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the environment. The bot token and the whisper model
// path have no defaults: without them the process must not start.
type Config struct {
	Token   string `env:"TELEGRAM_TOKEN" env-required:"true"`
	DataDir string `env:"CAPTURE_DATA_DIR" env-default:"data"`
	IndexDB string `env:"CAPTURE_INDEX_DB"`

	FFmpegPath       string `env:"FFMPEG_PATH" env-default:"ffmpeg"`
	TranscodeWorkers int    `env:"TRANSCODE_WORKERS" env-default:"2"`

	WhisperModel    string `env:"WHISPER_MODEL" env-required:"true"`
	WhisperLanguage string `env:"WHISPER_LANGUAGE" env-default:"auto"`
	WhisperThreads  int    `env:"WHISPER_THREADS" env-default:"0"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.IndexDB == "" {
		cfg.IndexDB = filepath.Join(cfg.DataDir, "captures.db")
	}
	return cfg, nil
}

// LogPath is the capture spreadsheet inside the data dir.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "data.xlsx")
}
