package main

import (
	"os"

	"github.com/joho/godotenv"
	cli "github.com/spf13/pflag"

	"github.com/lmittmann/tint"
	log "log/slog"

	"github.com/eliseohh/capturebot/internal/bot"
	"github.com/eliseohh/capturebot/internal/capture"
	"github.com/eliseohh/capturebot/internal/config"
	"github.com/eliseohh/capturebot/internal/index"
	"github.com/eliseohh/capturebot/internal/media"
	"github.com/eliseohh/capturebot/internal/stt"
	"github.com/eliseohh/capturebot/internal/transcode"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	logLevel := cli.StringP("log", "l", "info", "Log level")
	cli.Parse()

	log.SetDefault(log.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: logLevelMap[*logLevel],
	})))

	godotenv.Load(*envFile)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config invalid", "err", err)
		os.Exit(1)
	}

	store, err := media.Open(cfg.DataDir)
	if err != nil {
		log.Error("media store init failed", "err", err)
		os.Exit(1)
	}

	capLog, err := capture.Open(cfg.LogPath())
	if err != nil {
		log.Error("capture log init failed", "err", err)
		os.Exit(1)
	}
	log.Debug("capture log ready", "path", capLog.Path())

	idx, err := index.New(cfg.IndexDB)
	if err != nil {
		log.Error("stats index init failed", "err", err)
		os.Exit(1)
	}
	defer idx.Close()
	if err := idx.Init(); err != nil {
		log.Error("stats schema failed", "err", err)
		os.Exit(1)
	}

	transcriber, err := stt.New(stt.Config{
		ModelPath: cfg.WhisperModel,
		Language:  cfg.WhisperLanguage,
		Threads:   cfg.WhisperThreads,
	})
	if err != nil {
		log.Error("whisper init failed", "model", cfg.WhisperModel, "err", err)
		os.Exit(1)
	}
	defer transcriber.Close()
	log.Debug("whisper model loaded", "model", cfg.WhisperModel)

	pool := transcode.NewPool(&transcode.FFmpeg{Path: cfg.FFmpegPath}, cfg.TranscodeWorkers)
	defer pool.Close()

	b, err := bot.New(cfg.Token, bot.Deps{
		Log:   capLog,
		Index: idx,
		Media: store,
		Conv:  pool,
		STT:   transcriber,
	})
	if err != nil {
		log.Error("bot init failed", "err", err)
		os.Exit(1)
	}

	log.Info("🤖 Bot online. Listening...")
	b.Start()
}
