package bot

import (
	"context"
	"log/slog"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/eliseohh/capturebot/internal/capture"
	"github.com/eliseohh/capturebot/internal/index"
	"github.com/eliseohh/capturebot/internal/media"
	"github.com/eliseohh/capturebot/internal/transcode"
)

// Downloader fetches a gateway file onto disk.
type Downloader interface {
	Download(file *tele.File, dst string) error
}

// Transcriber converts a wav file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) (string, error)
}

// Deps are the collaborators every handler works against.
type Deps struct {
	Log   *capture.Log
	Index *index.DB
	Media *media.Store
	Conv  transcode.Converter
	STT   Transcriber
}

type Bot struct {
	api   *tele.Bot
	log   *capture.Log
	idx   *index.DB
	media *media.Store
	files Downloader
	conv  transcode.Converter
	stt   Transcriber
}

func New(token string, deps Deps) (*Bot, error) {
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			// Unhandled handler errors land here; the event is dropped and
			// the bot keeps serving.
			slog.Error("handler failed", "err", err)
		},
	}

	api, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	b := &Bot{
		api:   api,
		log:   deps.Log,
		idx:   deps.Index,
		media: deps.Media,
		files: &apiFiles{api: api},
		conv:  deps.Conv,
		stt:   deps.STT,
	}
	b.register()
	return b, nil
}

func (b *Bot) Start() {
	slog.Info("bot started", "username", b.api.Me.Username)
	b.api.Start()
}

func (b *Bot) register() {
	b.api.Handle("/start", b.handleStart)
	b.api.Handle("/report", b.handleReport)
	b.api.Handle("/stats", b.handleStats)

	b.api.Handle(tele.OnText, b.handleText)
	b.api.Handle(tele.OnPhoto, b.handlePhoto)
	b.api.Handle(tele.OnLocation, b.handleLocation)
	b.api.Handle(tele.OnVoice, b.handleVoice)
	// Anything else stays unregistered and is never dispatched.
}

type apiFiles struct {
	api *tele.Bot
}

func (d *apiFiles) Download(file *tele.File, dst string) error {
	return d.api.Download(file, dst)
}
