// Package stt runs speech-to-text over whisper.cpp. The model is loaded
// once at startup and shared read-only by every transcription.
package stt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
)

type Config struct {
	ModelPath string
	Language  string // "auto", "en", "ru", ...
	Threads   int    // <=0 => NumCPU()
}

type Transcriber struct {
	model    whisper.Model
	language string
	threads  int
}

func New(cfg Config) (*Transcriber, error) {
	if cfg.ModelPath == "" {
		return nil, errors.New("empty model path")
	}
	m, err := whisper.New(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	lang := cfg.Language
	if lang == "" {
		lang = "auto"
	}
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	return &Transcriber{model: m, language: lang, threads: threads}, nil
}

func (t *Transcriber) Close() error {
	if t.model == nil {
		return nil
	}
	return t.model.Close()
}

// Transcribe decodes the wav file and runs the model over it, returning the
// joined segment text.
func (t *Transcriber) Transcribe(ctx context.Context, wavPath string) (string, error) {
	pcm, err := DecodeWAV(wavPath)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", wavPath, err)
	}
	if len(pcm) == 0 {
		return "", errors.New("no audio samples")
	}

	wctx, err := t.model.NewContext()
	if err != nil {
		return "", fmt.Errorf("new context: %w", err)
	}
	if err := wctx.SetLanguage(t.language); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	wctx.SetThreads(uint(t.threads))

	if err := wctx.Process(pcm, nil, nil, nil); err != nil {
		return "", fmt.Errorf("process: %w", err)
	}

	var text string
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		seg, err := wctx.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("next segment: %w", err)
		}
		if text == "" {
			text = seg.Text
		} else {
			text += " " + seg.Text
		}
	}
	return text, nil
}
