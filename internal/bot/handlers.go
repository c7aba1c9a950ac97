package bot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/eliseohh/capturebot/internal/capture"
	"github.com/eliseohh/capturebot/internal/media"
)

const (
	replyStart    = "👋 Hello! Send me a message, photo, location, or voice note."
	replyText     = "✅ Text saved."
	replyPhoto    = "📸 Photo saved."
	replyLocation = "📍 Location saved."
	replyNoFFmpeg = "FFmpeg is not installed or not in PATH. Please install FFmpeg and add it to your PATH."
)

func (b *Bot) handleStart(c tele.Context) error {
	return c.Send(replyStart)
}

func (b *Bot) handleText(c tele.Context) error {
	msg := c.Message()
	rec := capture.Record{
		User: senderName(msg),
		Text: msg.Text,
		Date: time.Now().Format(capture.TimeFormat),
	}
	if err := b.save("text", rec); err != nil {
		return err
	}
	return c.Send(replyText)
}

func (b *Bot) handlePhoto(c tele.Context) error {
	msg := c.Message()
	// telebot exposes the highest-resolution variant directly.
	path := b.media.PhotoPath()
	if err := b.files.Download(&msg.Photo.File, path); err != nil {
		return err
	}
	rec := capture.Record{
		User:  senderName(msg),
		Photo: path,
		Date:  time.Now().Format(capture.TimeFormat),
	}
	if err := b.save("photo", rec); err != nil {
		return err
	}
	return c.Send(replyPhoto)
}

func (b *Bot) handleLocation(c tele.Context) error {
	msg := c.Message()
	loc := msg.Location
	rec := capture.Record{
		User:     senderName(msg),
		Location: formatCoord(loc.Lat) + ", " + formatCoord(loc.Lng),
		Date:     time.Now().Format(capture.TimeFormat),
	}
	if err := b.save("location", rec); err != nil {
		return err
	}
	return c.Send(replyLocation)
}

// handleVoice runs download -> transcode -> transcribe -> persist. The
// first three stages abort with a diagnostic reply; transcription and
// persistence errors propagate to OnError.
func (b *Bot) handleVoice(c tele.Context) error {
	msg := c.Message()

	ogg, err := b.media.VoicePath()
	if err != nil {
		return err
	}
	wav := media.WavPath(ogg)

	if err := b.files.Download(&msg.Voice.File, ogg); err != nil {
		return err
	}
	if _, err := os.Stat(ogg); err != nil {
		return c.Send(fmt.Sprintf("Audio file not found: %s", ogg))
	}

	if err := b.conv.Available(); err != nil {
		return c.Send(replyNoFFmpeg)
	}

	if err := b.conv.Convert(context.Background(), ogg, wav); err != nil {
		return c.Send(fmt.Sprintf("FFmpeg error: %v", err))
	}
	if _, err := os.Stat(wav); err != nil {
		return c.Send(fmt.Sprintf("WAV file not created: %s", wav))
	}

	text, err := b.stt.Transcribe(context.Background(), wav)
	if err != nil {
		return err
	}

	rec := capture.Record{
		User:      senderName(msg),
		VoiceText: text,
		Date:      time.Now().Format(capture.TimeFormat),
	}
	if err := b.save("voice", rec); err != nil {
		return err
	}
	return c.Send("🗣️ Voice converted: " + text)
}

func (b *Bot) handleReport(c tele.Context) error {
	doc := &tele.Document{
		File:     tele.FromDisk(b.log.Path()),
		FileName: filepath.Base(b.log.Path()),
	}
	return c.Send(doc)
}

func (b *Bot) handleStats(c tele.Context) error {
	counts, err := b.idx.CountByKind()
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		return c.Send("No captures yet.")
	}

	var sb strings.Builder
	sb.WriteString("📊 Captures\n")
	total := 0
	for _, kc := range counts {
		fmt.Fprintf(&sb, "%s: %d\n", kc.Kind, kc.Count)
		total += kc.Count
	}
	fmt.Fprintf(&sb, "total: %d", total)
	return c.Send(sb.String())
}

// save appends to the spreadsheet and counts the capture in the index. An
// index failure is logged but never blocks the capture itself.
func (b *Bot) save(kind string, rec capture.Record) error {
	if err := b.log.Append(rec); err != nil {
		return err
	}
	if b.idx != nil {
		if err := b.idx.Add(kind, rec.User, time.Now()); err != nil {
			slog.Warn("stats index update failed", "kind", kind, "err", err)
		}
	}
	return nil
}

func senderName(msg *tele.Message) string {
	if msg.Sender == nil {
		return ""
	}
	if msg.Sender.Username != "" {
		return msg.Sender.Username
	}
	return msg.Sender.FirstName
}

// formatCoord keeps the shortest decimal form but always shows at least one
// fractional digit, so 40 comes out as "40.0".
func formatCoord(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
