// Package transcode wraps the external ffmpeg executable used to convert
// voice notes to wav before transcription.
package transcode

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Converter turns one audio file into another format.
type Converter interface {
	// Available reports whether the underlying tool can be invoked at all.
	Available() error
	// Convert writes out from in, overwriting out if it exists.
	Convert(ctx context.Context, in, out string) error
}

// FFmpeg invokes the ffmpeg binary at Path.
type FFmpeg struct {
	Path string
}

func (f *FFmpeg) bin() string {
	if f.Path == "" {
		return "ffmpeg"
	}
	return f.Path
}

// Available probes the binary with -version.
func (f *FFmpeg) Available() error {
	if err := exec.Command(f.bin(), "-version").Run(); err != nil {
		return fmt.Errorf("ffmpeg not invocable: %w", err)
	}
	return nil
}

// Convert runs ffmpeg -y -i in out. Stderr is folded into the error so the
// caller can surface it to the user.
func (f *FFmpeg) Convert(ctx context.Context, in, out string) error {
	cmd := exec.CommandContext(ctx, f.bin(), "-y", "-i", in, out)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, lastLine(output))
	}
	return nil
}

func lastLine(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
