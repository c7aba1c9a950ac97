// Package media owns the on-disk area for downloaded payloads: photos as
// .jpg, voice notes as .ogg plus their transcoded .wav siblings.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	photosDir = "photos"
	audioDir  = "audio"
)

type Store struct {
	root string
}

// Open prepares the photos/ and audio/ directories under root.
func Open(root string) (*Store, error) {
	for _, dir := range []string{photosDir, audioDir} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create media dir: %w", err)
		}
	}
	return &Store{root: root}, nil
}

// PhotoPath returns a fresh path for one downloaded photo.
func (s *Store) PhotoPath() string {
	return filepath.Join(s.root, photosDir, uuid.NewString()+".jpg")
}

// VoicePath returns a fresh absolute path for one downloaded voice note.
func (s *Store) VoicePath() (string, error) {
	return filepath.Abs(filepath.Join(s.root, audioDir, uuid.NewString()+".ogg"))
}

// WavPath is the transcode target next to an .ogg original: same stem,
// .wav extension.
func WavPath(ogg string) string {
	return strings.TrimSuffix(ogg, filepath.Ext(ogg)) + ".wav"
}
