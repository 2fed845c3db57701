package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// ErrUnsupportedFormat reports a file extension the decoder set cannot handle.
// Such files stay browsable; only playback is refused.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Decode opens an audio file and returns a seekable PCM stream. The decoder
// is chosen by file extension, matching the scanner's whitelist.
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open audio file: %w", err)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case "flac":
		streamer, format, err = flac.Decode(file)
	case "mp3":
		streamer, format, err = mp3.Decode(file)
	case "wav":
		streamer, format, err = wav.Decode(file)
	case "ogg":
		streamer, format, err = vorbis.Decode(file)
	default:
		_ = file.Close()
		return nil, beep.Format{}, fmt.Errorf("%w: .%s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		_ = file.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", ext, err)
	}
	return streamer, format, nil
}
