package lyrics

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// Source records where a lyric track came from.
type Source string

const (
	SourceNone     Source = "none"
	SourceSidecar  Source = "sidecar"
	SourceEmbedded Source = "embedded"
)

// SidecarPath returns the .lrc path next to an audio file.
func SidecarPath(audioPath string) string {
	ext := lastExt(audioPath)
	if ext == "" {
		return audioPath + ".lrc"
	}
	return audioPath[:len(audioPath)-len(ext)] + ".lrc"
}

func lastExt(path string) string {
	if idx := strings.LastIndexByte(path, '.'); idx >= 0 && !strings.ContainsRune(path[idx:], '/') {
		return path[idx:]
	}
	return ""
}

// Resolve loads cues for an audio file. A sidecar .lrc wins when
// preferSidecar is set; otherwise, or when no sidecar exists, the embedded
// text (already pulled out of the tags by the caller) is parsed instead.
func Resolve(audioPath, embedded string, preferSidecar bool) (Cues, Source, error) {
	if preferSidecar {
		body, err := os.ReadFile(SidecarPath(audioPath))
		switch {
		case err == nil:
			return ParseLRC(string(body)), SourceSidecar, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, SourceNone, err
		}
	}
	if strings.TrimSpace(embedded) != "" {
		cues := ParseLRC(embedded)
		if len(cues) > 0 {
			return cues, SourceEmbedded, nil
		}
	}
	return nil, SourceNone, nil
}
