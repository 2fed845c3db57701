package metadata

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhowden/tag"
)

// Picture is an embedded cover image.
type Picture struct {
	MIMEType string
	Data     []byte
}

// Track is the tag data Punini cares about.
type Track struct {
	Title    string
	Artist   string
	Album    string
	Year     int
	TrackNo  int
	Lyrics   string
	Picture  *Picture
	Untagged bool
}

// Probe reads the tags of an audio file. A file whose tags cannot be parsed
// is not an error: the result carries a title derived from the file name and
// Untagged set, mirroring how the player treats tag failures as cosmetic.
func Probe(path string) (Track, error) {
	file, err := os.Open(path)
	if err != nil {
		return Track{}, fmt.Errorf("open audio file: %w", err)
	}
	defer file.Close()

	meta, err := tag.ReadFrom(file)
	if err != nil {
		return Track{Title: DeriveTitle(path), Untagged: true}, nil
	}

	track := Track{
		Title:  strings.TrimSpace(meta.Title()),
		Artist: strings.TrimSpace(meta.Artist()),
		Album:  strings.TrimSpace(meta.Album()),
		Year:   meta.Year(),
		Lyrics: meta.Lyrics(),
	}
	track.TrackNo, _ = meta.Track()

	if track.Title == "" {
		track.Title = DeriveTitle(path)
	}
	if track.Artist == "" {
		track.Artist = "Unknown Artist"
	}
	if track.Album == "" {
		track.Album = "Unknown Album"
	}

	if pic := meta.Picture(); pic != nil && len(pic.Data) > 0 {
		track.Picture = &Picture{MIMEType: pic.MIMEType, Data: pic.Data}
	}

	return track, nil
}
