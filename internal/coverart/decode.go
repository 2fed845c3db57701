package coverart

import (
	"bytes"
	"fmt"
	"image"

	// Cover pictures in the wild are JPEG or PNG almost exclusively; GIF
	// shows up in old ID3 tags.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Decode parses embedded picture bytes into an image.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode cover image: %w", err)
	}
	return img, nil
}
