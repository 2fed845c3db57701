package coverart

import (
	"fmt"
	"image"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/disintegration/imaging"
)

// Emit writes the image to w using the given protocol, wide at most
// widthCells character cells. Kitty and iTerm2 receive pixel data scaled to a
// sane size; half-blocks are rendered square-ish (width x width/2 cells).
func Emit(w io.Writer, img image.Image, protocol Protocol, widthCells int) error {
	if img == nil {
		return fmt.Errorf("emit cover art: no image")
	}
	if widthCells <= 0 {
		widthCells = 40
	}

	switch protocol {
	case ProtocolKitty:
		// Assume ~10px cell width; kitty scales inside the placement box.
		scaled := imaging.Fit(img, widthCells*10, widthCells*10, imaging.Lanczos)
		if err := rasterm.KittyWriteImage(w, scaled, rasterm.KittyImgOpts{}); err != nil {
			return fmt.Errorf("kitty image write: %w", err)
		}
		return nil
	case ProtocolITerm:
		scaled := imaging.Fit(img, widthCells*10, widthCells*10, imaging.Lanczos)
		if err := rasterm.ItermWriteImage(w, scaled); err != nil {
			return fmt.Errorf("iterm image write: %w", err)
		}
		return nil
	case ProtocolHalfblocks:
		if _, err := io.WriteString(w, Halfblocks(img, widthCells, widthCells/2)); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case ProtocolNone:
		return nil
	default:
		return fmt.Errorf("emit cover art: unknown protocol %q", protocol)
	}
}
