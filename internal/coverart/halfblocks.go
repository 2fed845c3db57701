package coverart

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
)

// Halfblocks renders an image into a block of text sized widthCells x
// heightCells, using the upper-half-block glyph so each cell carries two
// vertically stacked pixels. Colors are 24-bit SGR sequences; every line is
// terminated with a reset so surrounding UI styling is unaffected.
func Halfblocks(img image.Image, widthCells, heightCells int) string {
	if img == nil || widthCells <= 0 || heightCells <= 0 {
		return ""
	}

	// Terminal cells are roughly twice as tall as wide, and each cell holds
	// two pixel rows, so the pixel canvas is widthCells x heightCells*2.
	fitted := imaging.Fit(img, widthCells, heightCells*2, imaging.Lanczos)
	bounds := fitted.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var sb strings.Builder
	sb.Grow(width * height * 20)

	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			upper := fitted.At(bounds.Min.X+x, bounds.Min.Y+y)
			var lower color.Color = color.Black
			if y+1 < height {
				lower = fitted.At(bounds.Min.X+x, bounds.Min.Y+y+1)
			}
			ur, ug, ub := rgb8(upper)
			lr, lg, lb := rgb8(lower)
			fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", ur, ug, ub, lr, lg, lb)
		}
		sb.WriteString("\x1b[0m\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func rgb8(c color.Color) (uint8, uint8, uint8) {
	r, g, b, _ := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}
