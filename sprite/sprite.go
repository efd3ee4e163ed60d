package sprite

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// cellPixels is the resolution of the generated cell sprite. It is scaled to the block size when
// drawn.
const cellPixels = 32

var Cell *ebiten.Image

// Load builds the sprites and parses the fonts. It must be called before the game starts.
func Load() error {
	Cell = ebiten.NewImageFromImage(cellImage(cellPixels))
	if err := loadFonts(); err != nil {
		return fmt.Errorf("loading fonts: %w", err)
	}
	return nil
}

// cellImage draws a white square with a darker bevel so a tinted cell still reads as a block.
func cellImage(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	edge := size / 8
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var c color.NRGBA
			switch {
			case x < edge || y < edge:
				c = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
			case x >= size-edge || y >= size-edge:
				c = color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xFF}
			default:
				c = color.NRGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 0xFF}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
