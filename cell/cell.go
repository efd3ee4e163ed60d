// Package cell holds the colours shared by pieces, the grid and the frontends.
package cell

import "image/color"

// Tint is a packed 0xRRGGBBAA colour.
type Tint uint32

const (
	LightBlue Tint = 0xADD8E6FF
	DarkBlue  Tint = 0x00008BFF
	Orange    Tint = 0xFFA500FF
	Yellow    Tint = 0xFFFF00FF
	Green     Tint = 0x00FF00FF
	Magenta   Tint = 0xFF00FFFF
	Red       Tint = 0xFF0000FF

	// Background is the colour of an empty grid cell
	Background Tint = 0x000000FF
	// GridLine outlines every grid cell, light gray at roughly 20% opacity
	GridLine Tint = 0xD3D3D332
)

// Channels splits the tint into its channels.
func (t Tint) Channels() (r, g, b, a uint8) {
	return uint8(t >> 24), uint8(t >> 16), uint8(t >> 8), uint8(t)
}

func (t Tint) NRGBA() color.NRGBA {
	r, g, b, a := t.Channels()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
