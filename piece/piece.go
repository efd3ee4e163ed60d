package piece

import (
	"fmt"
	"image"
	"slices"
	"strings"

	"github.com/deitrix/blocks/cell"
)

// BlockSize is the width and height of a single block in pixels
const BlockSize = 30

// ShapeType identifies one of the seven tetrominoes.
type ShapeType int

const (
	None ShapeType = iota - 1
	I
	J
	L
	O
	S
	T
	Z
	// Count is the number of playable shape types
	Count
)

var shapeNames = [Count]string{"I", "J", "L", "O", "S", "T", "Z"}

func (t ShapeType) String() string {
	if t < I || t >= Count {
		return "None"
	}
	return shapeNames[t]
}

// Movement is a unit translation of a piece.
type Movement int

const (
	MoveNone Movement = iota
	MoveLeft
	MoveRight
	MoveDown
)

type shape struct {
	mask []bool
	size int
	tint cell.Tint
}

var catalog = [Count]shape{
	I: {
		mask: []bool{
			false, true, false, false,
			false, true, false, false,
			false, true, false, false,
			false, true, false, false,
		},
		size: 4,
		tint: cell.LightBlue,
	},
	J: {
		mask: []bool{
			false, true, false,
			false, true, false,
			true, true, false,
		},
		size: 3,
		tint: cell.DarkBlue,
	},
	L: {
		mask: []bool{
			false, true, false,
			false, true, false,
			false, true, true,
		},
		size: 3,
		tint: cell.Orange,
	},
	O: {
		mask: []bool{
			true, true, false,
			true, true, false,
			false, false, false,
		},
		size: 3,
		tint: cell.Yellow,
	},
	S: {
		mask: []bool{
			false, false, false,
			false, true, true,
			true, true, false,
		},
		size: 3,
		tint: cell.Green,
	},
	T: {
		mask: []bool{
			false, false, false,
			true, true, true,
			false, true, false,
		},
		size: 3,
		tint: cell.Magenta,
	},
	Z: {
		mask: []bool{
			false, false, false,
			true, true, false,
			false, true, true,
		},
		size: 3,
		tint: cell.Red,
	},
}

// Piece is a tetromino instance. Mask is a Size x Size row-major matrix of solid blocks, Dim is
// the on-screen size and Pos the on-screen top-left corner, both in pixels.
type Piece struct {
	Type ShapeType
	Mask []bool
	Size int
	Dim  image.Point
	Pos  image.Point
	Tint cell.Tint
}

// New creates a piece of the given type at the given screen position. It panics if t is not a
// playable type.
func New(t ShapeType, pos image.Point) Piece {
	if t < I || t >= Count {
		panic(fmt.Sprintf("piece: unknown shape type %d", t))
	}
	s := catalog[t]
	return Piece{
		Type: t,
		Mask: slices.Clone(s.mask),
		Size: s.size,
		Dim:  image.Pt(s.size*BlockSize, s.size*BlockSize),
		Pos:  pos,
		Tint: s.tint,
	}
}

func (p Piece) Rows() int    { return p.Size }
func (p Piece) Columns() int { return p.Size }

// HasBlock reports whether the matrix cell at row, col is solid.
func (p Piece) HasBlock(row, col int) bool {
	if row < 0 || col < 0 || row >= p.Size || col >= p.Size {
		return false
	}
	return p.Mask[row*p.Size+col]
}

// Bounds returns the smallest matrix rectangle holding every solid block, with X as the column
// and Y as the row. An empty mask yields the zero rectangle.
func (p Piece) Bounds() image.Rectangle {
	minX, minY, maxX, maxY := p.Size, p.Size, -1, -1
	for i := range p.Mask {
		if !p.Mask[i] {
			continue
		}
		x := i % p.Size
		y := i / p.Size
		minX = min(minX, x)
		minY = min(minY, y)
		maxX = max(maxX, x)
		maxY = max(maxY, y)
	}
	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

func (p Piece) Clone() Piece {
	p.Mask = slices.Clone(p.Mask)
	return p
}

// Rotate turns the piece a quarter turn anticlockwise in place.
func (p *Piece) Rotate() {
	indices, ok := rotateIndices[len(p.Mask)]
	if !ok {
		return
	}
	newMask := make([]bool, len(p.Mask))
	for i := range p.Mask {
		newMask[indices[i]] = p.Mask[i]
	}
	p.Mask = newMask
}

// Move translates the piece on screen by the given number of blocks. No collision checking is
// done here.
func (p *Piece) Move(dir Movement, blocks int) {
	bw := p.Dim.X / p.Size
	bh := p.Dim.Y / p.Size
	switch dir {
	case MoveLeft:
		p.Pos.X -= bw * blocks
	case MoveRight:
		p.Pos.X += bw * blocks
	case MoveDown:
		p.Pos.Y += bh * blocks
	}
}

// String dumps the piece for debugging.
func (p Piece) String() string {
	var sb strings.Builder
	r, g, b, _ := p.Tint.Channels()
	fmt.Fprintf(&sb, "Tetromino %s:\n", p.Type)
	fmt.Fprintf(&sb, "    Size: (%d,%d)\n", p.Dim.X, p.Dim.Y)
	fmt.Fprintf(&sb, "Position: (%d,%d)\n", p.Pos.X, p.Pos.Y)
	fmt.Fprintf(&sb, "   Color: (%d,%d,%d)\n", r, g, b)
	sb.WriteString("  Matrix:\n")
	for row := 0; row < p.Size; row++ {
		sb.WriteString("    ")
		for col := 0; col < p.Size; col++ {
			if p.HasBlock(row, col) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// rotateIndices maps each index of a square mask to its position after an anticlockwise turn,
// keyed by mask length.
var rotateIndices = map[int][]int{
	9: {
		6, 3, 0,
		7, 4, 1,
		8, 5, 2,
	},
	16: {
		12, 8, 4, 0,
		13, 9, 5, 1,
		14, 10, 6, 2,
		15, 11, 7, 3,
	},
}
