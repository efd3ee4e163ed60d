package piece

import (
	"image"
	"slices"
	"testing"

	"github.com/deitrix/blocks/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTypes() []ShapeType {
	return []ShapeType{I, J, L, O, S, T, Z}
}

func TestNew(t *testing.T) {
	for _, typ := range allTypes() {
		p := New(typ, image.Pt(120, 30))
		assert.Equal(t, typ, p.Type)
		assert.Len(t, p.Mask, p.Size*p.Size)
		assert.Equal(t, image.Pt(p.Size*BlockSize, p.Size*BlockSize), p.Dim)
		assert.Equal(t, image.Pt(120, 30), p.Pos)

		var blocks int
		for _, solid := range p.Mask {
			if solid {
				blocks++
			}
		}
		assert.Equal(t, 4, blocks, "%s should have 4 blocks", typ)
	}
	assert.Equal(t, 4, New(I, image.Point{}).Size)
	assert.Equal(t, cell.LightBlue, New(I, image.Point{}).Tint)
	assert.Panics(t, func() { New(None, image.Point{}) })
}

func TestNew_CopiesCatalog(t *testing.T) {
	p := New(T, image.Point{})
	p.Mask[0] = true
	assert.False(t, New(T, image.Point{}).Mask[0])
}

func TestPiece_RotateFourTimes(t *testing.T) {
	for _, typ := range allTypes() {
		p := New(typ, image.Point{})
		orig := slices.Clone(p.Mask)
		for i := 0; i < 4; i++ {
			p.Rotate()
			if i < 3 {
				assert.NotEqual(t, orig, p.Mask, "%s after %d rotations", typ, i+1)
			}
		}
		assert.Equal(t, orig, p.Mask, "%s after 4 rotations", typ)
	}
}

func TestPiece_RotateAnticlockwise(t *testing.T) {
	tests := []struct {
		typ    ShapeType
		expect []bool
	}{
		{
			typ: I,
			expect: []bool{
				false, false, false, false,
				false, false, false, false,
				true, true, true, true,
				false, false, false, false,
			},
		},
		{
			typ: L,
			expect: []bool{
				false, false, true,
				true, true, true,
				false, false, false,
			},
		},
		{
			typ: T,
			expect: []bool{
				false, true, false,
				false, true, true,
				false, true, false,
			},
		},
	}
	for _, test := range tests {
		p := New(test.typ, image.Point{})
		p.Rotate()
		assert.Equal(t, test.expect, p.Mask, "Rotate(%s)", test.typ)
	}
}

func TestPiece_Move(t *testing.T) {
	p := New(J, image.Pt(120, 30))
	p.Move(MoveLeft, 1)
	assert.Equal(t, image.Pt(90, 30), p.Pos)
	p.Move(MoveRight, 2)
	assert.Equal(t, image.Pt(150, 30), p.Pos)
	p.Move(MoveDown, 1)
	assert.Equal(t, image.Pt(150, 60), p.Pos)
	p.Move(MoveNone, 5)
	assert.Equal(t, image.Pt(150, 60), p.Pos)
}

func TestPiece_Clone(t *testing.T) {
	p := New(S, image.Point{})
	c := p.Clone()
	c.Rotate()
	assert.NotEqual(t, p.Mask, c.Mask)
	assert.Equal(t, New(S, image.Point{}).Mask, p.Mask)
}

func TestPiece_HasBlock(t *testing.T) {
	p := New(I, image.Point{})
	for row := 0; row < 4; row++ {
		assert.True(t, p.HasBlock(row, 1))
		assert.False(t, p.HasBlock(row, 0))
	}
	assert.False(t, p.HasBlock(-1, 1))
	assert.False(t, p.HasBlock(4, 1))
}

func TestPiece_Bounds(t *testing.T) {
	tests := []struct {
		typ    ShapeType
		expect image.Rectangle
	}{
		{I, image.Rect(1, 0, 2, 4)},
		{J, image.Rect(0, 0, 2, 3)},
		{O, image.Rect(0, 0, 2, 2)},
		{T, image.Rect(0, 1, 3, 3)},
	}
	for _, test := range tests {
		got := New(test.typ, image.Point{}).Bounds()
		assert.Equal(t, test.expect, got, "Bounds(%s)", test.typ)
	}
	assert.Equal(t, image.Rectangle{}, Piece{Mask: make([]bool, 9), Size: 3}.Bounds())
}

func TestPiece_String(t *testing.T) {
	s := New(I, image.Pt(120, 30)).String()
	require.Contains(t, s, "Tetromino I")
	assert.Contains(t, s, "Position: (120,30)")
	assert.Contains(t, s, "Color: (173,216,230)")
	assert.Contains(t, s, "    0100\n")
}

func TestShapeType_String(t *testing.T) {
	assert.Equal(t, "Z", Z.String())
	assert.Equal(t, "None", None.String())
}
