package board

import (
	"image"

	"github.com/deitrix/blocks/piece"
)

// CanMove reports whether the active piece can take one step in the given direction. It is false
// when there is no active piece. An anchor already hanging past a wall or the floor is rejected
// before any collision test.
func (b *Board) CanMove(dir piece.Movement) bool {
	if b.active == nil {
		return false
	}
	at := b.anchor
	switch dir {
	case piece.MoveLeft:
		if at.X < -1 {
			return false
		}
		at.X--
	case piece.MoveRight:
		if at.X+b.active.Columns() > b.grid.Columns()+1 {
			return false
		}
		at.X++
	case piece.MoveDown:
		if at.Y < 0 {
			return false
		}
		at.Y--
	}
	return !b.HasCollision(*b.active, at)
}

// HasCollision reports whether any solid block of p, with its top-left matrix cell at the given
// anchor, lands on a filled cell, left or right of the grid, or below the floor. Rows above the
// top of the grid are open.
func (b *Board) HasCollision(p piece.Piece, at image.Point) bool {
	for row := 0; row < p.Rows(); row++ {
		for col := 0; col < p.Columns(); col++ {
			if !p.HasBlock(row, col) {
				continue
			}
			x := at.X + col
			y := at.Y - row
			if x < 0 || x >= b.grid.Columns() || y < 0 {
				return true
			}
			if b.grid.At(y, x).Filled {
				return true
			}
		}
	}
	return false
}

// CanRotate rotates the active piece anticlockwise if the rotated piece fits, first kicking it
// back inside the walls when needed. It reports whether the rotation happened; a rejected
// rotation leaves the piece untouched.
func (b *Board) CanRotate() bool {
	if b.active == nil {
		return false
	}
	at := b.wallKick(b.anchor)

	p := b.active.Clone()
	p.Rotate()
	if b.HasCollision(p, at) {
		return false
	}

	if dx := at.X - b.anchor.X; dx > 0 {
		b.active.Move(piece.MoveRight, dx)
	} else if dx < 0 {
		b.active.Move(piece.MoveLeft, -dx)
	}
	b.anchor = at
	b.active.Rotate()
	return true
}

// wallKick pulls an anchor that hangs over a wall back toward the interior. The right-hand check
// triggers one column early but only ever shifts by the actual overflow.
func (b *Board) wallKick(at image.Point) image.Point {
	width := b.active.Columns()
	if at.X < 0 {
		at.X = 0
	} else if at.X+width >= b.grid.Columns() {
		at.X -= at.X + width - b.grid.Columns()
	}
	return at
}

func (b *Board) move(dir piece.Movement) {
	b.active.Move(dir, 1)
	switch dir {
	case piece.MoveLeft:
		b.anchor.X--
	case piece.MoveRight:
		b.anchor.X++
	case piece.MoveDown:
		b.anchor.Y--
	}
}

// lock commits every solid block of the active piece into the grid and empties the active slot.
func (b *Board) lock() {
	p := b.active
	for row := 0; row < p.Rows(); row++ {
		for col := 0; col < p.Columns(); col++ {
			if p.HasBlock(row, col) {
				b.grid.Fill(b.anchor.Y-row, b.anchor.X+col, p.Tint)
			}
		}
	}
	b.active = nil
	b.locked++
}
