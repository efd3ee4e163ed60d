// Package board implements the rules of the game: the grid, the active and next pieces, movement
// and rotation checks, locking, and the tick counters that pace spawning and falling.
package board

import (
	"image"

	"github.com/deitrix/blocks/piece"
)

// FrameCounters pace the board. Elapsed counters count ticks and are reset to zero when their
// limit triggers.
type FrameCounters struct {
	SpawnDelayLimit   int
	SpawnDelayElapsed int
	AutoFallLimit     int
	AutoFallElapsed   int
}

type Board struct {
	grid *Grid
	gen  *piece.Generator
	// active is the piece being controlled by the player, nil while waiting for a spawn
	active *piece.Piece
	// next is the piece that will be promoted to active on the next spawn
	next *piece.Piece
	// anchor is the grid column and row of the active piece's top-left matrix cell
	anchor   image.Point
	counters FrameCounters
	// locked is the number of pieces committed to the grid
	locked int
}

// New creates an empty board with the first next piece already chosen.
func New(opts ...Option) *Board {
	c := config{
		spawnDelay: SpawnDelay,
		autoFall:   AutoFallInterval,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.gen == nil {
		c.gen = piece.NewSeededGenerator(0)
	}
	b := &Board{
		gen: c.gen,
		counters: FrameCounters{
			SpawnDelayLimit: c.spawnDelay,
			AutoFallLimit:   c.autoFall,
		},
	}
	b.Reset()
	return b
}

// Reset clears the grid and both piece slots and picks a new next piece. The generator keeps its
// state.
func (b *Board) Reset() {
	b.grid = NewGrid(Rows, Columns)
	b.active = nil
	b.locked = 0
	b.anchor = image.Pt(SpawnColumn, SpawnRow)
	b.counters.SpawnDelayElapsed = 0
	b.counters.AutoFallElapsed = 0
	b.nextPiece()
}

// Update advances the board by one tick.
func (b *Board) Update(in Input) {
	if b.active == nil {
		if b.counters.SpawnDelayElapsed < b.counters.SpawnDelayLimit {
			b.counters.SpawnDelayElapsed++
		} else {
			b.counters.SpawnDelayElapsed = 0
			b.spawn()
		}
		return
	}

	if in.WasPressedThisTick(KeyRotate) {
		b.CanRotate()
	}

	if in.WasPressedThisTick(KeyLeft) {
		if b.CanMove(piece.MoveLeft) {
			b.move(piece.MoveLeft)
		}
	} else if in.WasPressedThisTick(KeyRight) {
		if b.CanMove(piece.MoveRight) {
			b.move(piece.MoveRight)
		}
	}

	if in.WasPressedThisTick(KeyDown) || b.counters.AutoFallElapsed >= b.counters.AutoFallLimit {
		if b.CanMove(piece.MoveDown) {
			b.move(piece.MoveDown)
		}
		b.counters.AutoFallElapsed = 0
	} else {
		b.counters.AutoFallElapsed++
	}

	if !b.CanMove(piece.MoveDown) {
		b.lock()
	}
}

// spawn promotes the next piece to active and chooses a new next piece.
func (b *Board) spawn() {
	b.active = b.next
	b.anchor = image.Pt(SpawnColumn, SpawnRow)
	b.nextPiece()
}

func (b *Board) nextPiece() {
	p := piece.New(b.gen.NextShape(), spawnPosition())
	b.next = &p
}

// spawnPosition is the screen position of a piece whose anchor is the spawn cell, leaving one
// block of margin around the grid.
func spawnPosition() image.Point {
	return image.Pt((SpawnColumn+1)*piece.BlockSize, (Rows-SpawnRow)*piece.BlockSize)
}

// Active reports whether a piece is currently falling.
func (b *Board) Active() bool {
	return b.active != nil
}

// Locked returns the number of pieces locked into the grid since the last reset.
func (b *Board) Locked() int {
	return b.locked
}

func (b *Board) Counters() FrameCounters {
	return b.counters
}

// Snapshot is everything a frontend needs to draw the board.
type Snapshot struct {
	Rows, Columns int
	// Cells is row-major with row 0 at the bottom
	Cells []Cell
	// Active is the falling piece, or nil
	Active *piece.Piece
	// Anchor is the grid position of Active's top-left matrix cell
	Anchor   image.Point
	Next     *piece.Piece
	Counters FrameCounters
	Locked   int
}

// At returns the cell at row, col.
func (s Snapshot) At(row, col int) Cell {
	return s.Cells[row*s.Columns+col]
}

// Snapshot copies the current state for rendering.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Rows:     b.grid.Rows(),
		Columns:  b.grid.Columns(),
		Cells:    b.grid.Cells(),
		Anchor:   b.anchor,
		Counters: b.counters,
		Locked:   b.locked,
	}
	if b.active != nil {
		p := b.active.Clone()
		s.Active = &p
	}
	if b.next != nil {
		p := b.next.Clone()
		s.Next = &p
	}
	return s
}

// DebugString dumps the active piece, or an empty string when there is none.
func (b *Board) DebugString() string {
	if b.active == nil {
		return ""
	}
	return b.active.String()
}
