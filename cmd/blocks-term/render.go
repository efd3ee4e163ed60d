package main

import (
	"github.com/deitrix/blocks/board"
	"github.com/deitrix/blocks/cell"
	"github.com/deitrix/blocks/piece"
	"github.com/gdamore/tcell/v2"
)

// cellWidth is the number of terminal columns per grid cell, which keeps blocks roughly square
const cellWidth = 2

// Canvas is the part of tcell.Screen the renderer draws on.
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xD3, 0xD3, 0xD3))
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func tintStyle(t cell.Tint) tcell.Style {
	r, g, b, _ := t.Channels()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// screenCell is the terminal position of the left half of the grid cell at row, col. The grid
// is framed by a one character border and row 0 is at the bottom.
func screenCell(s board.Snapshot, row, col int) (x, y int) {
	return 1 + col*cellWidth, 1 + (s.Rows - 1 - row)
}

func draw(c Canvas, s board.Snapshot) {
	drawBorder(c, s)
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Columns; col++ {
			x, y := screenCell(s, row, col)
			fillCell(c, x, y, tintStyle(s.At(row, col).Tint))
		}
	}
	if p := s.Active; p != nil {
		for r := 0; r < p.Rows(); r++ {
			for col := 0; col < p.Columns(); col++ {
				row, gc := s.Anchor.Y-r, s.Anchor.X+col
				if !p.HasBlock(r, col) || row < 0 || row >= s.Rows || gc < 0 || gc >= s.Columns {
					continue
				}
				x, y := screenCell(s, row, gc)
				fillCell(c, x, y, tintStyle(p.Tint))
			}
		}
	}
	drawNext(c, s)
}

func fillCell(c Canvas, x, y int, style tcell.Style) {
	for i := 0; i < cellWidth; i++ {
		c.SetContent(x+i, y, ' ', nil, style)
	}
}

func drawBorder(c Canvas, s board.Snapshot) {
	right := 1 + s.Columns*cellWidth
	bottom := 1 + s.Rows
	for y := 1; y < bottom; y++ {
		c.SetContent(0, y, '│', nil, borderStyle)
		c.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := 1; x < right; x++ {
		c.SetContent(x, 0, '─', nil, borderStyle)
		c.SetContent(x, bottom, '─', nil, borderStyle)
	}
	c.SetContent(0, 0, '┌', nil, borderStyle)
	c.SetContent(right, 0, '┐', nil, borderStyle)
	c.SetContent(0, bottom, '└', nil, borderStyle)
	c.SetContent(right, bottom, '┘', nil, borderStyle)
}

// drawNext shows the next piece to the right of the grid, clearing the preview area first.
func drawNext(c Canvas, s board.Snapshot) {
	left := 3 + s.Columns*cellWidth
	drawString(c, left, 1, "Next", textStyle)
	blank := tintStyle(cell.Background)
	for r := 0; r < 4; r++ {
		for col := 0; col < 4; col++ {
			fillCell(c, left+col*cellWidth, 3+r, blank)
		}
	}
	if s.Next == nil {
		return
	}
	drawPreview(c, *s.Next, left, 3)
}

func drawPreview(c Canvas, p piece.Piece, left, top int) {
	b := p.Bounds()
	for r := b.Min.Y; r < b.Max.Y; r++ {
		for col := b.Min.X; col < b.Max.X; col++ {
			if p.HasBlock(r, col) {
				fillCell(c, left+(col-b.Min.X)*cellWidth, top+r-b.Min.Y, tintStyle(p.Tint))
			}
		}
	}
}

func drawString(c Canvas, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		c.SetContent(x+i, y, r, nil, style)
	}
}
