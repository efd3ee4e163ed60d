package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"

	"github.com/deitrix/blocks/board"
	"github.com/deitrix/blocks/cell"
	"github.com/deitrix/blocks/input"
	"github.com/deitrix/blocks/piece"
	"github.com/deitrix/blocks/sprite"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

const (
	// cellSize is the size of each cell in pixels
	cellSize = piece.BlockSize
	// gridLeft and gridTop leave one block of margin around the grid
	gridLeft = cellSize
	gridTop  = cellSize
	// panelWidth is the width of the panel to the right of the grid showing the next piece
	panelWidth = 6 * cellSize

	screenWidth  = gridLeft + board.Columns*cellSize + cellSize + panelWidth
	screenHeight = gridTop + board.Rows*cellSize + cellSize
)

// keyBindings maps window keys to board actions
var keyBindings = map[ebiten.Key]board.Key{
	ebiten.KeySpace: board.KeyRotate,
	ebiten.KeyUp:    board.KeyRotate,
	ebiten.KeyA:     board.KeyLeft,
	ebiten.KeyLeft:  board.KeyLeft,
	ebiten.KeyD:     board.KeyRight,
	ebiten.KeyRight: board.KeyRight,
	ebiten.KeyS:     board.KeyDown,
	ebiten.KeyDown:  board.KeyDown,
}

type Game struct {
	// Board holds the grid and the falling piece
	Board *board.Board
	// Keys turns key presses into one-shot board input
	Keys *input.Tracker
	// ShowDebug is a flag that indicates whether debug information should be shown
	ShowDebug bool
}

func NewGame(seed uint64) *Game {
	return &Game{
		Board: board.New(board.WithSeed(seed)),
		Keys:  input.NewTracker(),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Board.Reset()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.ShowDebug = !g.ShowDebug
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) {
		if s := g.Board.DebugString(); s != "" {
			log.Print(s)
		}
	}

	for key, action := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			g.Keys.Arm(action)
		}
	}

	g.Board.Update(g.Keys)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.Board.Snapshot()
	drawGrid(screen, s)
	if s.Active != nil {
		renderPiece(screen, *s.Active, s.Active.Pos)
	}
	drawNext(screen, s)
	if g.ShowDebug {
		drawText(screen, sprite.Monospace, strings.Join(debugLines(s), "\n"), 14, 8, 20, color.White)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

// cellPosition is the screen position of the grid cell at row, col. Row 0 is drawn at the bottom.
func cellPosition(row, col int) image.Point {
	return image.Pt(gridLeft+col*cellSize, gridTop+(board.Rows-1-row)*cellSize)
}

func drawGrid(screen *ebiten.Image, s board.Snapshot) {
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Columns; col++ {
			pos := cellPosition(row, col)
			c := s.At(row, col)
			if c.Filled {
				drawCell(screen, sprite.Cell, pos.X, pos.Y, cellSize, cellSize, c.Tint)
			} else {
				vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), cellSize, cellSize, c.Tint.NRGBA(), false)
			}
			vector.StrokeRect(screen, float32(pos.X)+0.5, float32(pos.Y)+0.5, cellSize-1, cellSize-1, 1, cell.GridLine.NRGBA(), false)
		}
	}
}

// drawNext shows the next piece centred in the side panel.
func drawNext(screen *ebiten.Image, s board.Snapshot) {
	panelX := gridLeft + s.Columns*cellSize + cellSize
	drawText(screen, sprite.Regular, "Next", 24, panelX+cellSize, gridTop+cellSize, color.White)
	if s.Next == nil {
		return
	}
	p := *s.Next
	b := p.Bounds()
	xoff := panelX + 3*cellSize - b.Dx()*cellSize/2 - b.Min.X*cellSize
	yoff := gridTop + 3*cellSize - b.Dy()*cellSize/2 - b.Min.Y*cellSize
	renderPiece(screen, p, image.Pt(xoff, yoff))
}

func debugLines(s board.Snapshot) []string {
	return []string{
		fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()),
		fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()),
		fmt.Sprintf("Active: %t", s.Active != nil),
		fmt.Sprintf("Anchor: %d,%d", s.Anchor.X, s.Anchor.Y),
		fmt.Sprintf("Spawn Delay: %d/%d", s.Counters.SpawnDelayElapsed, s.Counters.SpawnDelayLimit),
		fmt.Sprintf("Auto Fall: %d/%d", s.Counters.AutoFallElapsed, s.Counters.AutoFallLimit),
		fmt.Sprintf("Locked: %d", s.Locked),
	}
}

var fontFaceCache = make(map[*opentype.Font]map[float64]font.Face)

func drawText(img *ebiten.Image, f *opentype.Font, t string, size float64, x, y int, c color.Color) {
	if _, ok := fontFaceCache[f]; !ok {
		fontFaceCache[f] = make(map[float64]font.Face)
	}
	if _, ok := fontFaceCache[f][size]; !ok {
		var err error
		fontFaceCache[f][size], err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			log.Fatalf("failed to create face: %v", err)
		}
	}
	text.Draw(img, t, fontFaceCache[f][size], x, y, c)
}

// renderPiece draws the solid blocks of p with its top-left matrix cell at origin.
func renderPiece(screen *ebiten.Image, p piece.Piece, origin image.Point) {
	bw := p.Dim.X / p.Size
	bh := p.Dim.Y / p.Size
	for row := 0; row < p.Rows(); row++ {
		for col := 0; col < p.Columns(); col++ {
			if !p.HasBlock(row, col) {
				continue
			}
			drawCell(screen, sprite.Cell, origin.X+col*bw, origin.Y+row*bh, bw, bh, p.Tint)
		}
	}
}

func drawCell(screen *ebiten.Image, img *ebiten.Image, x, y, width, height int, tint cell.Tint) {
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleWithColor(tint.NRGBA())
	op.GeoM.Scale(float64(width)/float64(img.Bounds().Dx()), float64(height)/float64(img.Bounds().Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, &op)
}

func main() {
	seed := flag.Uint64("seed", 0, "seed for the piece generator, 0 seeds from the clock")
	scale := flag.Int("scale", 2, "window scale factor")
	flag.Parse()

	log.SetFlags(0)
	if err := sprite.Load(); err != nil {
		log.Fatalf("failed to load sprites: %v", err)
	}

	ebiten.SetWindowTitle("Blocks")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(board.TPS)
	ebiten.SetWindowSize(screenWidth*(*scale), screenHeight*(*scale))
	if err := ebiten.RunGame(NewGame(*seed)); err != nil {
		log.Fatalf("failed to run game: %v", err)
	}
}
