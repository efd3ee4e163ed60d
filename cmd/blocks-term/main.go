// Command blocks-term plays the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/deitrix/blocks/board"
	"github.com/deitrix/blocks/clock"
	"github.com/deitrix/blocks/input"
	"github.com/gdamore/tcell/v2"
)

// frameInterval paces rendering independently of the logic tick rate
const frameInterval = 16 * time.Millisecond

var runeBindings = map[rune]board.Key{
	' ': board.KeyRotate,
	'w': board.KeyRotate,
	'a': board.KeyLeft,
	'd': board.KeyRight,
	's': board.KeyDown,
}

var keyBindings = map[tcell.Key]board.Key{
	tcell.KeyUp:    board.KeyRotate,
	tcell.KeyLeft:  board.KeyLeft,
	tcell.KeyRight: board.KeyRight,
	tcell.KeyDown:  board.KeyDown,
}

// action maps a key event to a board action.
func action(ev *tcell.EventKey) (board.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		k, ok := runeBindings[ev.Rune()]
		return k, ok
	}
	k, ok := keyBindings[ev.Key()]
	return k, ok
}

func quit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

type game struct {
	screen  tcell.Screen
	board   *board.Board
	keys    *input.Tracker
	stepper *clock.Stepper
}

func newGame(seed uint64) (*game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return &game{
		screen:  screen,
		board:   board.New(board.WithSeed(seed)),
		keys:    input.NewTracker(),
		stepper: clock.NewStepper(board.TPS, nil),
	}, nil
}

// handle processes one terminal event and reports whether the game should keep running.
func (g *game) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if quit(ev) {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' {
			g.board.Reset()
			return true
		}
		if k, ok := action(ev); ok {
			g.keys.Arm(k)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// step runs every logic tick that has come due.
func (g *game) step() {
	for n := g.stepper.Advance(); n > 0; n-- {
		g.board.Update(g.keys)
	}
}

func (g *game) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !g.handle(ev) {
				return
			}
		case <-ticker.C:
			g.step()
			draw(g.screen, g.board.Snapshot())
			g.screen.Show()
		}
	}
}

func main() {
	seed := flag.Uint64("seed", 0, "seed for the piece generator, 0 seeds from the clock")
	flag.Parse()

	log.SetFlags(0)
	g, err := newGame(*seed)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	g.run()
	g.screen.Fini()
}
