package main

import (
	"testing"

	"github.com/deitrix/blocks/board"
	"github.com/deitrix/blocks/clock"
	"github.com/deitrix/blocks/input"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAction(t *testing.T) {
	tests := []struct {
		ev     *tcell.EventKey
		expect board.Key
		ok     bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), board.KeyLeft, true},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), board.KeyRight, true},
		{tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), board.KeyDown, true},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), board.KeyRotate, true},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), board.KeyRotate, true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), board.KeyLeft, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}
	for _, test := range tests {
		k, ok := action(test.ev)
		assert.Equal(t, test.ok, ok, "action(%v)", test.ev.Name())
		if test.ok {
			assert.Equal(t, test.expect, k, "action(%v)", test.ev.Name())
		}
	}
}

func TestQuit(t *testing.T) {
	assert.True(t, quit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, quit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, quit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, quit(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)))
}

func newTestGame(t *testing.T) *game {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return &game{
		screen:  screen,
		board:   board.New(board.WithSpawnDelay(0)),
		keys:    input.NewTracker(),
		stepper: clock.NewStepper(board.TPS, nil),
	}
}

func TestGame_Handle(t *testing.T) {
	g := newTestGame(t)
	g.board.Update(board.NoInput)
	start := g.board.Snapshot().Anchor

	assert.True(t, g.handle(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone)))
	assert.Equal(t, input.EdgeState{Prior: true, Current: true}, g.keys.State(board.KeyRight))
	g.board.Update(g.keys)
	assert.Equal(t, start.X+1, g.board.Snapshot().Anchor.X)

	assert.True(t, g.handle(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	assert.False(t, g.board.Active())

	assert.False(t, g.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
}
