// Package input turns raw key events into the once-per-press signal the board consumes.
package input

import (
	"github.com/deitrix/blocks/board"
	"github.com/kamstrup/intmap"
)

// EdgeState is the state of one key across ticks.
type EdgeState struct {
	// Prior is set when a key event arrives and cleared one query after it fired
	Prior bool
	// Current is set when a key event arrives and cleared when the press is consumed
	Current bool
}

// Tracker records key events between ticks and reports each one exactly once. A key cannot be
// armed again until the query after the one that fired has cleared it.
type Tracker struct {
	keys *intmap.Map[board.Key, EdgeState]
}

func NewTracker() *Tracker {
	return &Tracker{
		keys: intmap.New[board.Key, EdgeState](8),
	}
}

// Arm registers a key event for k. It is ignored while k is still settling from its last press.
func (t *Tracker) Arm(k board.Key) {
	s, _ := t.keys.Get(k)
	if s.Prior {
		return
	}
	t.keys.Put(k, EdgeState{Prior: true, Current: true})
}

// WasPressedThisTick implements board.Input.
func (t *Tracker) WasPressedThisTick(k board.Key) bool {
	s, ok := t.keys.Get(k)
	if !ok || !s.Prior {
		return false
	}
	if s.Current {
		s.Current = false
		t.keys.Put(k, s)
		return true
	}
	s.Prior = false
	t.keys.Put(k, s)
	return false
}

func (t *Tracker) State(k board.Key) EdgeState {
	s, _ := t.keys.Get(k)
	return s
}
