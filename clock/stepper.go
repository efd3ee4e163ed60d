// Package clock converts elapsed wall-clock time into fixed logic ticks.
package clock

import "time"

// Stepper accumulates elapsed time and hands it out in whole ticks. The remainder carries over
// so no time is lost between frames.
type Stepper struct {
	tick time.Duration
	lag  time.Duration
	last time.Time
	now  func() time.Time
}

// NewStepper returns a stepper producing tps ticks per second, measuring time with now. A nil now
// uses time.Now.
func NewStepper(tps int, now func() time.Time) *Stepper {
	if now == nil {
		now = time.Now
	}
	return &Stepper{
		tick: time.Second / time.Duration(tps),
		now:  now,
		last: now(),
	}
}

// Tick is the duration of a single tick.
func (s *Stepper) Tick() time.Duration {
	return s.tick
}

// Advance adds the time since the previous call to the lag and returns how many ticks are due.
func (s *Stepper) Advance() int {
	t := s.now()
	s.lag += t.Sub(s.last)
	s.last = t
	n := int(s.lag / s.tick)
	s.lag -= time.Duration(n) * s.tick
	return n
}

// Lag is the time accumulated toward the next tick.
func (s *Stepper) Lag() time.Duration {
	return s.lag
}
