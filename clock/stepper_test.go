package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestStepper_Advance(t *testing.T) {
	c := &fakeClock{t: time.Unix(1000, 0)}
	s := NewStepper(10, c.Now)
	assert.Equal(t, 100*time.Millisecond, s.Tick())

	assert.Zero(t, s.Advance())

	c.Advance(50 * time.Millisecond)
	assert.Zero(t, s.Advance())
	assert.Equal(t, 50*time.Millisecond, s.Lag())

	c.Advance(60 * time.Millisecond)
	assert.Equal(t, 1, s.Advance())
	assert.Equal(t, 10*time.Millisecond, s.Lag())

	c.Advance(350 * time.Millisecond)
	assert.Equal(t, 3, s.Advance())
	assert.Equal(t, 60*time.Millisecond, s.Lag())
}

func TestStepper_ThirtyHz(t *testing.T) {
	c := &fakeClock{t: time.Unix(0, 0)}
	s := NewStepper(30, c.Now)

	var ticks int
	for i := 0; i < 60; i++ {
		c.Advance(time.Second / 60)
		ticks += s.Advance()
	}
	assert.InDelta(t, 30, ticks, 1)
}

func TestNewStepper_DefaultsToWallClock(t *testing.T) {
	s := NewStepper(1000, nil)
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, s.Advance(), 4)
}
