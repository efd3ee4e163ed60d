package piece

import (
	"math/rand/v2"
	"time"
)

// Source draws a uniform integer in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Generator picks the type of the next piece.
type Generator struct {
	src Source
}

func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// NewSeededGenerator returns a generator backed by a PCG source. A zero seed seeds from the
// clock.
func NewSeededGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewGenerator(rand.New(rand.NewPCG(seed, seed>>32|1)))
}

// NextShape returns one of the seven playable types, never None.
func (g *Generator) NextShape() ShapeType {
	return ShapeType(g.src.IntN(int(Count)))
}
