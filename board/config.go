package board

import "github.com/deitrix/blocks/piece"

const (
	// Rows is the number of rows in the grid. Row 0 is the bottom row.
	Rows = 21
	// Columns is the number of columns in the grid
	Columns = 10
	// TPS is the number of logic ticks per second. Spawn delay and auto-fall are counted in ticks.
	TPS = 30
	// SpawnDelay is the number of ticks to wait before the next piece appears
	SpawnDelay = 45
	// AutoFallInterval is the number of ticks between each automatic fall of the active piece
	AutoFallInterval = 30
	// SpawnColumn is the grid column of the top-left matrix cell of a new piece
	SpawnColumn = 3
	// SpawnRow is the grid row of the top-left matrix cell of a new piece, the top row
	SpawnRow = 20
)

type config struct {
	gen        *piece.Generator
	spawnDelay int
	autoFall   int
}

// Option configures a Board.
type Option func(*config)

// WithSource draws piece types from src instead of a clock-seeded generator.
func WithSource(src piece.Source) Option {
	return func(c *config) {
		c.gen = piece.NewGenerator(src)
	}
}

// WithSeed draws piece types from a generator seeded with seed. Zero seeds from the clock.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.gen = piece.NewSeededGenerator(seed)
	}
}

func WithSpawnDelay(ticks int) Option {
	return func(c *config) {
		c.spawnDelay = ticks
	}
}

func WithAutoFall(ticks int) Option {
	return func(c *config) {
		c.autoFall = ticks
	}
}
