package board

// Key is a game action bound to a key by the frontend.
type Key int

const (
	KeyRotate Key = iota
	KeyLeft
	KeyRight
	KeyDown
)

// Input reports which keys registered a press for the current tick. Implementations own the
// edge detection: a single physical press must report true for exactly one query.
type Input interface {
	WasPressedThisTick(k Key) bool
}

// NoInput is an Input with nothing pressed.
var NoInput Input = noInput{}

type noInput struct{}

func (noInput) WasPressedThisTick(Key) bool { return false }
