package game

// Color is the occupancy of a board point. Empty is the zero value so a
// freshly allocated grid is an empty board.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the other player. Calling it on Empty is a defect in the
// caller; the engine never does.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}
