package game

import "fmt"

// Point is a board coordinate. Row and Col are zero-based and both lie in
// [0, N) for an N×N board.
type Point struct {
	Row int
	Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
