package game

import (
	"github.com/OneOfOne/xxhash"

	"goban/internal/errors"
)

// Board is a flat row-major grid of Colors. It carries no rule knowledge:
// legality, captures and ko all live in the usecase layer, which is also the
// only code expected to call Place and Remove.
type Board struct {
	size  int
	cells []Color
}

func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Color, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

// Contains reports whether p lies on the board.
func (b *Board) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// At returns the occupancy of p, or ErrOutOfBounds for coordinates off the
// grid.
func (b *Board) At(p Point) (Color, error) {
	if !b.Contains(p) {
		return Empty, errors.ErrOutOfBounds
	}
	return b.cells[p.Row*b.size+p.Col], nil
}

// colorAt skips the bounds check; callers must have validated p already.
func (b *Board) colorAt(p Point) Color {
	return b.cells[p.Row*b.size+p.Col]
}

// Neighbors returns the up-to-four in-bounds points 4-adjacent to p.
func (b *Board) Neighbors(p Point) []Point {
	candidates := [4]Point{
		{p.Row - 1, p.Col},
		{p.Row + 1, p.Col},
		{p.Row, p.Col - 1},
		{p.Row, p.Col + 1},
	}
	out := make([]Point, 0, 4)
	for _, n := range candidates {
		if b.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Place writes a stone at p. Occupancy is not checked here; the move
// resolver rejects occupied points before it ever calls Place.
func (b *Board) Place(p Point, c Color) error {
	if !b.Contains(p) {
		return errors.ErrOutOfBounds
	}
	b.cells[p.Row*b.size+p.Col] = c
	return nil
}

// Remove clears every point in points. Off-board points are ignored.
func (b *Board) Remove(points []Point) {
	for _, p := range points {
		if b.Contains(p) {
			b.cells[p.Row*b.size+p.Col] = Empty
		}
	}
}

func (b *Board) Clone() *Board {
	cells := make([]Color, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

func (b *Board) StoneCount(c Color) int {
	count := 0
	for _, cell := range b.cells {
		if cell == c {
			count++
		}
	}
	return count
}

// Grid returns a row-major copy of the board for snapshots; mutating it does
// not affect the board.
func (b *Board) Grid() [][]Color {
	grid := make([][]Color, b.size)
	for r := 0; r < b.size; r++ {
		row := make([]Color, b.size)
		copy(row, b.cells[r*b.size:(r+1)*b.size])
		grid[r] = row
	}
	return grid
}

// PositionHash is a 64-bit digest of the grid contents, used by the ko rule
// to compare whole-board positions. Two boards of the same size hash equal
// iff every cell matches.
func (b *Board) PositionHash() uint64 {
	raw := make([]byte, len(b.cells))
	for i, c := range b.cells {
		raw[i] = byte(c)
	}
	return xxhash.Checksum64(raw)
}
