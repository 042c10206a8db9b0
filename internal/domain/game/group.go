package game

import "goban/internal/errors"

// Group is a maximal set of same-colored, 4-adjacency-connected stones
// together with its distinct liberty points. Groups are derived from the
// board on demand and never stored across moves.
type Group struct {
	Color     Color
	Stones    []Point
	Liberties []Point
}

func (g Group) HasLiberties() bool {
	return len(g.Liberties) > 0
}

// GroupAt flood-fills the group containing the stone at p, collecting the
// liberty set in the same traversal. The returned sets do not depend on
// traversal order. ErrEmptyPoint if p holds no stone.
func GroupAt(b *Board, p Point) (Group, error) {
	color, err := b.At(p)
	if err != nil {
		return Group{}, err
	}
	if color == Empty {
		return Group{}, errors.ErrEmptyPoint
	}

	seen := map[Point]bool{p: true}
	libSeen := make(map[Point]bool)
	group := Group{Color: color}
	queue := []Point{p}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		group.Stones = append(group.Stones, cur)

		for _, n := range b.Neighbors(cur) {
			switch b.colorAt(n) {
			case color:
				if !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			case Empty:
				if !libSeen[n] {
					libSeen[n] = true
					group.Liberties = append(group.Liberties, n)
				}
			}
		}
	}
	return group, nil
}
