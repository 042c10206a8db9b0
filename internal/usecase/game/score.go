package game

import (
	domain "goban/internal/domain/game"
)

// scoreBoard computes the final area score of a finished board: each side
// scores its stones on the board plus every empty region bordered by its
// stones alone. Regions touching both colors (dame) and a fully empty board
// count for nobody. Komi is added to White before comparison. The function
// is pure, so rescoring an unchanged board always yields the same result.
func scoreBoard(b *domain.Board, blackCaps, whiteCaps int, komi float64, reason string) domain.ScoreResult {
	size := b.Size()
	visited := make([]bool, size*size)

	blackTerritory, whiteTerritory := 0, 0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			start := domain.Point{Row: row, Col: col}
			if visited[row*size+col] {
				continue
			}
			if occ, _ := b.At(start); occ != domain.Empty {
				continue
			}

			region, borders := fillRegion(b, start, visited)
			if borders[domain.Black] && !borders[domain.White] {
				blackTerritory += len(region)
			} else if borders[domain.White] && !borders[domain.Black] {
				whiteTerritory += len(region)
			}
		}
	}

	res := domain.ScoreResult{
		BlackTerritory: blackTerritory,
		WhiteTerritory: whiteTerritory,
		BlackCaptures:  blackCaps,
		WhiteCaptures:  whiteCaps,
		BlackScore:     float64(b.StoneCount(domain.Black) + blackTerritory),
		WhiteScore:     float64(b.StoneCount(domain.White)+whiteTerritory) + komi,
		Reason:         reason,
	}
	switch {
	case res.BlackScore > res.WhiteScore:
		res.Winner = domain.Black
	case res.WhiteScore > res.BlackScore:
		res.Winner = domain.White
	default:
		res.Winner = domain.Empty // tie
	}
	return res
}

// fillRegion flood-fills the maximal empty region containing start and
// records which stone colors border it.
func fillRegion(b *domain.Board, start domain.Point, visited []bool) ([]domain.Point, map[domain.Color]bool) {
	size := b.Size()
	borders := make(map[domain.Color]bool)
	region := []domain.Point{start}
	visited[start.Row*size+start.Col] = true

	for i := 0; i < len(region); i++ {
		for _, n := range b.Neighbors(region[i]) {
			occ, _ := b.At(n)
			if occ != domain.Empty {
				borders[occ] = true
				continue
			}
			if !visited[n.Row*size+n.Col] {
				visited[n.Row*size+n.Col] = true
				region = append(region, n)
			}
		}
	}
	return region, borders
}
