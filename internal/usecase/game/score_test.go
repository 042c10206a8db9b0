package game

import (
	"testing"

	domain "goban/internal/domain/game"
	"goban/internal/statuses"
)

func boardWith(t *testing.T, size int, stones map[domain.Point]domain.Color) *domain.Board {
	t.Helper()
	b := domain.NewBoard(size)
	for p, c := range stones {
		if err := b.Place(p, c); err != nil {
			t.Fatalf("placing %v at %v failed: %v", c, p, err)
		}
	}
	return b
}

func TestScoreEmptyBoard(t *testing.T) {
	b := domain.NewBoard(9)
	res := scoreBoard(b, 0, 0, 0, statuses.ReasonDoublePass)

	if res.BlackScore != 0 || res.WhiteScore != 0 {
		t.Fatalf("empty board should score 0-0, got %+v", res)
	}
	if res.Winner != domain.Empty {
		t.Fatalf("empty board should tie, got winner %v", res.Winner)
	}
	if res.BlackTerritory != 0 || res.WhiteTerritory != 0 {
		t.Fatalf("an unbordered region is nobody's territory: %+v", res)
	}
}

func TestScoreSingleStoneOwnsBoard(t *testing.T) {
	// One black stone: the whole empty region borders black alone, so area
	// scoring awards the entire board.
	b := boardWith(t, 9, map[domain.Point]domain.Color{
		{Row: 4, Col: 4}: domain.Black,
	})
	res := scoreBoard(b, 0, 0, 0, statuses.ReasonDoublePass)

	if res.BlackTerritory != 80 {
		t.Fatalf("black territory = %d, want 80", res.BlackTerritory)
	}
	if res.BlackScore != 81 {
		t.Fatalf("black score = %v, want 81", res.BlackScore)
	}
	if res.Winner != domain.Black {
		t.Fatalf("winner = %v, want black", res.Winner)
	}
}

func TestScoreWallsAndDame(t *testing.T) {
	// Black wall on column 2, white wall on column 6. The middle region
	// touches both walls and counts for nobody.
	stones := make(map[domain.Point]domain.Color)
	for r := 0; r < 9; r++ {
		stones[domain.Point{Row: r, Col: 2}] = domain.Black
		stones[domain.Point{Row: r, Col: 6}] = domain.White
	}
	b := boardWith(t, 9, stones)
	res := scoreBoard(b, 0, 0, 0, statuses.ReasonDoublePass)

	if res.BlackTerritory != 18 {
		t.Fatalf("black territory = %d, want 18 (columns 0-1)", res.BlackTerritory)
	}
	if res.WhiteTerritory != 18 {
		t.Fatalf("white territory = %d, want 18 (columns 7-8)", res.WhiteTerritory)
	}
	// 9 stones + 18 territory each: a tie without komi.
	if res.BlackScore != 27 || res.WhiteScore != 27 || res.Winner != domain.Empty {
		t.Fatalf("expected 27-27 tie, got %+v", res)
	}

	// Komi breaks the tie for white.
	withKomi := scoreBoard(b, 0, 0, 6.5, statuses.ReasonDoublePass)
	if withKomi.WhiteScore != 33.5 || withKomi.Winner != domain.White {
		t.Fatalf("expected white by komi, got %+v", withKomi)
	}
}

func TestScoreCarriesCaptureCounts(t *testing.T) {
	b := domain.NewBoard(9)
	res := scoreBoard(b, 3, 1, 0, statuses.ReasonDoublePass)
	if res.BlackCaptures != 3 || res.WhiteCaptures != 1 {
		t.Fatalf("capture counts lost: %+v", res)
	}
	if res.Reason != statuses.ReasonDoublePass {
		t.Fatalf("reason = %s", res.Reason)
	}
}

func TestScoreIsIdempotent(t *testing.T) {
	stones := make(map[domain.Point]domain.Color)
	for r := 0; r < 9; r++ {
		stones[domain.Point{Row: r, Col: 4}] = domain.Black
	}
	stones[domain.Point{Row: 0, Col: 7}] = domain.White
	b := boardWith(t, 9, stones)

	first := scoreBoard(b, 2, 0, 5.5, statuses.ReasonDoublePass)
	second := scoreBoard(b, 2, 0, 5.5, statuses.ReasonDoublePass)
	if first != second {
		t.Fatalf("rescoring an unchanged board differed:\n%+v\n%+v", first, second)
	}
}

func TestDoublePassScoresPlayedGame(t *testing.T) {
	// A tiny played-out game: black walls off the top-left corner point.
	g := newTestGame(t, 9, 0, "")
	playAll(t, g, []domain.Point{
		{Row: 0, Col: 1}, // black
		{Row: 5, Col: 5}, // white
		{Row: 1, Col: 0}, // black
		{Row: 5, Col: 6}, // white
		{Row: 1, Col: 1}, // black
	})
	if err := g.Pass(domain.White); err != nil {
		t.Fatalf("pass failed: %v", err)
	}
	if err := g.Pass(domain.Black); err != nil {
		t.Fatalf("pass failed: %v", err)
	}

	res := g.Snapshot().Result
	if res == nil {
		t.Fatalf("no result after double pass")
	}
	// (0,0) borders only black. Everything else touches both colors.
	if res.BlackTerritory != 1 || res.WhiteTerritory != 0 {
		t.Fatalf("territory = %d/%d, want 1/0", res.BlackTerritory, res.WhiteTerritory)
	}
	if res.BlackScore != 4 || res.WhiteScore != 2 || res.Winner != domain.Black {
		t.Fatalf("unexpected score: %+v", res)
	}
}
