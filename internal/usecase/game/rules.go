package game

import (
	"fmt"

	domain "goban/internal/domain/game"
	"goban/internal/errors"
	"goban/internal/statuses"
)

// Move validates and, if legal, commits a play at p for color c. Validation
// order: turn, bounds, occupancy, suicide, ko. Captures are resolved on a
// scratch board, so any rejection leaves the game exactly as it was.
func (g *Game) Move(p domain.Point, c domain.Color) (domain.MoveOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkTurnLocked(c); err != nil {
		return domain.MoveOutcome{}, err
	}

	scratch, captured, err := g.resolveLocked(p, c)
	if err != nil {
		g.log.Debugf("rejected %s at %s: %v", c, p, err)
		return domain.MoveOutcome{}, err
	}

	// Commit: swap in the scratch board and advance the state machine.
	g.board = scratch
	hash := scratch.PositionHash()
	g.hashes = append(g.hashes, hash)
	g.history = append(g.history, domain.MoveRecord{
		Color: c,
		Kind:  domain.MoveKindPlay,
		Point: p,
		Hash:  hash,
	})
	g.passes = 0
	if c == domain.Black {
		g.blackCaptures += len(captured)
	} else {
		g.whiteCaptures += len(captured)
	}
	g.current = c.Opponent()

	g.log.Infof("%s played %s, captured %d", c, p, len(captured))
	return domain.MoveOutcome{Placed: p, Captured: captured}, nil
}

// resolveLocked plays p for c on a clone of the current board and returns
// the clone plus the captured points. The live board is never touched.
func (g *Game) resolveLocked(p domain.Point, c domain.Color) (*domain.Board, []domain.Point, error) {
	occ, err := g.board.At(p)
	if err != nil {
		return nil, nil, err
	}
	if occ != domain.Empty {
		return nil, nil, errors.ErrOccupiedPoint
	}

	scratch := g.board.Clone()
	if err := scratch.Place(p, c); err != nil {
		return nil, nil, err
	}

	// Mandatory captures: every adjacent enemy group left without liberties
	// is removed, whatever the player intended.
	var captured []domain.Point
	for _, n := range scratch.Neighbors(p) {
		occ, _ := scratch.At(n)
		if occ != c.Opponent() {
			continue // empty, own stone, or part of a group already removed
		}
		enemy, err := domain.GroupAt(scratch, n)
		if err != nil {
			panic(fmt.Sprintf("group lookup at occupied %s failed: %v", n, err))
		}
		if !enemy.HasLiberties() {
			captured = append(captured, enemy.Stones...)
			scratch.Remove(enemy.Stones)
		}
	}

	// Suicide check runs after captures, so filling an enemy group's last
	// liberty is legal when the removal frees a liberty for the new stone.
	own, err := domain.GroupAt(scratch, p)
	if err != nil {
		panic(fmt.Sprintf("group lookup at placed stone %s failed: %v", p, err))
	}
	if !own.HasLiberties() {
		return nil, nil, errors.ErrSuicideMove
	}

	if g.violatesKoLocked(scratch.PositionHash()) {
		return nil, nil, errors.ErrKoViolation
	}
	return scratch, captured, nil
}

func (g *Game) violatesKoLocked(candidate uint64) bool {
	if g.koRule == KoRuleSuperko {
		for _, h := range g.hashes {
			if h == candidate {
				return true
			}
		}
		return false
	}
	// Simple ko: the position before the opponent's last action sits two
	// entries from the tail (the tail itself is the current position).
	if len(g.hashes) < 2 {
		return false
	}
	return candidate == g.hashes[len(g.hashes)-2]
}

// Pass records a pass for c. The second consecutive pass terminates the game
// and triggers scoring.
func (g *Game) Pass(c domain.Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkTurnLocked(c); err != nil {
		return err
	}

	hash := g.hashes[len(g.hashes)-1]
	g.history = append(g.history, domain.MoveRecord{Color: c, Kind: domain.MoveKindPass, Hash: hash})
	g.hashes = append(g.hashes, hash)
	g.passes++
	g.current = c.Opponent()

	if g.passes >= 2 {
		g.terminated = true
		res := scoreBoard(g.board, g.blackCaptures, g.whiteCaptures, g.komi, statuses.ReasonDoublePass)
		g.result = &res
		g.log.Infof("game over by double pass: black %.1f, white %.1f, winner %s",
			res.BlackScore, res.WhiteScore, res.Winner)
		return nil
	}

	g.log.Infof("%s passed", c)
	return nil
}

// Resign terminates the game immediately with the opponent as winner. No
// territory is counted on resignation.
func (g *Game) Resign(c domain.Color) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkTurnLocked(c); err != nil {
		return err
	}

	g.history = append(g.history, domain.MoveRecord{
		Color: c,
		Kind:  domain.MoveKindResign,
		Hash:  g.hashes[len(g.hashes)-1],
	})
	g.terminated = true
	g.result = &domain.ScoreResult{
		BlackCaptures: g.blackCaptures,
		WhiteCaptures: g.whiteCaptures,
		Winner:        c.Opponent(),
		Reason:        statuses.ReasonResignation,
	}

	g.log.Infof("%s resigned, %s wins", c, c.Opponent())
	return nil
}

// LegalMoves enumerates every point where c could legally play right now,
// evaluating each candidate with the full validator on scratch boards. Meant
// for presentation-layer hints; the live state is untouched.
func (g *Game) LegalMoves(c domain.Color) []domain.Point {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.terminated || c != g.current {
		return nil
	}

	var legal []domain.Point
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			p := domain.Point{Row: row, Col: col}
			if _, _, err := g.resolveLocked(p, c); err == nil {
				legal = append(legal, p)
			}
		}
	}
	return legal
}
