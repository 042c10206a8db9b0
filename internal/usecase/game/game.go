package game

import (
	"sync"

	"go.uber.org/zap"

	domain "goban/internal/domain/game"
	"goban/internal/errors"
	"goban/internal/statuses"
)

// Ko rule variants. Simple ko forbids recreating the position that existed
// immediately before the opponent's last action; positional superko forbids
// recreating any prior position of the game.
const (
	KoRuleSimple  = "simple"
	KoRuleSuperko = "superko"
)

var boardSizes = map[int]bool{9: true, 13: true, 19: true}

// Game is the state machine for one Go game: it owns the board, turn order,
// move history, pass/resign tracking and the final result. Every exported
// operation is atomic under the mutex, so a concurrent reader never observes
// a half-applied move.
type Game struct {
	mu  sync.RWMutex
	log *zap.SugaredLogger

	size   int
	komi   float64
	koRule string

	board   *domain.Board
	current domain.Color
	history []domain.MoveRecord
	// hashes holds the position hash after every committed action, with the
	// initial empty board at index 0. The ko check reads it from the tail.
	hashes []uint64

	passes        int
	terminated    bool
	result        *domain.ScoreResult
	blackCaptures int // stones Black has taken from White
	whiteCaptures int
}

// New creates a fresh game with Black to move. Board size must be 9, 13 or
// 19. An empty koRule selects simple ko.
func New(size int, komi float64, koRule string, log *zap.SugaredLogger) (*Game, error) {
	if !boardSizes[size] {
		return nil, errors.ErrBadBoardSize
	}
	switch koRule {
	case "":
		koRule = KoRuleSimple
	case KoRuleSimple, KoRuleSuperko:
	default:
		return nil, errors.ErrBadKoRule
	}

	g := &Game{
		log:    log,
		size:   size,
		komi:   komi,
		koRule: koRule,
	}
	g.resetLocked()
	return g, nil
}

// Reset discards all state and starts a fresh game on an empty board.
// Callable from any state, including after termination.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
	g.log.Infof("game reset, board %dx%d, %s to move", g.size, g.size, g.current)
}

func (g *Game) resetLocked() {
	g.board = domain.NewBoard(g.size)
	g.current = domain.Black
	g.history = nil
	g.hashes = []uint64{g.board.PositionHash()}
	g.passes = 0
	g.terminated = false
	g.result = nil
	g.blackCaptures = 0
	g.whiteCaptures = 0
}

// Status reports the lifecycle state as a statuses constant.
func (g *Game) Status() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.terminated {
		return statuses.StatusTerminated
	}
	return statuses.StatusInProgress
}

// Snapshot returns a detached copy of everything the presentation layer
// needs for a redraw.
func (g *Game) Snapshot() domain.Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := domain.Snapshot{
		Size:          g.size,
		Board:         g.board.Grid(),
		CurrentPlayer: g.current,
		MoveCount:     len(g.history),
		Terminated:    g.terminated,
	}
	if g.result != nil {
		res := *g.result
		snap.Result = &res
	}
	return snap
}

// History returns a copy of the committed move records.
func (g *Game) History() []domain.MoveRecord {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]domain.MoveRecord, len(g.history))
	copy(out, g.history)
	return out
}

func (g *Game) checkTurnLocked(c domain.Color) error {
	if g.terminated {
		return errors.ErrGameAlreadyTerminated
	}
	if c != g.current {
		return errors.ErrOutOfTurn
	}
	return nil
}
