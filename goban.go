// Package goban is a rules engine for the board game Go. It tracks board
// state, enforces move legality (occupied points, suicide, ko), resolves
// captures, sequences turns through pass/resign/double-pass termination and
// computes final area scores. Rendering and input handling belong to the
// caller; the engine only accepts intents and hands back snapshots.
package goban

import (
	"go.uber.org/zap"

	"goban/internal/bootstrap"
	domain "goban/internal/domain/game"
	"goban/internal/errors"
	repo "goban/internal/repository"
	gameuc "goban/internal/usecase/game"
)

// Domain types re-exported for callers; internal packages are not
// importable from outside the module.
type (
	Point       = domain.Point
	Color       = domain.Color
	Group       = domain.Group
	MoveRecord  = domain.MoveRecord
	MoveOutcome = domain.MoveOutcome
	ScoreResult = domain.ScoreResult
	Snapshot    = domain.Snapshot
	Config      = bootstrap.Config
)

const (
	Empty = domain.Empty
	Black = domain.Black
	White = domain.White
)

// Ko rule names accepted in Config.KoRule.
const (
	KoRuleSimple  = gameuc.KoRuleSimple
	KoRuleSuperko = gameuc.KoRuleSuperko
)

// Engine errors. All are recoverable and leave the game unchanged.
var (
	ErrOutOfBounds           = errors.ErrOutOfBounds
	ErrOccupiedPoint         = errors.ErrOccupiedPoint
	ErrOutOfTurn             = errors.ErrOutOfTurn
	ErrSuicideMove           = errors.ErrSuicideMove
	ErrKoViolation           = errors.ErrKoViolation
	ErrGameAlreadyTerminated = errors.ErrGameAlreadyTerminated
	ErrBadBoardSize          = errors.ErrBadBoardSize
	ErrBadKoRule             = errors.ErrBadKoRule
	ErrGameNotFound          = errors.ErrGameNotFound
)

// DefaultConfig returns the stock settings: 19×19, komi 6.5, simple ko.
func DefaultConfig() Config {
	return bootstrap.Default()
}

// LoadConfig reads an env-style configuration file.
func LoadConfig(cfgPath string) (*Config, error) {
	return bootstrap.Setup(cfgPath)
}

// NewLogger builds the production logger the engine expects. Callers with
// their own zap setup can pass that instead.
func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

// NewNopLogger returns a logger that discards everything, for callers that
// do not want engine logs.
func NewNopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// Engine drives a single game session.
type Engine struct {
	cfg  Config
	log  *zap.SugaredLogger
	game *gameuc.Game
}

// New creates an engine for one game. Config.BoardSize must be 9, 13 or 19.
func New(cfg Config, log *zap.SugaredLogger) (*Engine, error) {
	g, err := gameuc.New(cfg.BoardSize, cfg.Komi, cfg.KoRule, log)
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, log: log, game: g}, nil
}

// Move submits a play at p for color c and reports the placed stone plus any
// captures. Typed errors describe every rejection.
func (e *Engine) Move(p Point, c Color) (MoveOutcome, error) {
	return e.game.Move(p, c)
}

// Pass submits a pass; the second consecutive pass ends the game and scores
// the board.
func (e *Engine) Pass(c Color) error {
	return e.game.Pass(c)
}

// Resign ends the game with c's opponent as winner. The board is not scored.
func (e *Engine) Resign(c Color) error {
	return e.game.Resign(c)
}

// Reset discards the game and starts over on an empty board.
func (e *Engine) Reset() {
	e.game.Reset()
}

// Snapshot returns a detached copy of the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	return e.game.Snapshot()
}

// Status is "in_progress" or "terminated" (see internal/statuses).
func (e *Engine) Status() string {
	return e.game.Status()
}

// History returns a copy of the committed move records.
func (e *Engine) History() []MoveRecord {
	return e.game.History()
}

// LegalMoves lists every point where c may legally play right now.
func (e *Engine) LegalMoves(c Color) []Point {
	return e.game.LegalMoves(c)
}

// Manager keeps several sessions alive at once, keyed like the repository:
// a uuid secret key per game plus a short public key.
type Manager struct {
	cfg  Config
	log  *zap.SugaredLogger
	repo *repo.GameRepository
}

func NewManager(cfg Config, log *zap.SugaredLogger) *Manager {
	return &Manager{cfg: cfg, log: log, repo: repo.NewGameRepository(cfg, log)}
}

// Create starts a new session and returns its secret and public keys.
func (m *Manager) Create() (gameKeySecret string, gameKeyPublic string, err error) {
	return m.repo.CreateGame()
}

// GetBySecretKey resolves a session for play.
func (m *Manager) GetBySecretKey(gameKeySecret string) (*Engine, error) {
	g, err := m.repo.GetGameBySecretKey(gameKeySecret)
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: m.cfg, log: m.log, game: g}, nil
}

// GetByPublicKey resolves a session for spectating.
func (m *Manager) GetByPublicKey(gameKeyPublic string) (*Engine, error) {
	g, err := m.repo.GetGameByPublicKey(gameKeyPublic)
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: m.cfg, log: m.log, game: g}, nil
}

// Remove drops a finished session.
func (m *Manager) Remove(gameKeySecret string) error {
	return m.repo.RemoveGame(gameKeySecret)
}
