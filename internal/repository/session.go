package repo

import (
	"fmt"
	"sync"

	"github.com/OneOfOne/xxhash"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"goban/internal/bootstrap"
	"goban/internal/errors"
	gameuc "goban/internal/usecase/game"
)

// GameRepository is an in-memory registry of live game sessions. It is the
// serialization layer in front of the engine: sessions are looked up under a
// lock and each Game serializes its own mutations, so callers on different
// goroutines never interleave half-applied moves.
type GameRepository struct {
	cfg bootstrap.Config
	log *zap.SugaredLogger

	mu     sync.RWMutex
	games  map[string]*gameuc.Game // secret key -> session
	public map[string]string       // public key -> secret key
}

func NewGameRepository(cfg bootstrap.Config, log *zap.SugaredLogger) *GameRepository {
	return &GameRepository{
		cfg:    cfg,
		log:    log,
		games:  make(map[string]*gameuc.Game),
		public: make(map[string]string),
	}
}

// CreateGame starts a session from the repository config and returns its
// keys: the secret key identifies the session to its players, the short
// public key is safe to show to spectators.
func (g *GameRepository) CreateGame() (gameKeySecret string, gameKeyPublic string, err error) {
	session, err := gameuc.New(g.cfg.BoardSize, g.cfg.Komi, g.cfg.KoRule, g.log)
	if err != nil {
		return "", "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	gameKeySecret, gameKeyPublic = g.generateGameKeys()
	g.games[gameKeySecret] = session
	g.public[gameKeyPublic] = gameKeySecret

	g.log.Infof("new game created with key: %s", gameKeyPublic)
	return gameKeySecret, gameKeyPublic, nil
}

// generateGameKeys issues a uuid secret and derives a unique five-digit
// public code from it. Callers must hold the lock.
func (g *GameRepository) generateGameKeys() (gameKeySecret string, gameKeyPublic string) {
	gameKeySecret = uuid.New().String()
	for salt := 0; ; salt++ {
		gameKeyPublic = generateKeyCode(fmt.Sprintf("%s/%d", gameKeySecret, salt))
		if _, taken := g.public[gameKeyPublic]; !taken {
			return gameKeySecret, gameKeyPublic
		}
	}
}

func generateKeyCode(s string) string {
	code := xxhash.ChecksumString64(s) % 100000
	return fmt.Sprintf("%05d", code)
}

func (g *GameRepository) GetGameBySecretKey(gameKeySecret string) (*gameuc.Game, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	session, ok := g.games[gameKeySecret]
	if !ok {
		return nil, errors.ErrGameNotFound
	}
	return session, nil
}

func (g *GameRepository) GetGameByPublicKey(gameKeyPublic string) (*gameuc.Game, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	secret, ok := g.public[gameKeyPublic]
	if !ok {
		return nil, errors.ErrGameNotFound
	}
	return g.games[secret], nil
}

// RemoveGame drops a finished session from the registry.
func (g *GameRepository) RemoveGame(gameKeySecret string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.games[gameKeySecret]; !ok {
		return errors.ErrGameNotFound
	}
	delete(g.games, gameKeySecret)
	for pub, sec := range g.public {
		if sec == gameKeySecret {
			delete(g.public, pub)
			break
		}
	}
	return nil
}
