package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/scrabble-go/internal/dependencies/clock"
	"github.com/mcoot/scrabble-go/internal/dependencies/random"
	"github.com/mcoot/scrabble-go/internal/services/auth"
	"github.com/mcoot/scrabble-go/internal/services/game"
	"github.com/mcoot/scrabble-go/internal/services/lexicon"
	"github.com/mcoot/scrabble-go/internal/services/lobby"
	"github.com/mcoot/scrabble-go/internal/services/placement"
	"github.com/mcoot/scrabble-go/internal/services/scoring"
	"github.com/mcoot/scrabble-go/internal/services/tiles"
	"github.com/mcoot/scrabble-go/internal/storage"
	"github.com/mcoot/scrabble-go/internal/storage/memory"
	redisstorage "github.com/mcoot/scrabble-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	LexiconService   *lexicon.Service
	TilesService     *tiles.Service
	PlacementService *placement.Service
	ScoringService   *scoring.Service
	GameController   *game.Controller
	LobbyController  *lobby.Controller
	AuthService      *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()
	rnd := random.New()

	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) *App {
	lexiconService := lexicon.New(store)
	tilesService := tiles.New(rnd)
	placementService := placement.New(lexiconService)
	scoringService := scoring.New()
	gameController := game.NewController(store, tilesService, placementService, scoringService, clk, rnd, logger)
	lobbyController := lobby.NewController(store, gameController, clk, rnd)
	authService := auth.New(store, clk, authCfg)

	return &App{
		Storage:          store,
		Clock:            clk,
		Random:           rnd,
		LexiconService:   lexiconService,
		TilesService:     tilesService,
		PlacementService: placementService,
		ScoringService:   scoringService,
		GameController:   gameController,
		LobbyController:  lobbyController,
		AuthService:      authService,
	}
}
