package game

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mcoot/scrabble-go/internal/dependencies/clock"
	"github.com/mcoot/scrabble-go/internal/dependencies/random"
	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/placement"
	"github.com/mcoot/scrabble-go/internal/services/scoring"
	"github.com/mcoot/scrabble-go/internal/services/tiles"
	"github.com/mcoot/scrabble-go/internal/storage"
)

// GameIDLength is the length of generated game identifiers
const GameIDLength = 12

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller sequences players through rounds. It owns the board and
// tile supply exclusively: every mutation flows through a single
// load-validate-apply-save cycle, and a failed validation leaves no
// trace, so the same player simply retries.
type Controller struct {
	storage          storage.Storage
	tilesService     *tiles.Service
	placementService *placement.Service
	scoringService   *scoring.Service
	clock            clock.Clock
	random           random.Random
	logger           *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	tilesService *tiles.Service,
	placementService *placement.Service,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:          storage,
		tilesService:     tilesService,
		placementService: placementService,
		scoringService:   scoringService,
		clock:            clock,
		random:           random,
		logger:           logger,
	}
}

// CreateGame initializes a new game: fresh board, freshly shuffled
// supply and a full rack for each player. Turn order follows the
// given player list.
func (c *Controller) CreateGame(ctx context.Context, lobbyCode model.LobbyCode, players []model.PlayerID, cfg model.LobbyConfig) (*model.Game, error) {
	if len(players) < model.MinPlayers {
		return nil, model.ErrInsufficientPlayers
	}
	if len(players) > model.MaxPlayers {
		return nil, model.ErrTooManyPlayers
	}

	now := c.clock.Now()
	gameID := model.GameID(c.random.String(GameIDLength, gameIDAlphabet))

	game := &model.Game{
		ID:            gameID,
		LobbyCode:     lobbyCode,
		Phase:         model.GamePhasePlaying,
		Players:       players,
		CurrentIdx:    0,
		Round:         1,
		SkippedTurns:  0,
		Scores:        make(map[model.PlayerID]int, len(players)),
		Racks:         make(map[model.PlayerID][]model.Tile, len(players)),
		Supply:        c.tilesService.NewSupply(),
		FiniteBag:     cfg.FiniteBag,
		TurnStartedAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for _, playerID := range players {
		game.Scores[playerID] = 0
		game.Racks[playerID] = make([]model.Tile, 0, model.RackSize)
		c.tilesService.ReplenishRack(game, playerID)
	}

	board := model.NewBoard(gameID)
	if err := c.storage.SaveBoard(ctx, board); err != nil {
		return nil, err
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.String("lobby_code", string(lobbyCode)),
		slog.Int("player_count", len(players)),
		slog.Bool("finite_bag", cfg.FiniteBag),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// GetBoard retrieves a game's shared board
func (c *Controller) GetBoard(ctx context.Context, gameID model.GameID) (*model.Board, error) {
	return c.storage.GetBoard(ctx, gameID)
}

// SubmitPlacement validates and applies the active player's word. On
// success it consumes rack tiles, replenishes the rack, credits the
// score, resets the skip counter and advances the turn. On a
// validation failure nothing is mutated and the same player retries.
func (c *Controller) SubmitPlacement(ctx context.Context, gameID model.GameID, playerID model.PlayerID, p model.Placement) (*model.PlacementResult, error) {
	game, err := c.activeGameForPlayer(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}

	board, err := c.storage.GetBoard(ctx, gameID)
	if err != nil {
		return nil, err
	}

	p.Word = strings.ToUpper(p.Word)
	p.Dir = model.Direction(strings.ToLower(string(p.Dir)))

	if err := c.placementService.Validate(board, game.Rack(playerID), p, game.Round, game.IsFirstInOrder(playerID)); err != nil {
		return nil, err
	}

	// Compute the rack debit before the board changes underneath it
	needed := board.NeededLetters(p.Word, p.Pos, p.Dir)
	triggers := board.ApplyPlacement(p.Word, p.Pos, p.Dir)

	if err := c.tilesService.RemoveLetters(game, playerID, needed); err != nil {
		// Validation guarantees rack sufficiency; reaching this is a bug
		c.logger.Error("rack missing validated tile",
			slog.String("game_id", string(gameID)),
			slog.String("player_id", string(playerID)),
			slog.String("word", p.Word),
		)
		return nil, err
	}
	c.tilesService.ReplenishRack(game, playerID)

	score := c.scoringService.ScorePlacement(p.Word, triggers)
	game.Scores[playerID] += score
	game.SkippedTurns = 0

	c.advanceTurn(game)
	c.maybeEndGame(game, playerID)
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveBoard(ctx, board); err != nil {
		return nil, err
	}
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("word placed",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.String("word", p.Word),
		slog.Int("score", score),
		slog.Int("round", game.Round),
	)

	return &model.PlacementResult{
		Word:      p.Word,
		Score:     score,
		Total:     game.Scores[playerID],
		GameEnded: game.Phase == model.GamePhaseEnded,
		Winners:   game.Winners,
	}, nil
}

// Skip passes the active player's turn. Six consecutive skips with no
// successful placement in between end the game.
func (c *Controller) Skip(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
	game, err := c.activeGameForPlayer(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}

	game.SkippedTurns++
	c.advanceTurn(game)
	c.maybeEndGame(game, playerID)
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("turn skipped",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.Int("skipped_turns", game.SkippedTurns),
	)

	return game, nil
}

// ShuffleRack reorders the player's rack; contents and scores are untouched
func (c *Controller) ShuffleRack(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
	game, err := c.activeGameForPlayer(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}

	c.tilesService.ShuffleRack(game, playerID)
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// RenewRack discards the player's rack and deals a fresh one
func (c *Controller) RenewRack(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
	game, err := c.activeGameForPlayer(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}

	c.tilesService.RenewRack(game, playerID)
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// AbandonGame ends a game prematurely
func (c *Controller) AbandonGame(ctx context.Context, gameID model.GameID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.Phase == model.GamePhaseEnded || game.Phase == model.GamePhaseAbandoned {
		return nil // Already finished
	}

	game.Phase = model.GamePhaseAbandoned
	game.UpdatedAt = c.clock.Now()

	c.logger.Info("game abandoned",
		slog.String("game_id", string(gameID)),
		slog.String("lobby_code", string(game.LobbyCode)),
	)

	return c.storage.SaveGame(ctx, game)
}

// RemovePlayer handles a player leaving mid-game. The game is
// abandoned once fewer than MinPlayers remain.
func (c *Controller) RemovePlayer(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.Phase == model.GamePhaseEnded || game.Phase == model.GamePhaseAbandoned {
		return nil // Game already finished
	}

	playerIdx := -1
	for i, p := range game.Players {
		if p == playerID {
			playerIdx = i
			break
		}
	}
	if playerIdx == -1 {
		return nil // Player not in game
	}

	// Return the rack to bookkeeping oblivion and drop the player from
	// the turn order, keeping the active index pointed at the same
	// remaining player where possible
	game.Players = append(game.Players[:playerIdx], game.Players[playerIdx+1:]...)
	delete(game.Racks, playerID)
	delete(game.Scores, playerID)

	if playerIdx < game.CurrentIdx {
		game.CurrentIdx--
	}
	if game.CurrentIdx >= len(game.Players) {
		game.CurrentIdx = 0
		game.Round++
	}

	if len(game.Players) < model.MinPlayers {
		game.Phase = model.GamePhaseAbandoned
		c.logger.Info("game abandoned, not enough players",
			slog.String("game_id", string(gameID)),
		)
	}

	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// activeGameForPlayer loads the game and checks it is still running,
// the player belongs to it, and it is that player's turn
func (c *Controller) activeGameForPlayer(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.Phase == model.GamePhaseEnded {
		return nil, model.ErrGameOver
	}
	if game.Phase == model.GamePhaseAbandoned {
		return nil, model.ErrGameAbandoned
	}
	if !game.HasPlayer(playerID) {
		return nil, model.ErrPlayerNotFound
	}
	if game.CurrentPlayer() != playerID {
		return nil, model.ErrNotPlayerTurn
	}

	return game, nil
}

// advanceTurn moves to the next player; completing the last player's
// turn wraps to player 0 and increments the round
func (c *Controller) advanceTurn(game *model.Game) {
	game.CurrentIdx++
	if game.CurrentIdx >= len(game.Players) {
		game.CurrentIdx = 0
		game.Round++
	}
	game.TurnStartedAt = c.clock.Now()
}

// maybeEndGame ends the game when the skip limit is reached, or when
// the player who just acted holds no tiles and the supply is
// exhausted. The supply branch is only reachable with a finite bag,
// since auto-refill otherwise keeps the pool stocked.
func (c *Controller) maybeEndGame(game *model.Game, actingPlayer model.PlayerID) {
	skipLimit := game.SkippedTurns >= model.MaxSkippedTurns
	tilesGone := len(game.Rack(actingPlayer)) == 0 && game.SupplyRemaining() == 0

	if !skipLimit && !tilesGone {
		return
	}

	game.Phase = model.GamePhaseEnded
	game.Winners = game.TopScorers()

	c.logger.Info("game ended",
		slog.String("game_id", string(game.ID)),
		slog.String("lobby_code", string(game.LobbyCode)),
		slog.Int("rounds", game.Round),
		slog.Bool("by_skip_limit", skipLimit),
	)
}

// Summarize creates a summary record for a finished game
func (c *Controller) Summarize(game *model.Game) *model.GameSummary {
	finalScores := make(map[model.PlayerID]int, len(game.Scores))
	for playerID, score := range game.Scores {
		finalScores[playerID] = score
	}

	return &model.GameSummary{
		ID:          game.ID,
		FinalScores: finalScores,
		Winners:     game.Winners,
		Rounds:      game.Round,
		CompletedAt: c.clock.Now(),
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, lobbyCode model.LobbyCode, players []model.PlayerID, cfg model.LobbyConfig) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	GetBoard(ctx context.Context, gameID model.GameID) (*model.Board, error)
	SubmitPlacement(ctx context.Context, gameID model.GameID, playerID model.PlayerID, p model.Placement) (*model.PlacementResult, error)
	Skip(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error)
	ShuffleRack(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error)
	RenewRack(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error)
	AbandonGame(ctx context.Context, gameID model.GameID) error
	RemovePlayer(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	Summarize(game *model.Game) *model.GameSummary
}

var _ ControllerInterface = (*Controller)(nil)
