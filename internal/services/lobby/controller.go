package lobby

import (
	"context"

	"github.com/mcoot/scrabble-go/internal/dependencies/clock"
	"github.com/mcoot/scrabble-go/internal/dependencies/random"
	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/game"
	"github.com/mcoot/scrabble-go/internal/storage"
)

const (
	// LobbyCodeLength is the length of generated lobby codes
	LobbyCodeLength = 6
	// LobbyCodeAlphabet is the characters used in lobby codes (avoid confusing chars)
	LobbyCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Controller manages lobby state machine and member operations
type Controller struct {
	storage        storage.Storage
	gameController *game.Controller
	clock          clock.Clock
	random         random.Random
}

// NewController creates a new lobby Controller
func NewController(
	storage storage.Storage,
	gameController *game.Controller,
	clock clock.Clock,
	random random.Random,
) *Controller {
	return &Controller{
		storage:        storage,
		gameController: gameController,
		clock:          clock,
		random:         random,
	}
}

// CreateLobby creates a new lobby with the given player as host
func (c *Controller) CreateLobby(ctx context.Context, host model.Player) (*model.Lobby, error) {
	now := c.clock.Now()

	// Generate unique lobby code
	var code model.LobbyCode
	for {
		code = model.LobbyCode(c.random.String(LobbyCodeLength, LobbyCodeAlphabet))
		exists, err := c.storage.LobbyExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	lobby := &model.Lobby{
		Code:   code,
		State:  model.LobbyStateWaiting,
		Config: model.DefaultLobbyConfig(),
		Members: []model.LobbyMember{
			{
				Player:   host,
				Role:     model.RolePlayer,
				IsHost:   true,
				JoinedAt: now,
			},
		},
		GameHistory: []model.GameSummary{},
		CurrentGame: nil,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storage.SaveLobby(ctx, lobby); err != nil {
		return nil, err
	}

	return lobby, nil
}

// GetLobby retrieves a lobby by code
func (c *Controller) GetLobby(ctx context.Context, code model.LobbyCode) (*model.Lobby, error) {
	return c.storage.GetLobby(ctx, code)
}

// JoinLobby adds a player to a lobby
func (c *Controller) JoinLobby(ctx context.Context, code model.LobbyCode, player model.Player) error {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	if lobby.GetMember(player.ID) != nil {
		return model.ErrAlreadyInLobby
	}

	// Spectator if a game is running, player otherwise
	role := model.RolePlayer
	if lobby.State == model.LobbyStateInGame {
		role = model.RoleSpectator
	}

	lobby.Members = append(lobby.Members, model.LobbyMember{
		Player:   player,
		Role:     role,
		IsHost:   false,
		JoinedAt: c.clock.Now(),
	})
	lobby.UpdatedAt = c.clock.Now()

	return c.storage.SaveLobby(ctx, lobby)
}

// LeaveLobby removes a player from a lobby
func (c *Controller) LeaveLobby(ctx context.Context, code model.LobbyCode, playerID model.PlayerID) error {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	member := lobby.GetMember(playerID)
	if member == nil {
		return model.ErrNotInLobby
	}

	wasHost := member.IsHost
	wasPlayer := member.Role == model.RolePlayer

	for i, m := range lobby.Members {
		if m.Player.ID == playerID {
			lobby.Members = append(lobby.Members[:i], lobby.Members[i+1:]...)
			break
		}
	}

	// If lobby is now empty, delete it
	if len(lobby.Members) == 0 {
		if lobby.CurrentGame != nil {
			_ = c.gameController.AbandonGame(ctx, *lobby.CurrentGame)
		}
		return c.storage.DeleteLobby(ctx, code)
	}

	if wasHost {
		lobby.Members[0].IsHost = true
	}

	// A player leaving mid-game is removed from the game too, which
	// may abandon it if too few players remain
	if wasPlayer && lobby.CurrentGame != nil {
		if err := c.gameController.RemovePlayer(ctx, *lobby.CurrentGame, playerID); err == nil {
			g, _ := c.gameController.GetGame(ctx, *lobby.CurrentGame)
			if g != nil && g.Phase == model.GamePhaseAbandoned {
				lobby.State = model.LobbyStateWaiting
				lobby.CurrentGame = nil
			}
		}
	}

	lobby.UpdatedAt = c.clock.Now()
	return c.storage.SaveLobby(ctx, lobby)
}

// SetRole changes a member's role (player/spectator)
func (c *Controller) SetRole(ctx context.Context, code model.LobbyCode, playerID model.PlayerID, role model.LobbyMemberRole) error {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	if lobby.State == model.LobbyStateInGame {
		return model.ErrGameInProgress
	}

	member := lobby.GetMember(playerID)
	if member == nil {
		return model.ErrNotInLobby
	}

	member.Role = role
	lobby.UpdatedAt = c.clock.Now()

	return c.storage.SaveLobby(ctx, lobby)
}

// TransferHost makes another member the host
func (c *Controller) TransferHost(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID, newHostID model.PlayerID) error {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	currentHost := lobby.GetHost()
	if currentHost == nil || currentHost.Player.ID != requestingPlayer {
		return model.ErrNotHost
	}

	newHost := lobby.GetMember(newHostID)
	if newHost == nil {
		return model.ErrNotInLobby
	}

	currentHost.IsHost = false
	newHost.IsHost = true
	lobby.UpdatedAt = c.clock.Now()

	return c.storage.SaveLobby(ctx, lobby)
}

// StartGame begins a new game with the lobby's current players, using
// the lobby's configuration
func (c *Controller) StartGame(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID) (*model.Game, error) {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return nil, err
	}

	host := lobby.GetHost()
	if host == nil || host.Player.ID != requestingPlayer {
		return nil, model.ErrNotHost
	}

	if lobby.State == model.LobbyStateInGame {
		return nil, model.ErrGameInProgress
	}

	players := lobby.GetPlayers()
	playerIDs := make([]model.PlayerID, len(players))
	for i, p := range players {
		playerIDs[i] = p.Player.ID
	}

	// Player count bounds are enforced by the game controller
	g, err := c.gameController.CreateGame(ctx, code, playerIDs, lobby.Config)
	if err != nil {
		return nil, err
	}

	lobby.State = model.LobbyStateInGame
	lobby.CurrentGame = &g.ID
	lobby.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveLobby(ctx, lobby); err != nil {
		return nil, err
	}

	return g, nil
}

// AbandonGame ends the current game without recording a result
func (c *Controller) AbandonGame(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID) error {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	host := lobby.GetHost()
	if host == nil || host.Player.ID != requestingPlayer {
		return model.ErrNotHost
	}

	if lobby.State != model.LobbyStateInGame || lobby.CurrentGame == nil {
		return model.ErrNoGameInProgress
	}

	if err := c.gameController.AbandonGame(ctx, *lobby.CurrentGame); err != nil {
		return err
	}

	lobby.State = model.LobbyStateWaiting
	lobby.CurrentGame = nil
	lobby.UpdatedAt = c.clock.Now()

	return c.storage.SaveLobby(ctx, lobby)
}

// CompleteGame records a finished game in the lobby history and
// returns the lobby to the waiting state, ready for another game
func (c *Controller) CompleteGame(ctx context.Context, code model.LobbyCode) error {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	if lobby.CurrentGame == nil {
		return model.ErrNoGameInProgress
	}

	g, err := c.gameController.GetGame(ctx, *lobby.CurrentGame)
	if err != nil {
		return err
	}
	if g.Phase != model.GamePhaseEnded {
		return model.ErrGameInProgress
	}

	summary := c.gameController.Summarize(g)
	lobby.GameHistory = append(lobby.GameHistory, *summary)
	lobby.State = model.LobbyStateWaiting
	lobby.CurrentGame = nil
	lobby.UpdatedAt = c.clock.Now()

	return c.storage.SaveLobby(ctx, lobby)
}

// UpdateConfig updates the lobby configuration
func (c *Controller) UpdateConfig(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID, config model.LobbyConfig) error {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	host := lobby.GetHost()
	if host == nil || host.Player.ID != requestingPlayer {
		return model.ErrNotHost
	}

	if lobby.State == model.LobbyStateInGame {
		return model.ErrGameInProgress
	}

	lobby.Config = config
	lobby.UpdatedAt = c.clock.Now()

	return c.storage.SaveLobby(ctx, lobby)
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateLobby(ctx context.Context, host model.Player) (*model.Lobby, error)
	GetLobby(ctx context.Context, code model.LobbyCode) (*model.Lobby, error)
	JoinLobby(ctx context.Context, code model.LobbyCode, player model.Player) error
	LeaveLobby(ctx context.Context, code model.LobbyCode, playerID model.PlayerID) error
	SetRole(ctx context.Context, code model.LobbyCode, playerID model.PlayerID, role model.LobbyMemberRole) error
	TransferHost(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID, newHostID model.PlayerID) error
	StartGame(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID) (*model.Game, error)
	AbandonGame(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID) error
	CompleteGame(ctx context.Context, code model.LobbyCode) error
	UpdateConfig(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID, config model.LobbyConfig) error
}

var _ ControllerInterface = (*Controller)(nil)
