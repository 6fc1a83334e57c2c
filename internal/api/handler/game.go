package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/scrabble-go/internal/api/middleware"
	"github.com/mcoot/scrabble-go/internal/api/request"
	"github.com/mcoot/scrabble-go/internal/api/response"
	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/game"
	"github.com/mcoot/scrabble-go/internal/services/lobby"
)

// GameHandler handles game-related endpoints. Games are addressed
// through their lobby so clients only ever hold a lobby code.
type GameHandler struct {
	lobbyController *lobby.Controller
	gameController  *game.Controller
	logger          *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	lobbyController *lobby.Controller,
	gameController *game.Controller,
	logger *slog.Logger,
) *GameHandler {
	return &GameHandler{
		lobbyController: lobbyController,
		gameController:  gameController,
		logger:          logger,
	}
}

// Start handles POST /api/v1/lobbies/{code}/game
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	g, err := h.lobbyController.StartGame(r.Context(), code, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	board, err := h.gameController.GetBoard(r.Context(), g.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameStateFromModel(g, board, player.ID))
}

// Get handles GET /api/v1/lobbies/{code}/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	g, err := h.currentGame(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	board, err := h.gameController.GetBoard(r.Context(), g.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(g, board, player.ID))
}

// Abandon handles DELETE /api/v1/lobbies/{code}/game
func (h *GameHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	if err := h.lobbyController.AbandonGame(r.Context(), code, player.ID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Place handles POST /api/v1/lobbies/{code}/game/place
func (h *GameHandler) Place(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	var req request.PlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Word == "" {
		WriteError(w, NewInvalidRequestError("word is required"))
		return
	}

	g, err := h.currentGame(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	placement := model.Placement{
		Word: req.Word,
		Pos:  model.Position{Row: req.Row, Col: req.Col},
		Dir:  model.Direction(req.Direction),
	}

	result, err := h.gameController.SubmitPlacement(r.Context(), g.ID, player.ID, placement)
	if err != nil {
		WriteError(w, err)
		return
	}

	if result.GameEnded {
		h.recordCompletion(r, code)
	}

	response.JSON(w, http.StatusOK, response.PlaceResponseFromResult(result))
}

// Skip handles POST /api/v1/lobbies/{code}/game/skip
func (h *GameHandler) Skip(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	g, err := h.currentGame(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	updated, err := h.gameController.Skip(r.Context(), g.ID, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	if updated.Phase == model.GamePhaseEnded {
		h.recordCompletion(r, code)
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(updated, nil, player.ID))
}

// ShuffleRack handles POST /api/v1/lobbies/{code}/game/rack/shuffle
func (h *GameHandler) ShuffleRack(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	g, err := h.currentGame(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	updated, err := h.gameController.ShuffleRack(r.Context(), g.ID, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(updated, nil, player.ID))
}

// RenewRack handles POST /api/v1/lobbies/{code}/game/rack/renew
func (h *GameHandler) RenewRack(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	g, err := h.currentGame(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	updated, err := h.gameController.RenewRack(r.Context(), g.ID, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(updated, nil, player.ID))
}

// currentGame resolves the lobby in the URL to its running game
func (h *GameHandler) currentGame(r *http.Request) (*model.Game, error) {
	code := model.LobbyCode(mux.Vars(r)["code"])

	lob, err := h.lobbyController.GetLobby(r.Context(), code)
	if err != nil {
		return nil, err
	}
	if lob.CurrentGame == nil {
		return nil, model.ErrNoGameInProgress
	}

	return h.gameController.GetGame(r.Context(), *lob.CurrentGame)
}

// recordCompletion moves a finished game into the lobby history
func (h *GameHandler) recordCompletion(r *http.Request, code model.LobbyCode) {
	if err := h.lobbyController.CompleteGame(r.Context(), code); err != nil {
		h.logger.Error("failed to record game completion",
			slog.String("lobby_code", string(code)),
			slog.String("error", err.Error()),
		)
	}
}
