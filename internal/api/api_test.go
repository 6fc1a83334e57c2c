package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/scrabble-go/internal/api"
	"github.com/mcoot/scrabble-go/internal/api/response"
	"github.com/mcoot/scrabble-go/internal/factory"
	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/auth"
	"github.com/mcoot/scrabble-go/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
	auth    *auth.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)
	err = app.LexiconService.LoadFromFile(context.Background(), "../../data/words.txt")
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		AuthService:     app.AuthService,
		LobbyController: app.LobbyController,
		GameController:  app.GameController,
	})

	return &testServer{
		handler: router,
		storage: app.Storage.(*memory.Storage),
		auth:    app.AuthService,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// setRack replaces a player's rack so placements are deterministic
func (ts *testServer) setRack(t *testing.T, gameID, playerID, letters string) {
	t.Helper()

	g, err := ts.storage.GetGame(context.Background(), model.GameID(gameID))
	require.NoError(t, err)
	rack := make([]model.Tile, 0, len(letters))
	for _, l := range letters {
		rack = append(rack, model.NewTile(l))
	}
	g.Racks[model.PlayerID(playerID)] = rack
	require.NoError(t, ts.storage.SaveGame(context.Background(), g))
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateGuestPlayer(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"display_name": "Alice"}
	rr := ts.request(http.MethodPost, "/api/v1/players/guest", body, "")

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, "Alice", resp.Player.DisplayName)
	assert.True(t, resp.Player.IsGuest)
	assert.NotEmpty(t, resp.SessionToken)
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	// Register
	registerBody := map[string]string{
		"username":     "alice",
		"password":     "secret123",
		"display_name": "Alice",
	}
	rr := ts.request(http.MethodPost, "/api/v1/players/register", registerBody, "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	var registerResp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &registerResp)
	require.NoError(t, err)
	assert.False(t, registerResp.Player.IsGuest)

	// Login
	loginBody := map[string]string{
		"username": "alice",
		"password": "secret123",
	}
	rr = ts.request(http.MethodPost, "/api/v1/players/login", loginBody, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var loginResp response.AuthResponse
	err = json.Unmarshal(rr.Body.Bytes(), &loginResp)
	require.NoError(t, err)
	assert.Equal(t, registerResp.Player.ID, loginResp.Player.ID)
}

func TestGetMe(t *testing.T) {
	ts := newTestServer(t)

	// Create guest first
	body := map[string]string{"display_name": "Bob"}
	rr := ts.request(http.MethodPost, "/api/v1/players/guest", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var authResp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &authResp)
	require.NoError(t, err)

	// Get me
	rr = ts.request(http.MethodGet, "/api/v1/players/me", nil, authResp.SessionToken)
	assert.Equal(t, http.StatusOK, rr.Code)

	var meResp response.Player
	err = json.Unmarshal(rr.Body.Bytes(), &meResp)
	require.NoError(t, err)
	assert.Equal(t, "Bob", meResp.DisplayName)
}

func TestLogout(t *testing.T) {
	ts := newTestServer(t)

	_, token := createGuestPlayer(t, ts, "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/players/logout", nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// Token no longer valid
	rr = ts.request(http.MethodGet, "/api/v1/players/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	ts := newTestServer(t)

	// Try to get /me without token
	rr := ts.request(http.MethodGet, "/api/v1/players/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Try to create lobby without token
	rr = ts.request(http.MethodPost, "/api/v1/lobbies", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateAndJoinLobby(t *testing.T) {
	ts := newTestServer(t)

	// Create two players
	_, token1 := createGuestPlayer(t, ts, "Alice")
	_, token2 := createGuestPlayer(t, ts, "Bob")

	// Alice creates a lobby
	rr := ts.request(http.MethodPost, "/api/v1/lobbies", nil, token1)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var lobbyResp response.Lobby
	err := json.Unmarshal(rr.Body.Bytes(), &lobbyResp)
	require.NoError(t, err)

	assert.Equal(t, "waiting", lobbyResp.State)
	assert.False(t, lobbyResp.Config.FiniteBag)
	assert.Len(t, lobbyResp.Members, 1)
	assert.True(t, lobbyResp.Members[0].IsHost)

	// Bob joins the lobby
	rr = ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyResp.Code+"/join", nil, token2)
	assert.Equal(t, http.StatusOK, rr.Code)

	var joinResp response.Lobby
	err = json.Unmarshal(rr.Body.Bytes(), &joinResp)
	require.NoError(t, err)
	assert.Len(t, joinResp.Members, 2)
}

func TestLobbyHostActions(t *testing.T) {
	ts := newTestServer(t)

	_, token1 := createGuestPlayer(t, ts, "Alice")
	_, token2 := createGuestPlayer(t, ts, "Bob")

	// Create lobby
	lobbyCode := createLobby(t, ts, token1)

	// Bob joins
	rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/join", nil, token2)
	require.Equal(t, http.StatusOK, rr.Code)

	// Bob tries to update config (should fail - not host)
	body := map[string]bool{"finite_bag": true}
	rr = ts.request(http.MethodPatch, "/api/v1/lobbies/"+lobbyCode+"/config", body, token2)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	// Alice updates config (should succeed)
	rr = ts.request(http.MethodPatch, "/api/v1/lobbies/"+lobbyCode+"/config", body, token1)
	assert.Equal(t, http.StatusOK, rr.Code)

	var configResp response.LobbyConfig
	err := json.Unmarshal(rr.Body.Bytes(), &configResp)
	require.NoError(t, err)
	assert.True(t, configResp.FiniteBag)
}

func TestFullGameFlow(t *testing.T) {
	ts := newTestServer(t)

	// Create two players
	alice, token1 := createGuestPlayer(t, ts, "Alice")
	bob, token2 := createGuestPlayer(t, ts, "Bob")

	// Create lobby and have Bob join
	lobbyCode := createLobby(t, ts, token1)

	rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/join", nil, token2)
	require.Equal(t, http.StatusOK, rr.Code)

	// Start game
	rr = ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/game", nil, token1)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var gameResp response.GameState
	err := json.Unmarshal(rr.Body.Bytes(), &gameResp)
	require.NoError(t, err)
	assert.Equal(t, "playing", gameResp.Phase)
	assert.Len(t, gameResp.Players, 2)
	assert.Equal(t, 1, gameResp.Round)
	require.NotNil(t, gameResp.Board)
	assert.Equal(t, model.BoardSize, gameResp.Board.Size)
	assert.Len(t, gameResp.MyRack, model.RackSize)

	// Host moves first
	require.Equal(t, alice, gameResp.CurrentPlayer)

	// Bob can't play out of turn
	ts.setRack(t, gameResp.ID, bob, "ATXXXXX")
	placeBody := map[string]any{"word": "AT", "row": 7, "col": 7, "direction": "right"}
	rr = ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/game/place", placeBody, token2)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	// Alice opens with CAT through the center
	ts.setRack(t, gameResp.ID, alice, "CATXYZW")
	placeBody = map[string]any{"word": "CAT", "row": 7, "col": 7, "direction": "right"}
	rr = ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/game/place", placeBody, token1)
	assert.Equal(t, http.StatusOK, rr.Code)

	var placeResp response.PlaceResponse
	err = json.Unmarshal(rr.Body.Bytes(), &placeResp)
	require.NoError(t, err)
	assert.Equal(t, "CAT", placeResp.Word)
	assert.Equal(t, 5, placeResp.Score)
	assert.Equal(t, 5, placeResp.TotalScore)
	assert.False(t, placeResp.GameComplete)

	// Bob hooks AT onto the T of CAT
	placeBody = map[string]any{"word": "AT", "row": 6, "col": 9, "direction": "down"}
	rr = ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/game/place", placeBody, token2)
	assert.Equal(t, http.StatusOK, rr.Code)

	err = json.Unmarshal(rr.Body.Bytes(), &placeResp)
	require.NoError(t, err)
	assert.Equal(t, 2, placeResp.Score)

	// A nonsense word is rejected
	ts.setRack(t, gameResp.ID, alice, "QXZJKVW")
	placeBody = map[string]any{"word": "QXZ", "row": 7, "col": 9, "direction": "down"}
	rr = ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/game/place", placeBody, token1)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// State reflects both plays
	rr = ts.request(http.MethodGet, "/api/v1/lobbies/"+lobbyCode+"/game", nil, token1)
	assert.Equal(t, http.StatusOK, rr.Code)

	var stateResp response.GameState
	err = json.Unmarshal(rr.Body.Bytes(), &stateResp)
	require.NoError(t, err)
	assert.Equal(t, 2, stateResp.Round)
	assert.Equal(t, 5, stateResp.Scores[alice])
	assert.Equal(t, 2, stateResp.Scores[bob])
	assert.Equal(t, "A", stateResp.Board.Cells[6][9].Letter)
}

func TestSkippingOutEndsGame(t *testing.T) {
	ts := newTestServer(t)

	_, token1 := createGuestPlayer(t, ts, "Alice")
	_, token2 := createGuestPlayer(t, ts, "Bob")

	lobbyCode := createLobby(t, ts, token1)

	rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/join", nil, token2)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/game", nil, token1)
	require.Equal(t, http.StatusCreated, rr.Code)

	// Both players pass until the skip limit ends the game
	tokens := []string{token1, token2}
	var skipResp response.GameState
	for i := 0; i < model.MaxSkippedTurns; i++ {
		rr = ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/game/skip", nil, tokens[i%2])
		require.Equal(t, http.StatusOK, rr.Code)
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &skipResp))
	}

	assert.Equal(t, "ended", skipResp.Phase)
	assert.Len(t, skipResp.Winners, 2)

	// The lobby recorded the result and is ready for a rematch
	rr = ts.request(http.MethodGet, "/api/v1/lobbies/"+lobbyCode, nil, token1)
	require.Equal(t, http.StatusOK, rr.Code)

	var lobbyResp response.Lobby
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &lobbyResp))
	assert.Equal(t, "waiting", lobbyResp.State)
	assert.Nil(t, lobbyResp.CurrentGame)
	require.Len(t, lobbyResp.GameHistory, 1)
	assert.Len(t, lobbyResp.GameHistory[0].Winners, 2)
}

func TestRackActions(t *testing.T) {
	ts := newTestServer(t)

	alice, token1 := createGuestPlayer(t, ts, "Alice")
	_, token2 := createGuestPlayer(t, ts, "Bob")

	lobbyCode := createLobby(t, ts, token1)

	rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/join", nil, token2)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/game", nil, token1)
	require.Equal(t, http.StatusCreated, rr.Code)

	var gameResp response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &gameResp))

	// Shuffling keeps the same tiles
	ts.setRack(t, gameResp.ID, alice, "ABCDEFG")
	rr = ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/game/rack/shuffle", nil, token1)
	assert.Equal(t, http.StatusOK, rr.Code)

	var shuffled response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &shuffled))
	letters := make([]string, len(shuffled.MyRack))
	for i, tile := range shuffled.MyRack {
		letters[i] = tile.Letter
	}
	assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E", "F", "G"}, letters)

	// Renewing draws a full fresh rack
	rr = ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/game/rack/renew", nil, token1)
	assert.Equal(t, http.StatusOK, rr.Code)

	var renewed response.GameState
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &renewed))
	assert.Len(t, renewed.MyRack, model.RackSize)
}

func TestAbandonGame(t *testing.T) {
	ts := newTestServer(t)

	_, token1 := createGuestPlayer(t, ts, "Alice")
	_, token2 := createGuestPlayer(t, ts, "Bob")

	lobbyCode := createLobby(t, ts, token1)

	rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/join", nil, token2)
	require.Equal(t, http.StatusOK, rr.Code)

	// Start game
	rr = ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/game", nil, token1)
	require.Equal(t, http.StatusCreated, rr.Code)

	// Non-host tries to abandon (should fail)
	rr = ts.request(http.MethodDelete, "/api/v1/lobbies/"+lobbyCode+"/game", nil, token2)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	// Host abandons
	rr = ts.request(http.MethodDelete, "/api/v1/lobbies/"+lobbyCode+"/game", nil, token1)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// Verify no game in progress
	rr = ts.request(http.MethodGet, "/api/v1/lobbies/"+lobbyCode+"/game", nil, token1)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLeaveLobby(t *testing.T) {
	ts := newTestServer(t)

	_, token1 := createGuestPlayer(t, ts, "Alice")
	_, token2 := createGuestPlayer(t, ts, "Bob")

	lobbyCode := createLobby(t, ts, token1)

	// Bob joins
	rr := ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/join", nil, token2)
	require.Equal(t, http.StatusOK, rr.Code)

	// Bob leaves
	rr = ts.request(http.MethodPost, "/api/v1/lobbies/"+lobbyCode+"/leave", nil, token2)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// Verify Bob is gone
	rr = ts.request(http.MethodGet, "/api/v1/lobbies/"+lobbyCode, nil, token1)
	assert.Equal(t, http.StatusOK, rr.Code)

	var lobbyResp response.Lobby
	err := json.Unmarshal(rr.Body.Bytes(), &lobbyResp)
	require.NoError(t, err)
	assert.Len(t, lobbyResp.Members, 1)
}

// Helper functions

func createGuestPlayer(t *testing.T, ts *testServer, displayName string) (string, string) {
	t.Helper()

	body := map[string]string{"display_name": displayName}
	rr := ts.request(http.MethodPost, "/api/v1/players/guest", body, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	return resp.Player.ID, resp.SessionToken
}

func createLobby(t *testing.T, ts *testServer, token string) string {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/lobbies", nil, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Lobby
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	return resp.Code
}
