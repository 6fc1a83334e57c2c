package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabble-go/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.LoadTestLexicon())
}

// setRack replaces a player's rack so placements are deterministic
func (s *IntegrationSuite) setRack(gameID model.GameID, playerID model.PlayerID, letters string) {
	g, err := s.app.Storage.GetGame(s.ctx, gameID)
	s.Require().NoError(err)
	rack := make([]model.Tile, 0, len(letters))
	for _, l := range letters {
		rack = append(rack, model.NewTile(l))
	}
	g.Racks[playerID] = rack
	s.Require().NoError(s.app.Storage.SaveGame(s.ctx, g))
}

// Complete flow: guests sign up, form a lobby, play words, finish by
// skipping, and the lobby records the result and can host a rematch.
func (s *IntegrationSuite) TestCompleteGameFlow() {
	s.app.MockRandom.QueueString("LOBBY1", "GAME00000001")

	// Guests sign up
	hostSession, err := s.app.AuthService.CreateGuestPlayer(s.ctx, "Host Player")
	s.Require().NoError(err)
	host := hostSession.Player

	guestSession, err := s.app.AuthService.CreateGuestPlayer(s.ctx, "Player Two")
	s.Require().NoError(err)
	player2 := guestSession.Player

	// Form a lobby
	lob, err := s.app.LobbyController.CreateLobby(s.ctx, host)
	s.Require().NoError(err)
	s.Equal(model.LobbyCode("LOBBY1"), lob.Code)

	s.Require().NoError(s.app.LobbyController.JoinLobby(s.ctx, lob.Code, player2))

	// Start the game
	g, err := s.app.LobbyController.StartGame(s.ctx, lob.Code, host.ID)
	s.Require().NoError(err)
	s.Equal(model.GamePhasePlaying, g.Phase)
	s.Len(g.Players, 2)

	// Host opens with CAT through the center
	s.setRack(g.ID, host.ID, "CATXYZW")
	result, err := s.app.GameController.SubmitPlacement(s.ctx, g.ID, host.ID, model.Placement{
		Word: "CAT",
		Pos:  model.Center,
		Dir:  model.DirectionRight,
	})
	s.Require().NoError(err)
	s.Equal(5, result.Score)

	// Player two hooks AT onto the existing T
	s.setRack(g.ID, player2.ID, "AXXXXXX")
	result, err = s.app.GameController.SubmitPlacement(s.ctx, g.ID, player2.ID, model.Placement{
		Word: "AT",
		Pos:  model.Position{Row: 6, Col: 9},
		Dir:  model.DirectionDown,
	})
	s.Require().NoError(err)
	s.Equal(2, result.Score)

	// Both players run out of ideas and skip six times
	players := []model.PlayerID{host.ID, player2.ID}
	for i := 0; i < model.MaxSkippedTurns; i++ {
		_, err := s.app.GameController.Skip(s.ctx, g.ID, players[i%2])
		s.Require().NoError(err)
	}

	ended, err := s.app.GameController.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(model.GamePhaseEnded, ended.Phase)
	s.Equal([]model.PlayerID{host.ID}, ended.Winners)
	s.Equal(5, ended.Scores[host.ID])
	s.Equal(2, ended.Scores[player2.ID])

	// Record the result and verify the lobby resets
	s.Require().NoError(s.app.LobbyController.CompleteGame(s.ctx, lob.Code))

	updated, err := s.app.LobbyController.GetLobby(s.ctx, lob.Code)
	s.Require().NoError(err)
	s.Equal(model.LobbyStateWaiting, updated.State)
	s.Nil(updated.CurrentGame)
	s.Require().Len(updated.GameHistory, 1)
	s.Equal(ended.ID, updated.GameHistory[0].ID)
	s.Equal([]model.PlayerID{host.ID}, updated.GameHistory[0].Winners)

	// Rematch in the same lobby
	s.app.MockRandom.QueueString("GAME00000002")
	rematch, err := s.app.LobbyController.StartGame(s.ctx, lob.Code, host.ID)
	s.Require().NoError(err)
	s.Equal(model.GameID("GAME00000002"), rematch.ID)
	s.Equal(1, rematch.Round)
}

// Tile bookkeeping: every tile is in exactly one place (a rack, the
// supply, or the board) at all times.
func (s *IntegrationSuite) TestTileConservation() {
	s.app.MockRandom.QueueString("LOBBY1", "GAME00000001")

	hostSession, err := s.app.AuthService.CreateGuestPlayer(s.ctx, "Host")
	s.Require().NoError(err)
	guestSession, err := s.app.AuthService.CreateGuestPlayer(s.ctx, "Guest")
	s.Require().NoError(err)

	lob, err := s.app.LobbyController.CreateLobby(s.ctx, hostSession.Player)
	s.Require().NoError(err)
	s.Require().NoError(s.app.LobbyController.JoinLobby(s.ctx, lob.Code, guestSession.Player))

	// Finite bag so the supply is never silently rebuilt
	s.Require().NoError(s.app.LobbyController.UpdateConfig(s.ctx, lob.Code, hostSession.PlayerID, model.LobbyConfig{FiniteBag: true}))

	g, err := s.app.LobbyController.StartGame(s.ctx, lob.Code, hostSession.PlayerID)
	s.Require().NoError(err)

	total := model.TotalTiles()
	racked := 0
	for _, p := range g.Players {
		racked += len(g.Rack(p))
	}
	s.Equal(total, g.SupplyRemaining()+racked)

	// Place a word; letters move from rack to board, refills come from
	// the supply
	s.setRack(g.ID, hostSession.PlayerID, "CATXYZW")
	_, err = s.app.GameController.SubmitPlacement(s.ctx, g.ID, hostSession.PlayerID, model.Placement{
		Word: "CAT",
		Pos:  model.Center,
		Dir:  model.DirectionRight,
	})
	s.Require().NoError(err)

	after, err := s.app.GameController.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Len(after.Rack(hostSession.PlayerID), model.RackSize)
	s.Equal(g.SupplyRemaining()-3, after.SupplyRemaining())
}

// Sessions issued by the auth service drive the whole flow
func (s *IntegrationSuite) TestRegisteredPlayerLifecycle() {
	s.app.MockRandom.QueueString("LOBBY1")

	_, err := s.app.AuthService.RegisterPlayer(s.ctx, "alice", "correct horse", "Alice")
	s.Require().NoError(err)

	session, err := s.app.AuthService.Login(s.ctx, "alice", "correct horse")
	s.Require().NoError(err)

	validated, err := s.app.AuthService.ValidateSession(session.Token)
	s.Require().NoError(err)

	lob, err := s.app.LobbyController.CreateLobby(s.ctx, validated.Player)
	s.Require().NoError(err)
	s.Equal(validated.PlayerID, lob.GetHost().Player.ID)
}
