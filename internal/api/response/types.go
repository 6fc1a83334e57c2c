package response

import (
	"time"

	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/auth"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// LobbyConfig represents lobby configuration
type LobbyConfig struct {
	FiniteBag bool `json:"finite_bag"`
}

// LobbyConfigFromModel converts model.LobbyConfig
func LobbyConfigFromModel(c model.LobbyConfig) LobbyConfig {
	return LobbyConfig{
		FiniteBag: c.FiniteBag,
	}
}

// LobbyMember represents a lobby member
type LobbyMember struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	IsHost      bool   `json:"is_host"`
}

// LobbyMemberFromModel converts model.LobbyMember
func LobbyMemberFromModel(m model.LobbyMember) LobbyMember {
	return LobbyMember{
		PlayerID:    string(m.Player.ID),
		DisplayName: m.Player.DisplayName,
		Role:        string(m.Role),
		IsHost:      m.IsHost,
	}
}

// GameSummary represents a completed game summary
type GameSummary struct {
	ID          string         `json:"id"`
	FinalScores map[string]int `json:"final_scores"`
	Winners     []string       `json:"winners"`
	Rounds      int            `json:"rounds"`
	CompletedAt time.Time      `json:"completed_at"`
}

// GameSummaryFromModel converts model.GameSummary
func GameSummaryFromModel(g model.GameSummary) GameSummary {
	scores := make(map[string]int, len(g.FinalScores))
	for pid, score := range g.FinalScores {
		scores[string(pid)] = score
	}
	winners := make([]string, len(g.Winners))
	for i, w := range g.Winners {
		winners[i] = string(w)
	}
	return GameSummary{
		ID:          string(g.ID),
		FinalScores: scores,
		Winners:     winners,
		Rounds:      g.Rounds,
		CompletedAt: g.CompletedAt,
	}
}

// Lobby represents a lobby in API responses
type Lobby struct {
	Code        string        `json:"code"`
	State       string        `json:"state"`
	Config      LobbyConfig   `json:"config"`
	Members     []LobbyMember `json:"members"`
	CurrentGame *string       `json:"current_game"`
	GameHistory []GameSummary `json:"game_history,omitempty"`
}

// LobbyFromModel converts model.Lobby
func LobbyFromModel(l *model.Lobby) Lobby {
	members := make([]LobbyMember, len(l.Members))
	for i, m := range l.Members {
		members[i] = LobbyMemberFromModel(m)
	}

	history := make([]GameSummary, len(l.GameHistory))
	for i, g := range l.GameHistory {
		history[i] = GameSummaryFromModel(g)
	}

	var currentGame *string
	if l.CurrentGame != nil {
		g := string(*l.CurrentGame)
		currentGame = &g
	}

	return Lobby{
		Code:        string(l.Code),
		State:       string(l.State),
		Config:      LobbyConfigFromModel(l.Config),
		Members:     members,
		CurrentGame: currentGame,
		GameHistory: history,
	}
}

// Cell represents a single board cell
type Cell struct {
	Letter  string `json:"letter,omitempty"`
	Premium string `json:"premium,omitempty"`
	Used    bool   `json:"used,omitempty"`
}

// Board represents the shared game board
type Board struct {
	Size  int      `json:"size"`
	Cells [][]Cell `json:"cells"`
}

// BoardFromModel converts model.Board to response Board.
// Empty cells have no letter; premium kinds are reported even after
// they have been consumed so clients can render the static layout.
func BoardFromModel(b *model.Board) Board {
	cells := make([][]Cell, b.Size)
	for row := 0; row < b.Size; row++ {
		cells[row] = make([]Cell, b.Size)
		for col := 0; col < b.Size; col++ {
			mc := b.Cells[row][col]
			cell := Cell{Used: mc.Used}
			if mc.Letter != 0 {
				cell.Letter = string(mc.Letter)
			}
			if mc.Premium != model.PremiumNone {
				cell.Premium = string(mc.Premium)
			}
			cells[row][col] = cell
		}
	}
	return Board{Size: b.Size, Cells: cells}
}

// Tile represents a rack tile
type Tile struct {
	Letter string `json:"letter"`
	Value  int    `json:"value"`
}

// RackFromModel converts a player's rack
func RackFromModel(rack []model.Tile) []Tile {
	out := make([]Tile, len(rack))
	for i, t := range rack {
		out[i] = Tile{Letter: string(t.Letter), Value: t.Value}
	}
	return out
}

// GameState represents the current game state. MyRack is only
// populated for the requesting player; other racks are never exposed.
type GameState struct {
	ID              string         `json:"id"`
	Phase           string         `json:"phase"`
	Round           int            `json:"round"`
	Players         []string       `json:"players"`
	CurrentPlayer   string         `json:"current_player"`
	SkippedTurns    int            `json:"skipped_turns"`
	Scores          map[string]int `json:"scores"`
	SupplyRemaining int            `json:"supply_remaining"`
	Board           *Board         `json:"board,omitempty"`
	MyRack          []Tile         `json:"my_rack,omitempty"`
	Winners         []string       `json:"winners,omitempty"`
}

// GameStateFromModel converts model.Game to response GameState
func GameStateFromModel(g *model.Game, board *model.Board, viewer model.PlayerID) GameState {
	players := make([]string, len(g.Players))
	for i, p := range g.Players {
		players[i] = string(p)
	}

	scores := make(map[string]int, len(g.Scores))
	for pid, score := range g.Scores {
		scores[string(pid)] = score
	}

	var boardResp *Board
	if board != nil {
		b := BoardFromModel(board)
		boardResp = &b
	}

	var myRack []Tile
	if g.HasPlayer(viewer) {
		myRack = RackFromModel(g.Rack(viewer))
	}

	var winners []string
	if len(g.Winners) > 0 {
		winners = make([]string, len(g.Winners))
		for i, w := range g.Winners {
			winners[i] = string(w)
		}
	}

	return GameState{
		ID:              string(g.ID),
		Phase:           string(g.Phase),
		Round:           g.Round,
		Players:         players,
		CurrentPlayer:   string(g.CurrentPlayer()),
		SkippedTurns:    g.SkippedTurns,
		Scores:          scores,
		SupplyRemaining: g.SupplyRemaining(),
		Board:           boardResp,
		MyRack:          myRack,
		Winners:         winners,
	}
}

// PlaceResponse is the response after placing a word
type PlaceResponse struct {
	Word         string   `json:"word"`
	Score        int      `json:"score"`
	TotalScore   int      `json:"total_score"`
	GameComplete bool     `json:"game_complete"`
	Winners      []string `json:"winners,omitempty"`
}

// PlaceResponseFromResult converts a model.PlacementResult
func PlaceResponseFromResult(r *model.PlacementResult) PlaceResponse {
	var winners []string
	if len(r.Winners) > 0 {
		winners = make([]string, len(r.Winners))
		for i, w := range r.Winners {
			winners[i] = string(w)
		}
	}
	return PlaceResponse{
		Word:         r.Word,
		Score:        r.Score,
		TotalScore:   r.Total,
		GameComplete: r.GameEnded,
		Winners:      winners,
	}
}
