package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GamePhase represents the current phase of a game
type GamePhase string

const (
	GamePhasePlaying   GamePhase = "playing"   // Awaiting the active player's move
	GamePhaseEnded     GamePhase = "ended"     // Finished, winners computed
	GamePhaseAbandoned GamePhase = "abandoned" // Cancelled before completion
)

// MaxSkippedTurns is the number of consecutive skips that ends the game
const MaxSkippedTurns = 6

// Player count limits for a game
const (
	MinPlayers = 2
	MaxPlayers = 4
)

// Placement is one candidate move: a word, its starting cell and its
// direction. It exists only for a single validate/apply cycle.
type Placement struct {
	Word string    `json:"word"`
	Pos  Position  `json:"pos"`
	Dir  Direction `json:"dir"`
}

// PlacementResult reports the outcome of a successful placement
type PlacementResult struct {
	Word      string
	Score     int // points this placement earned
	Total     int // player's cumulative score after the placement
	GameEnded bool
	Winners   []PlayerID // set only when the placement ended the game
}

// Game holds the complete state of one game: turn order, round and
// skip counters, per-player scores and racks, and the shared tile
// supply. The board is stored separately. Controllers load a Game,
// transform it and persist it back; there is no ambient state.
type Game struct {
	ID        GameID
	LobbyCode LobbyCode
	Phase     GamePhase

	// Players in turn order (fixed at game start)
	Players    []PlayerID
	CurrentIdx int // index into Players of the active player

	Round        int // starts at 1, increments when the last player finishes a turn
	SkippedTurns int // consecutive skips; reset on any successful placement

	Scores map[PlayerID]int
	Racks  map[PlayerID][]Tile
	Supply []Tile // shuffled pool; draws remove from the end

	// FiniteBag disables the auto-refill policy, letting the supply
	// genuinely run out and arming the supply-exhausted end condition
	FiniteBag bool

	Winners []PlayerID // all top scorers, set when Phase is ended

	TurnStartedAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CurrentPlayer returns the PlayerID of the active player
func (g *Game) CurrentPlayer() PlayerID {
	if len(g.Players) == 0 {
		return ""
	}
	return g.Players[g.CurrentIdx]
}

// IsFirstInOrder reports whether the player opens each round
func (g *Game) IsFirstInOrder(playerID PlayerID) bool {
	return len(g.Players) > 0 && g.Players[0] == playerID
}

// HasPlayer reports whether the player is part of this game
func (g *Game) HasPlayer(playerID PlayerID) bool {
	for _, p := range g.Players {
		if p == playerID {
			return true
		}
	}
	return false
}

// SupplyRemaining returns the number of undrawn tiles
func (g *Game) SupplyRemaining() int {
	return len(g.Supply)
}

// Rack returns the player's current rack
func (g *Game) Rack(playerID PlayerID) []Tile {
	return g.Racks[playerID]
}

// TopScorers returns every player holding the maximum score
func (g *Game) TopScorers() []PlayerID {
	if len(g.Players) == 0 {
		return nil
	}
	top := g.Scores[g.Players[0]]
	for _, p := range g.Players[1:] {
		if g.Scores[p] > top {
			top = g.Scores[p]
		}
	}
	var winners []PlayerID
	for _, p := range g.Players {
		if g.Scores[p] == top {
			winners = append(winners, p)
		}
	}
	return winners
}

// GameSummary is a lightweight record of a completed game
type GameSummary struct {
	ID          GameID
	FinalScores map[PlayerID]int
	Winners     []PlayerID
	Rounds      int
	CompletedAt time.Time
}
