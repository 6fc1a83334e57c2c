package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Lobby:
		o.printLobby(v)
	case LobbyConfig:
		o.printLobbyConfig(v)
	case GameState:
		o.printGameState(v)
	case PlaceResult:
		o.printPlaceResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Lobby response type
type Lobby struct {
	Code        string        `json:"code"`
	State       string        `json:"state"`
	Config      LobbyConfig   `json:"config"`
	Members     []LobbyMember `json:"members"`
	CurrentGame *string       `json:"current_game"`
	GameHistory []GameSummary `json:"game_history,omitempty"`
}

// LobbyConfig response type
type LobbyConfig struct {
	FiniteBag bool `json:"finite_bag"`
}

// LobbyMember response type
type LobbyMember struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	IsHost      bool   `json:"is_host"`
}

// GameSummary response type
type GameSummary struct {
	ID          string         `json:"id"`
	FinalScores map[string]int `json:"final_scores"`
	Winners     []string       `json:"winners"`
	Rounds      int            `json:"rounds"`
	CompletedAt string         `json:"completed_at"`
}

// GameState response type
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

// Board response type
type Board struct {
	Size  int      `json:"size"`
	Cells [][]Cell `json:"cells"`
}

// Cell response type
type Cell struct {
	Letter  string `json:"letter,omitempty"`
	Premium string `json:"premium,omitempty"`
	Used    bool   `json:"used,omitempty"`
}

// Tile response type
type Tile struct {
	Letter string `json:"letter"`
	Value  int    `json:"value"`
}

// PlaceResult response type
type PlaceResult struct {
	Word         string   `json:"word"`
	Score        int      `json:"score"`
	TotalScore   int      `json:"total_score"`
	GameComplete bool     `json:"game_complete"`
	Winners      []string `json:"winners,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printLobby(l Lobby) {
	bagStr := "infinite"
	if l.Config.FiniteBag {
		bagStr = "finite"
	}

	fmt.Printf("Lobby: %s\n", l.Code)
	fmt.Printf("State: %s\n", l.State)
	fmt.Printf("Tile Bag: %s\n", bagStr)
	if l.CurrentGame != nil {
		fmt.Printf("Current Game: %s\n", *l.CurrentGame)
	}
	fmt.Printf("Members (%d):\n", len(l.Members))
	for _, m := range l.Members {
		hostStr := ""
		if m.IsHost {
			hostStr = " [host]"
		}
		fmt.Printf("  - %s (%s) - %s%s\n", m.DisplayName, m.PlayerID, m.Role, hostStr)
	}
	if len(l.GameHistory) > 0 {
		fmt.Printf("Past Games (%d):\n", len(l.GameHistory))
		for _, g := range l.GameHistory {
			fmt.Printf("  - %s: %s won after %d rounds\n", g.ID, strings.Join(g.Winners, ", "), g.Rounds)
		}
	}
}

func (o *Output) printLobbyConfig(c LobbyConfig) {
	bagStr := "infinite"
	if c.FiniteBag {
		bagStr = "finite"
	}
	fmt.Printf("Tile Bag: %s\n", bagStr)
}

func (o *Output) printGameState(g GameState) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Phase: %s\n", g.Phase)
	fmt.Printf("Round: %d\n", g.Round)
	if g.CurrentPlayer != "" {
		fmt.Printf("Current Player: %s\n", g.CurrentPlayer)
	}
	if g.SkippedTurns > 0 {
		fmt.Printf("Consecutive Skips: %d\n", g.SkippedTurns)
	}
	fmt.Printf("Tiles Remaining: %d\n", g.SupplyRemaining)

	if g.Board != nil {
		fmt.Println("\nBoard:")
		o.printBoard(g.Board)
	}

	if len(g.MyRack) > 0 {
		fmt.Println("\nYour Rack:")
		o.printRack(g.MyRack)
	}

	if len(g.Scores) > 0 {
		fmt.Println("\nScores:")
		players := make([]string, 0, len(g.Scores))
		for pid := range g.Scores {
			players = append(players, pid)
		}
		sort.Strings(players)
		for _, pid := range players {
			fmt.Printf("  %s: %d points\n", pid, g.Scores[pid])
		}
	}

	if len(g.Winners) > 0 {
		fmt.Printf("\nWinners: %s\n", strings.Join(g.Winners, ", "))
	}
}

// premiumMarkers are the two-character labels shown on empty premium cells.
var premiumMarkers = map[string]string{
	"triple_word":   "TW",
	"double_word":   "DW",
	"triple_letter": "TL",
	"double_letter": "DL",
	"center":        "**",
}

func (o *Output) printBoard(b *Board) {
	if b == nil || len(b.Cells) == 0 {
		return
	}

	size := b.Size

	// Print column headers
	fmt.Print("    ")
	for col := 0; col < size; col++ {
		fmt.Printf("%2d ", col)
	}
	fmt.Println()

	// Print top border
	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")

	// Print rows
	for row := 0; row < size; row++ {
		fmt.Printf("%2d |", row)
		for col := 0; col < size; col++ {
			cell := b.Cells[row][col]
			switch {
			case cell.Letter != "":
				fmt.Printf(" %s ", cell.Letter)
			case cell.Premium != "":
				fmt.Printf("%s ", premiumMarkers[cell.Premium])
			default:
				fmt.Print(" . ")
			}
		}
		fmt.Println("|")
	}

	// Print bottom border
	fmt.Print("   +")
	for col := 0; col < size; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")
}

func (o *Output) printRack(rack []Tile) {
	letters := make([]string, len(rack))
	values := make([]string, len(rack))
	for i, t := range rack {
		letters[i] = fmt.Sprintf("%2s", t.Letter)
		values[i] = fmt.Sprintf("%2d", t.Value)
	}
	fmt.Printf("  %s\n", strings.Join(letters, " "))
	fmt.Printf("  %s\n", strings.Join(values, " "))
}

func (o *Output) printPlaceResult(p PlaceResult) {
	fmt.Printf("Placed %s for %d points\n", p.Word, p.Score)
	fmt.Printf("Your Total: %d\n", p.TotalScore)

	if p.GameComplete {
		fmt.Println("Game complete!")
		if len(p.Winners) > 0 {
			fmt.Printf("Winners: %s\n", strings.Join(p.Winners, ", "))
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
