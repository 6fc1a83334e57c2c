package model

// BoardSize is the fixed grid dimension
const BoardSize = 15

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// Center is the starting cell for the first word of a game
var Center = Position{Row: 7, Col: 7}

// Direction is the axis a word is placed along
type Direction string

const (
	DirectionRight Direction = "right" // advancing column per letter
	DirectionDown  Direction = "down"  // advancing row per letter
)

// IsValid reports whether the direction is one of the two placement axes
func (d Direction) IsValid() bool {
	return d == DirectionRight || d == DirectionDown
}

// Offset returns the per-letter (row, col) step for the direction
func (d Direction) Offset() (int, int) {
	if d == DirectionDown {
		return 1, 0
	}
	return 0, 1
}

// Premium is the static bonus kind of a cell, fixed at board construction
type Premium string

const (
	PremiumNone         Premium = ""
	PremiumCenter       Premium = "center" // marker only, no score effect
	PremiumDoubleLetter Premium = "double_letter"
	PremiumTripleLetter Premium = "triple_letter"
	PremiumDoubleWord   Premium = "double_word"
	PremiumTripleWord   Premium = "triple_word"
)

// Multiplies reports whether the premium affects scoring
func (p Premium) Multiplies() bool {
	switch p {
	case PremiumDoubleLetter, PremiumTripleLetter, PremiumDoubleWord, PremiumTripleWord:
		return true
	}
	return false
}

// Cell is one board square. The premium kind is static and independent
// of occupancy; Used marks a premium that has already been scored so it
// can never fire twice.
type Cell struct {
	Premium Premium `json:"premium,omitempty"`
	Letter  rune    `json:"letter,omitempty"` // 0 when unoccupied
	Used    bool    `json:"used,omitempty"`
}

// IsOccupied reports whether a letter has been placed on the cell
func (c Cell) IsOccupied() bool {
	return c.Letter != 0
}

// BonusTrigger records a premium consumed by a placement, in the order
// the placement's cells were written. The scorer applies letter bonuses
// per trigger and word multipliers in trigger order.
type BonusTrigger struct {
	Letter  rune    `json:"letter"`
	Premium Premium `json:"premium"`
}

// Static premium layout, symmetric per the standard board.
var (
	tripleWordSquares = []Position{
		{0, 0}, {7, 0}, {14, 0}, {0, 7}, {14, 7}, {0, 14}, {7, 14}, {14, 14},
	}
	doubleWordSquares = []Position{
		{1, 1}, {2, 2}, {3, 3}, {4, 4}, {1, 13}, {2, 12}, {3, 11}, {4, 10},
		{13, 1}, {12, 2}, {11, 3}, {10, 4}, {13, 13}, {12, 12}, {11, 11}, {10, 10},
	}
	tripleLetterSquares = []Position{
		{1, 5}, {1, 9}, {5, 1}, {5, 5}, {5, 9}, {5, 13},
		{9, 1}, {9, 5}, {9, 9}, {9, 13}, {13, 5}, {13, 9},
	}
	doubleLetterSquares = []Position{
		{0, 3}, {0, 11}, {2, 6}, {2, 8}, {3, 0}, {3, 7}, {3, 14},
		{6, 2}, {6, 6}, {6, 8}, {6, 12}, {7, 3}, {7, 11},
		{8, 2}, {8, 6}, {8, 8}, {8, 12}, {11, 0}, {11, 7}, {11, 14},
		{12, 6}, {12, 8}, {14, 3}, {14, 11},
	}
)

// Board is the single shared grid for a game
type Board struct {
	GameID GameID   `json:"game_id"`
	Size   int      `json:"size"`
	Cells  [][]Cell `json:"cells"` // row-major
}

// NewBoard creates an empty board with the static premium layout applied
func NewBoard(gameID GameID) *Board {
	cells := make([][]Cell, BoardSize)
	for i := range cells {
		cells[i] = make([]Cell, BoardSize)
	}

	b := &Board{
		GameID: gameID,
		Size:   BoardSize,
		Cells:  cells,
	}

	for _, pos := range tripleWordSquares {
		b.Cells[pos.Row][pos.Col].Premium = PremiumTripleWord
	}
	for _, pos := range doubleWordSquares {
		b.Cells[pos.Row][pos.Col].Premium = PremiumDoubleWord
	}
	for _, pos := range tripleLetterSquares {
		b.Cells[pos.Row][pos.Col].Premium = PremiumTripleLetter
	}
	for _, pos := range doubleLetterSquares {
		b.Cells[pos.Row][pos.Col].Premium = PremiumDoubleLetter
	}
	b.Cells[Center.Row][Center.Col].Premium = PremiumCenter

	return b
}

// IsValidPosition reports whether the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// CellAt returns the cell at the given position, or a zero cell when out of bounds
func (b *Board) CellAt(pos Position) Cell {
	if !b.IsValidPosition(pos) {
		return Cell{}
	}
	return b.Cells[pos.Row][pos.Col]
}

// Fits reports whether a word of the given length placed at pos along
// dir stays entirely within the grid
func (b *Board) Fits(pos Position, dir Direction, length int) bool {
	if !b.IsValidPosition(pos) {
		return false
	}
	dr, dc := dir.Offset()
	end := Position{
		Row: pos.Row + dr*(length-1),
		Col: pos.Col + dc*(length-1),
	}
	return b.IsValidPosition(end)
}

// TouchesExisting reports whether any cell the word would occupy is
// already occupied
func (b *Board) TouchesExisting(pos Position, dir Direction, length int) bool {
	dr, dc := dir.Offset()
	for i := 0; i < length; i++ {
		p := Position{Row: pos.Row + dr*i, Col: pos.Col + dc*i}
		if b.CellAt(p).IsOccupied() {
			return true
		}
	}
	return false
}

// NeededLetters returns the letters of the word that must come from the
// player's rack: those landing on cells that are currently empty.
// Letters landing on occupied cells reuse the board's tile.
func (b *Board) NeededLetters(word string, pos Position, dir Direction) []rune {
	dr, dc := dir.Offset()
	var needed []rune
	for i, letter := range []rune(word) {
		p := Position{Row: pos.Row + dr*i, Col: pos.Col + dc*i}
		if !b.CellAt(p).IsOccupied() {
			needed = append(needed, letter)
		}
	}
	return needed
}

// ApplyPlacement writes the word onto the board and returns the bonus
// triggers it consumed, in cell order. A premium fires only while the
// cell still carries its original unconsumed kind; the center marker
// and plain cells never trigger. Legality is the validator's job;
// the board trusts its caller.
func (b *Board) ApplyPlacement(word string, pos Position, dir Direction) []BonusTrigger {
	dr, dc := dir.Offset()
	var triggers []BonusTrigger

	for i, letter := range []rune(word) {
		cell := &b.Cells[pos.Row+dr*i][pos.Col+dc*i]
		if cell.Premium.Multiplies() && !cell.Used {
			triggers = append(triggers, BonusTrigger{Letter: letter, Premium: cell.Premium})
			cell.Used = true
		}
		cell.Letter = letter
	}

	return triggers
}
