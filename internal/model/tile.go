package model

// RackSize is the number of tiles a player holds when fully replenished
const RackSize = 7

// RefillThreshold is the supply size below which the pool is rebuilt
// before satisfying a draw (soft-infinite mode only)
const RefillThreshold = 10

// letterValues maps each letter to its point value.
// Letters outside the table score 0.
var letterValues = map[rune]int{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4, 'I': 1,
	'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3, 'Q': 10, 'R': 1,
	'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4, 'Z': 10,
}

// letterCounts is the tile distribution used to populate the supply.
// Uses the standard J/K quantities (J:1, K:5).
var letterCounts = map[rune]int{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3, 'H': 2, 'I': 9,
	'J': 1, 'K': 5, 'L': 1, 'M': 2, 'N': 6, 'O': 8, 'P': 2, 'Q': 1, 'R': 6,
	'S': 4, 'T': 6, 'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2, 'Z': 1,
}

// LetterValue returns the point value of a letter, or 0 for unknown letters
func LetterValue(letter rune) int {
	return letterValues[letter]
}

// LetterCount returns how many tiles of a letter the full distribution holds
func LetterCount(letter rune) int {
	return letterCounts[letter]
}

// TotalTiles returns the size of the full tile distribution
func TotalTiles() int {
	total := 0
	for _, count := range letterCounts {
		total += count
	}
	return total
}

// Tile is a single letter tile. Its value is fixed at creation and
// never changes while it moves between supply, rack and board.
type Tile struct {
	Letter rune `json:"letter"`
	Value  int  `json:"value"`
}

// NewTile creates a tile for the given letter with its table value
func NewTile(letter rune) Tile {
	return Tile{
		Letter: letter,
		Value:  letterValues[letter],
	}
}

// FullDistribution returns a fresh unshuffled supply containing the
// complete tile distribution, ordered A through Z
func FullDistribution() []Tile {
	tiles := make([]Tile, 0, TotalTiles())
	for letter := 'A'; letter <= 'Z'; letter++ {
		for i := 0; i < letterCounts[letter]; i++ {
			tiles = append(tiles, NewTile(letter))
		}
	}
	return tiles
}

// RackLetters returns the letters of a rack in order
func RackLetters(rack []Tile) []rune {
	letters := make([]rune, len(rack))
	for i, t := range rack {
		letters[i] = t.Letter
	}
	return letters
}

// RackHasLetters reports whether the rack can supply the given letters
// as a multiset (duplicates need duplicate tiles)
func RackHasLetters(rack []Tile, letters []rune) bool {
	available := make(map[rune]int, len(rack))
	for _, t := range rack {
		available[t.Letter]++
	}
	for _, letter := range letters {
		if available[letter] == 0 {
			return false
		}
		available[letter]--
	}
	return true
}
