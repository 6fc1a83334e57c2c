package placement

import (
	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/lexicon"
)

// Service validates candidate placements. It is stateless and never
// mutates the board or rack, so a failed attempt can be retried with
// no cleanup.
type Service struct {
	lexicon *lexicon.Service
}

// New creates a new placement Service
func New(lexicon *lexicon.Service) *Service {
	return &Service{
		lexicon: lexicon,
	}
}

// Validate checks a placement against the game rules and returns nil
// when it is legal. Checks run in a fixed order and the first failure
// wins, so the error a player sees for a given board state is
// deterministic:
//
//  1. direction must be right or down
//  2. the word must be non-empty and present in the lexicon
//  3. the word must fit entirely on the grid
//  4. after round 1 it must overlap at least one occupied cell
//  5. the opening player's round-1 word must start at the center
//  6. the rack must supply every letter landing on an empty cell
func (s *Service) Validate(
	board *model.Board,
	rack []model.Tile,
	p model.Placement,
	round int,
	firstInOrder bool,
) error {
	if !p.Dir.IsValid() {
		return model.ErrInvalidDirection
	}

	if p.Word == "" || !s.lexicon.IsWord(p.Word) {
		return model.ErrNotAWord
	}

	length := len([]rune(p.Word))
	if !board.Fits(p.Pos, p.Dir, length) {
		return model.ErrOutOfBounds
	}

	// The opening placement is exempt by definition: the board is empty
	if round > 1 && !board.TouchesExisting(p.Pos, p.Dir, length) {
		return model.ErrDisconnected
	}

	if round == 1 && firstInOrder && p.Pos != model.Center {
		return model.ErrMustStartAtCenter
	}

	needed := board.NeededLetters(p.Word, p.Pos, p.Dir)
	if !model.RackHasLetters(rack, needed) {
		return model.ErrMissingTiles
	}

	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Validate(board *model.Board, rack []model.Tile, p model.Placement, round int, firstInOrder bool) error
}

var _ ServiceInterface = (*Service)(nil)
