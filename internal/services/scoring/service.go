package scoring

import (
	"github.com/mcoot/scrabble-go/internal/model"
)

// Service computes the point value of an applied placement. Scoring
// has no failure mode: it assumes the placement already passed
// validation and was written to the board.
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// ScorePlacement returns the score for a word given the bonus triggers
// its board application consumed. Each letter contributes its table
// value; a triple-letter trigger adds twice the triggered letter's
// value on top (net tripled) and a double-letter trigger adds it once
// more (net doubled). Word multipliers then apply to the running total
// sequentially in trigger-discovery order, which matters when a single
// placement consumes both a double- and a triple-word square.
func (s *Service) ScorePlacement(word string, triggers []model.BonusTrigger) int {
	score := 0
	for _, letter := range word {
		score += model.LetterValue(letter)
	}

	for _, trigger := range triggers {
		switch trigger.Premium {
		case model.PremiumTripleLetter:
			score += 2 * model.LetterValue(trigger.Letter)
		case model.PremiumDoubleLetter:
			score += model.LetterValue(trigger.Letter)
		}
	}

	for _, trigger := range triggers {
		switch trigger.Premium {
		case model.PremiumTripleWord:
			score *= 3
		case model.PremiumDoubleWord:
			score *= 2
		}
	}

	return score
}

// Interface for dependency injection
type ServiceInterface interface {
	ScorePlacement(word string, triggers []model.BonusTrigger) int
}

var _ ServiceInterface = (*Service)(nil)
