package tiles

import (
	"github.com/mcoot/scrabble-go/internal/dependencies/random"
	"github.com/mcoot/scrabble-go/internal/model"
)

// Service provides tile supply and rack operations over a game's state.
// It owns no state itself; the supply and racks live on model.Game and
// the injected randomness drives every shuffle.
type Service struct {
	random random.Random
}

// New creates a new tiles Service
func New(random random.Random) *Service {
	return &Service{
		random: random,
	}
}

// NewSupply returns a freshly shuffled full tile distribution
func (s *Service) NewSupply() []model.Tile {
	supply := model.FullDistribution()
	s.shuffleTiles(supply)
	return supply
}

func (s *Service) shuffleTiles(tiles []model.Tile) {
	s.random.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
}

// Draw removes and returns one tile from the game's supply. In the
// default soft-infinite mode the pool is rebuilt to the full
// distribution and reshuffled before the draw once it dips below the
// refill threshold, so the draw never fails. With a finite bag the
// pool is never rebuilt and an empty pool returns ErrSupplyEmpty.
func (s *Service) Draw(game *model.Game) (model.Tile, error) {
	if !game.FiniteBag && len(game.Supply) < model.RefillThreshold {
		game.Supply = s.NewSupply()
	}
	if len(game.Supply) == 0 {
		return model.Tile{}, model.ErrSupplyEmpty
	}

	last := len(game.Supply) - 1
	tile := game.Supply[last]
	game.Supply = game.Supply[:last]
	return tile, nil
}

// ReplenishRack draws until the rack holds RackSize tiles or the
// supply runs out
func (s *Service) ReplenishRack(game *model.Game, playerID model.PlayerID) {
	for len(game.Racks[playerID]) < model.RackSize && game.SupplyRemaining() > 0 {
		tile, err := s.Draw(game)
		if err != nil {
			return
		}
		game.Racks[playerID] = append(game.Racks[playerID], tile)
	}
}

// RemoveFromRack removes one tile with the given letter from the rack.
// A missing tile is an error, never a silent no-op.
func (s *Service) RemoveFromRack(game *model.Game, playerID model.PlayerID, letter rune) error {
	rack := game.Racks[playerID]
	for i, t := range rack {
		if t.Letter == letter {
			// Keep order so the player sees a stable rack
			game.Racks[playerID] = append(rack[:i], rack[i+1:]...)
			return nil
		}
	}
	return model.ErrTileNotFound
}

// RemoveLetters removes one tile per letter from the rack
func (s *Service) RemoveLetters(game *model.Game, playerID model.PlayerID, letters []rune) error {
	for _, letter := range letters {
		if err := s.RemoveFromRack(game, playerID, letter); err != nil {
			return err
		}
	}
	return nil
}

// ShuffleRack reorders the rack in place; contents are untouched
func (s *Service) ShuffleRack(game *model.Game, playerID model.PlayerID) {
	rack := game.Racks[playerID]
	s.random.Shuffle(len(rack), func(i, j int) {
		rack[i], rack[j] = rack[j], rack[i]
	})
}

// RenewRack discards the whole rack and refills it from the supply.
// Callers must not invoke this mid-placement.
func (s *Service) RenewRack(game *model.Game, playerID model.PlayerID) {
	game.Racks[playerID] = game.Racks[playerID][:0]
	s.ReplenishRack(game, playerID)
}

// Interface for dependency injection
type ServiceInterface interface {
	NewSupply() []model.Tile
	Draw(game *model.Game) (model.Tile, error)
	ReplenishRack(game *model.Game, playerID model.PlayerID)
	RemoveFromRack(game *model.Game, playerID model.PlayerID, letter rune) error
	RemoveLetters(game *model.Game, playerID model.PlayerID, letters []rune) error
	ShuffleRack(game *model.Game, playerID model.PlayerID)
	RenewRack(game *model.Game, playerID model.PlayerID)
}

var _ ServiceInterface = (*Service)(nil)
