package placement

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/lexicon"
	"github.com/mcoot/scrabble-go/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	lexicon *lexicon.Service
	service *Service
	board   *model.Board
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	storage := memory.New()
	s.lexicon = lexicon.New(storage)
	s.Require().NoError(s.lexicon.LoadWords([]string{"cat", "at", "to", "dog"}))
	s.service = New(s.lexicon)
	s.board = model.NewBoard("game-1")
}

func rack(letters string) []model.Tile {
	out := make([]model.Tile, 0, len(letters))
	for _, l := range letters {
		out = append(out, model.NewTile(l))
	}
	return out
}

func place(word string, row, col int, dir model.Direction) model.Placement {
	return model.Placement{
		Word: word,
		Pos:  model.Position{Row: row, Col: col},
		Dir:  dir,
	}
}

func (s *ServiceSuite) TestValidOpeningPlacement() {
	p := place("CAT", 7, 7, model.DirectionRight)

	err := s.service.Validate(s.board, rack("CATXYZW"), p, 1, true)
	s.NoError(err)
}

func (s *ServiceSuite) TestInvalidDirection() {
	p := place("CAT", 7, 7, "diagonal")

	err := s.service.Validate(s.board, rack("CATXYZW"), p, 1, true)
	s.ErrorIs(err, model.ErrInvalidDirection)
}

func (s *ServiceSuite) TestUnknownWord() {
	p := place("ZZQ", 7, 7, model.DirectionRight)

	err := s.service.Validate(s.board, rack("ZZQXYZW"), p, 1, true)
	s.ErrorIs(err, model.ErrNotAWord)
}

func (s *ServiceSuite) TestEmptyWord() {
	p := place("", 7, 7, model.DirectionRight)

	err := s.service.Validate(s.board, rack("CATXYZW"), p, 1, true)
	s.ErrorIs(err, model.ErrNotAWord)
}

func (s *ServiceSuite) TestOutOfBoundsRight() {
	p := place("CAT", 7, 13, model.DirectionRight)

	err := s.service.Validate(s.board, rack("CATXYZW"), p, 1, true)
	s.ErrorIs(err, model.ErrOutOfBounds)
}

func (s *ServiceSuite) TestOutOfBoundsStart() {
	p := place("CAT", -1, 7, model.DirectionDown)

	err := s.service.Validate(s.board, rack("CATXYZW"), p, 1, true)
	s.ErrorIs(err, model.ErrOutOfBounds)
}

func (s *ServiceSuite) TestOpeningMustStartAtCenter() {
	p := place("CAT", 0, 0, model.DirectionRight)

	err := s.service.Validate(s.board, rack("CATXYZW"), p, 1, true)
	s.ErrorIs(err, model.ErrMustStartAtCenter)
}

func (s *ServiceSuite) TestLaterPlayersOpenAnywhereInRoundOne() {
	p := place("CAT", 0, 0, model.DirectionRight)

	err := s.service.Validate(s.board, rack("CATXYZW"), p, 1, false)
	s.NoError(err)
}

func (s *ServiceSuite) TestDisconnectedAfterRoundOne() {
	s.board.ApplyPlacement("CAT", model.Center, model.DirectionRight)

	p := place("DOG", 0, 0, model.DirectionRight)

	err := s.service.Validate(s.board, rack("DOGXYZW"), p, 2, true)
	s.ErrorIs(err, model.ErrDisconnected)
}

func (s *ServiceSuite) TestOverlapSatisfiesConnectivity() {
	s.board.ApplyPlacement("CAT", model.Center, model.DirectionRight)

	// AT runs down through the T of CAT
	p := place("AT", 6, 9, model.DirectionDown)

	err := s.service.Validate(s.board, rack("AXXXXXX"), p, 2, false)
	s.NoError(err)
}

func (s *ServiceSuite) TestMissingTiles() {
	p := place("CAT", 7, 7, model.DirectionRight)

	err := s.service.Validate(s.board, rack("CAXXYZW"), p, 1, true)
	s.ErrorIs(err, model.ErrMissingTiles)
}

func (s *ServiceSuite) TestDuplicateLettersNeedDuplicateTiles() {
	s.Require().NoError(s.lexicon.LoadWords([]string{"toot"}))

	p := place("TOOT", 7, 7, model.DirectionRight)

	// One O is not enough for TOOT
	err := s.service.Validate(s.board, rack("TOTXYZW"), p, 1, true)
	s.ErrorIs(err, model.ErrMissingTiles)

	err = s.service.Validate(s.board, rack("TOOTXYZ"), p, 1, true)
	s.NoError(err)
}

func (s *ServiceSuite) TestBoardLettersDoNotNeedRackTiles() {
	s.board.ApplyPlacement("CAT", model.Center, model.DirectionRight)

	// The T comes from the board, so the rack only needs the A
	p := place("AT", 6, 9, model.DirectionDown)

	err := s.service.Validate(s.board, rack("AXXXXXX"), p, 2, false)
	s.NoError(err)
}

func (s *ServiceSuite) TestValidationLeavesBoardUntouched() {
	p := place("CAT", 7, 7, model.DirectionRight)

	err := s.service.Validate(s.board, rack("CATXYZW"), p, 1, true)
	s.Require().NoError(err)

	s.False(s.board.CellAt(model.Center).IsOccupied())
}
