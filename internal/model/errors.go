package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Lobby errors
	ErrLobbyNotFound       = errors.New("lobby not found")
	ErrAlreadyInLobby      = errors.New("player is already in lobby")
	ErrNotInLobby          = errors.New("player is not in lobby")
	ErrNotHost             = errors.New("player is not the host")
	ErrGameInProgress      = errors.New("game is in progress")
	ErrNoGameInProgress    = errors.New("no game in progress")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrTooManyPlayers      = errors.New("too many players to start game")

	// Game errors
	ErrGameNotFound  = errors.New("game not found")
	ErrNotPlayerTurn = errors.New("not this player's turn")
	ErrGameOver      = errors.New("game is already over")
	ErrGameAbandoned = errors.New("game has been abandoned")

	// Placement validation errors, surfaced to the acting player who
	// simply retries; none mutate state
	ErrInvalidDirection  = errors.New("direction must be right or down")
	ErrNotAWord          = errors.New("word not found in lexicon")
	ErrOutOfBounds       = errors.New("word placement is out of bounds")
	ErrDisconnected      = errors.New("word must connect to an existing letter")
	ErrMustStartAtCenter = errors.New("first word must begin at the center cell")
	ErrMissingTiles      = errors.New("rack cannot supply the needed tiles")

	// Tile errors. ErrTileNotFound from validated input is an
	// invariant violation: validation guarantees rack sufficiency.
	ErrTileNotFound = errors.New("tile not in rack")
	ErrSupplyEmpty  = errors.New("tile supply is empty")

	// Board errors
	ErrBoardNotFound = errors.New("board not found")

	// Lexicon errors
	ErrLexiconNotLoaded = errors.New("lexicon not loaded")
)
