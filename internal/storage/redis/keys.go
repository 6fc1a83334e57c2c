package redis

import (
	"fmt"

	"github.com/mcoot/scrabble-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "scrabble"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// registeredPlayerKey returns the Redis key for a RegisteredPlayer
func registeredPlayerKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:registered_player:%s", keyPrefix, playerID)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// lobbyKey returns the Redis key for a Lobby
func lobbyKey(code model.LobbyCode) string {
	return fmt.Sprintf("%s:lobby:%s", keyPrefix, code)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// boardKey returns the Redis key for a game's shared Board
func boardKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:board:%s", keyPrefix, gameID)
}

// lexiconKey returns the Redis key for the lexicon word set
func lexiconKey() string {
	return fmt.Sprintf("%s:lexicon", keyPrefix)
}
