package handler

import (
	"net/http"

	"github.com/mcoot/scrabble-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest      = apierr.CodeInvalidRequest
	CodeInvalidDirection    = apierr.CodeInvalidDirection
	CodeNotAWord            = apierr.CodeNotAWord
	CodeOutOfBounds         = apierr.CodeOutOfBounds
	CodeDisconnected        = apierr.CodeDisconnected
	CodeMustStartAtCenter   = apierr.CodeMustStartAtCenter
	CodeMissingTiles        = apierr.CodeMissingTiles
	CodeUnauthorized        = apierr.CodeUnauthorized
	CodeNotHost             = apierr.CodeNotHost
	CodeNotYourTurn         = apierr.CodeNotYourTurn
	CodePlayerNotFound      = apierr.CodePlayerNotFound
	CodeLobbyNotFound       = apierr.CodeLobbyNotFound
	CodeGameNotFound        = apierr.CodeGameNotFound
	CodeAlreadyInLobby      = apierr.CodeAlreadyInLobby
	CodeNotInLobby          = apierr.CodeNotInLobby
	CodeGameInProgress      = apierr.CodeGameInProgress
	CodeNoGameInProgress    = apierr.CodeNoGameInProgress
	CodeGameOver            = apierr.CodeGameOver
	CodeGameAbandoned       = apierr.CodeGameAbandoned
	CodeInsufficientPlayers = apierr.CodeInsufficientPlayers
	CodeTooManyPlayers      = apierr.CodeTooManyPlayers
	CodeUsernameExists      = apierr.CodeUsernameExists
	CodeInvalidCredentials  = apierr.CodeInvalidCredentials
	CodeInternalError       = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
