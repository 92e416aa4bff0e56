package game

import "errors"

// Invalid player input (garbage guesses or moves) is handled inside each
// variant by updating the board message and is never returned as an error.
var (
	ErrInvalidPlayer         = errors.New("invalid player")
	ErrInvalidState          = errors.New("invalid state")
	ErrSessionNotFound       = errors.New("session not found")
	ErrWordSourceUnavailable = errors.New("word source unavailable")
)
