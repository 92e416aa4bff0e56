// internal/hangman/types.go
//
// Type definitions for the hangman variant.
// Defines:
//   - Game: pure puzzle state.
//   - WordSource / StateStore: the collaborators a Session needs.

package hangman

import "context"

// Game holds the state of one hangman puzzle.
type Game struct {
	Word    string            // The answer (lowercase a–z, immutable).
	Guesses map[rune]struct{} // Letters attempted so far.
	Msg     string            // Feedback shown on the first board line.
	Exited  bool              // True once the player quit.
}

// WordSource supplies answers for new games.
type WordSource interface {
	Word(ctx context.Context) (string, error)
}

// StateStore persists serialized game state per session.
// Load reports ok=false when nothing is stored for the session.
type StateStore interface {
	Load(ctx context.Context, sessionID string) (state string, ok bool, err error)
	Save(ctx context.Context, sessionID, state string) error
	Delete(ctx context.Context, sessionID string) error
}
