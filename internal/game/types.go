// internal/game/types.go
//
// Core type definitions shared by every game variant.
// Defines:
//   - Reply: one outbound text addressed to a session.
//   - Game: the capability set a variant exposes to the session registry.
//   - Factory: how the registry obtains a fresh instance for a session.
//
// Variants (hangman, rps) keep their pure state machines in their own
// packages and adapt them to Game with a thin session-aware wrapper. The
// wrapper owns any I/O (word fetch, persistence); the state machine never does.

package game

import "context"

// Reply is one rendered board (or notice) to deliver to a session.
type Reply struct {
	SessionID string // Recipient session.
	Text      string // Rendered text, newline terminated.
	End       bool   // True if the transport should close the session after delivery.
}

// Game is one live game instance as seen by the session registry.
// Implementations must be safe for concurrent use; the registry does not
// serialize calls on a single instance.
type Game interface {
	// ID returns a stable identifier used for logging.
	ID() string

	// Join binds sessionID to the game and returns the replies it triggers.
	// The session passed to the Factory that built the game is joined first.
	Join(ctx context.Context, sessionID string) ([]Reply, error)

	// Event feeds one raw input from a bound session.
	// Returned replies may be empty when the game is waiting on another player.
	Event(ctx context.Context, sessionID, input string) ([]Reply, error)

	// Leave unbinds sessionID. Replies address any remaining participants.
	Leave(ctx context.Context, sessionID string) ([]Reply, error)

	// Players returns the sessions currently bound to the game.
	Players() []string

	// Full reports whether the game accepts no further participants.
	Full() bool

	// Done reports whether the game has terminated.
	Done() bool
}

// Factory builds a game for the session that opens it.
// It may block on I/O and must honour ctx.
type Factory func(ctx context.Context, sessionID string) (Game, error)
