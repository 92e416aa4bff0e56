// internal/rps/types.go
//
// Type definitions for the rock-paper-scissors variant.
// Defines:
//   - Move: one of the three choices, encoded 1/2/3.
//   - Outcome: result of a Move call.
//   - Game: best-of-N round tracker for two players.

package rps

// Move is a player's choice for one round. None marks "no pending move".
//
// The encoding is cyclic: each move beats the one numbered directly after
// it (Rock 1 > Scissors 2 > Paper 3 > Rock 1).
type Move int

const (
	None Move = iota
	Rock
	Scissors
	Paper
)

// Outcome reports what a Move call did to the round.
type Outcome int

const (
	Pending     Outcome = iota // First move of the round recorded; awaiting the opponent.
	Draw                       // Both players chose the same move.
	Player1Wins                // Player1 took the round.
	Player2Wins                // Player2 took the round.
)

// Game holds the state of one best-of-N match.
type Game struct {
	MaxScore    int    // Score that wins the match (advisory; enforced by Match).
	Player1     string // Session that opened the game.
	Player2     string // Joining session; empty until bound.
	Scores      [2]int // Round wins for Player1 and Player2.
	CurrentMove Move   // Pending move of whoever moved first this round, or None.

	mover string // Player that made CurrentMove.
}
