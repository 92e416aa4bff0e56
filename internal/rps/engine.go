// internal/rps/engine.go
//
// Core state machine for a rock-paper-scissors match.
// Responsibilities:
//   - Bind the second player exactly once.
//   - Record the first move of a round, resolve on the opponent's move.
//   - Score rounds using the standard precedence; ties score nothing.
//
// Notes:
//   - CurrentMove is cleared after every resolution regardless of outcome.
//   - A player moving twice in one round replaces their pending move.
//   - Player1 may move before Player2 has joined; the round then resolves
//     on Player2's first move.
package rps

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/textgames/internal/game"
)

// ErrBadMove is returned by Game.Move for values outside Rock..Paper.
var ErrBadMove = errors.New("rps: move must be rock, scissors or paper")

// New constructs a match opened by player1.
func New(maxScore int, player1 string) *Game {
	return &Game{MaxScore: maxScore, Player1: player1}
}

// ParseMove maps raw input ("1", "rock", "R", ...) to a Move.
func ParseMove(input string) (Move, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "r", "rock":
		return Rock, true
	case "2", "s", "scissors":
		return Scissors, true
	case "3", "p", "paper":
		return Paper, true
	}
	return None, false
}

// String returns the display name of m.
func (m Move) String() string {
	switch m {
	case Rock:
		return "Rock"
	case Scissors:
		return "Scissors"
	case Paper:
		return "Paper"
	}
	return "None"
}

// Beats reports whether m wins against other.
func (m Move) Beats(other Move) bool {
	return (int(m)-int(other)+3)%3 == 2
}

func (m Move) valid() bool { return m >= Rock && m <= Paper }

// SetPlayer2 binds the joining player.
func (g *Game) SetPlayer2(id string) error {
	if g.Player2 != "" {
		return fmt.Errorf("%w: player 2 already bound to %s", game.ErrInvalidState, g.Player2)
	}
	if id == "" || id == g.Player1 {
		return fmt.Errorf("%w: %q", game.ErrInvalidPlayer, id)
	}
	g.Player2 = id
	return nil
}

// Move applies one player's choice.
func (g *Game) Move(playerID string, m Move) (Outcome, error) {
	if !g.IsPlayer(playerID) {
		return Pending, fmt.Errorf("%w: %q", game.ErrInvalidPlayer, playerID)
	}
	if !m.valid() {
		return Pending, fmt.Errorf("%w: %d", ErrBadMove, m)
	}
	if g.CurrentMove == None || g.mover == playerID {
		g.CurrentMove, g.mover = m, playerID
		return Pending, nil
	}

	p1, p2 := g.CurrentMove, m
	if g.mover == g.Player2 {
		p1, p2 = m, g.CurrentMove
	}
	g.CurrentMove, g.mover = None, ""

	switch {
	case p1 == p2:
		return Draw, nil
	case p1.Beats(p2):
		g.Scores[0]++
		return Player1Wins, nil
	default:
		g.Scores[1]++
		return Player2Wins, nil
	}
}

// IsPlayer reports whether id is bound to this game.
func (g *Game) IsPlayer(id string) bool {
	return id != "" && (id == g.Player1 || id == g.Player2)
}

// Opponent returns the other player's id, or "" if unbound.
func (g *Game) Opponent(id string) string {
	switch id {
	case g.Player1:
		return g.Player2
	case g.Player2:
		return g.Player1
	}
	return ""
}

// Score returns (own, opponent) round wins from id's perspective.
func (g *Game) Score(id string) (int, int) {
	if id == g.Player2 {
		return g.Scores[1], g.Scores[0]
	}
	return g.Scores[0], g.Scores[1]
}

// Winner returns the player who reached MaxScore, or "".
func (g *Game) Winner() string {
	if g.MaxScore <= 0 {
		return ""
	}
	switch {
	case g.Scores[0] >= g.MaxScore:
		return g.Player1
	case g.Scores[1] >= g.MaxScore:
		return g.Player2
	}
	return ""
}

// Render draws the board for one player.
func (g *Game) Render(playerID, msg string) string {
	own, opp := g.Score(playerID)
	return fmt.Sprintf("%s\nYou: %d, Opponent: %d\n1. %s\n2. %s\n3. %s\n",
		msg, own, opp, Rock, Scissors, Paper)
}

// RenderFinal draws the closing board for one player.
func (g *Game) RenderFinal(playerID, msg string) string {
	own, opp := g.Score(playerID)
	return fmt.Sprintf("%s\nYou: %d, Opponent: %d\n", msg, own, opp)
}
