// internal/rps/match.go
//
// Match adapts a rock-paper-scissors Game to the registry's game.Game
// interface for two paired sessions.
//
// Reply policy:
//   - Joining: the joining session gets its board.
//   - First move of a round: no replies (the round is still open).
//   - Resolution: both players get a board with the round result.
//   - Match point: both players get a final board and their sessions end.
//   - Unparseable move: only the mover gets a board asking again.
//   - A player leaving: the opponent is told and their session ends.

package rps

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/textgames/internal/game"
)

const (
	msgNewGame      = "New game! Waiting for your move."
	msgInvalidMove  = "Invalid move. Choose 1, 2 or 3."
	msgRoundWon     = "You won that round!"
	msgRoundLost    = "You lost that round."
	msgRoundDraw    = "Draw!"
	msgMatchWon     = "You won the game!"
	msgMatchLost    = "You lost the game."
	msgOpponentLeft = "Your opponent has left."
)

// DefaultMaxScore is the round count that wins a match when none is configured.
const DefaultMaxScore = 5

// Match is a paired game shared by up to two sessions.
type Match struct {
	id string

	mu   sync.Mutex // guards game and done
	game *Game
	done bool
}

// NewFactory returns a game.Factory opening matches that end at maxScore.
func NewFactory(maxScore int) game.Factory {
	if maxScore <= 0 {
		maxScore = DefaultMaxScore
	}
	return func(ctx context.Context, sessionID string) (game.Game, error) {
		m := &Match{id: uuid.NewString(), game: New(maxScore, sessionID)}
		log.Debug().Str("session", sessionID).Str("game", m.id).Msg("rps match opened")
		return m, nil
	}
}

// ID implements game.Game.
func (m *Match) ID() string { return m.id }

// Join implements game.Game. The opening session is already Player1;
// any other session is bound as Player2.
func (m *Match) Join(ctx context.Context, sessionID string) ([]game.Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done {
		return nil, fmt.Errorf("%w: match %s already ended", game.ErrInvalidState, m.id)
	}
	if sessionID != m.game.Player1 {
		if err := m.game.SetPlayer2(sessionID); err != nil {
			return nil, err
		}
		log.Debug().Str("session", sessionID).Str("game", m.id).Msg("rps match paired")
	}
	return []game.Reply{{SessionID: sessionID, Text: m.game.Render(sessionID, msgNewGame)}}, nil
}

// Event implements game.Game.
func (m *Match) Event(ctx context.Context, sessionID, input string) ([]game.Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.game.IsPlayer(sessionID) {
		return nil, fmt.Errorf("%w: %q", game.ErrInvalidPlayer, sessionID)
	}
	if m.done {
		return nil, fmt.Errorf("%w: match %s already ended", game.ErrInvalidState, m.id)
	}

	mv, ok := ParseMove(input)
	if !ok {
		return []game.Reply{{SessionID: sessionID, Text: m.game.Render(sessionID, msgInvalidMove)}}, nil
	}
	outcome, err := m.game.Move(sessionID, mv)
	if err != nil {
		return nil, err
	}
	if outcome == Pending {
		return nil, nil
	}

	if winner := m.game.Winner(); winner != "" {
		m.done = true
		log.Debug().Str("game", m.id).Str("winner", winner).Msg("rps match finished")
		return m.final(winner), nil
	}

	p1Msg, p2Msg := msgRoundDraw, msgRoundDraw
	switch outcome {
	case Player1Wins:
		p1Msg, p2Msg = msgRoundWon, msgRoundLost
	case Player2Wins:
		p1Msg, p2Msg = msgRoundLost, msgRoundWon
	}
	return []game.Reply{
		{SessionID: m.game.Player1, Text: m.game.Render(m.game.Player1, p1Msg)},
		{SessionID: m.game.Player2, Text: m.game.Render(m.game.Player2, p2Msg)},
	}, nil
}

// final builds the closing replies once winner reached the max score.
func (m *Match) final(winner string) []game.Reply {
	out := make([]game.Reply, 0, 2)
	for _, p := range []string{m.game.Player1, m.game.Player2} {
		msg := msgMatchLost
		if p == winner {
			msg = msgMatchWon
		}
		out = append(out, game.Reply{SessionID: p, Text: m.game.RenderFinal(p, msg), End: true})
	}
	return out
}

// Leave implements game.Game. The match is abandoned and a bound opponent is told.
func (m *Match) Leave(ctx context.Context, sessionID string) ([]game.Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.game.IsPlayer(sessionID) {
		return nil, fmt.Errorf("%w: %q", game.ErrInvalidPlayer, sessionID)
	}
	if m.done {
		return nil, nil
	}
	m.done = true
	opp := m.game.Opponent(sessionID)
	if opp == "" {
		return nil, nil
	}
	return []game.Reply{{SessionID: opp, Text: m.game.RenderFinal(opp, msgOpponentLeft), End: true}}, nil
}

// Players implements game.Game.
func (m *Match) Players() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.game.Player2 == "" {
		return []string{m.game.Player1}
	}
	return []string{m.game.Player1, m.game.Player2}
}

// Full implements game.Game.
func (m *Match) Full() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.game.Player2 != ""
}

// Done implements game.Game.
func (m *Match) Done() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done
}

// Snapshot returns a copy of the underlying game state.
func (m *Match) Snapshot() Game {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.game
}
