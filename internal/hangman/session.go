// internal/hangman/session.go
//
// Session adapts a hangman Game to the registry's game.Game interface.
// Responsibilities:
//   - Restore a stored game for a returning session, or fetch a word and start fresh.
//   - Persist the state string after every event (best effort, logged on failure).
//   - Delete stored state once the player quits.
//   - Start a new puzzle when a won game receives any input.
//   - Fold case and trim surrounding whitespace before handing input to the puzzle.
//
// All I/O happens here, outside the pure state machine in engine.go.

package hangman

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/textgames/internal/game"
)

// Session is a single-player hangman game bound to one session id.
type Session struct {
	id     string
	player string
	words  WordSource
	states StateStore

	mu   sync.Mutex // guards game and left
	game *Game
	left bool
}

// NewFactory returns a game.Factory that builds hangman sessions.
// A stored state for the session is resumed; otherwise a word is fetched.
func NewFactory(words WordSource, states StateStore) game.Factory {
	return func(ctx context.Context, sessionID string) (game.Game, error) {
		s := &Session{
			id:     uuid.NewString(),
			player: sessionID,
			words:  words,
			states: states,
		}
		g, err := s.restore(ctx)
		if err != nil {
			return nil, err
		}
		if g == nil {
			if g, err = s.fresh(ctx); err != nil {
				return nil, err
			}
			s.save(ctx, g)
		}
		s.game = g
		log.Debug().Str("session", sessionID).Str("game", s.id).Msg("hangman session opened")
		return s, nil
	}
}

// restore loads a stored game. A nil game with nil error means nothing usable was stored.
func (s *Session) restore(ctx context.Context) (*Game, error) {
	state, ok, err := s.states.Load(ctx, s.player)
	if err != nil {
		return nil, fmt.Errorf("load state for %s: %w", s.player, err)
	}
	if !ok {
		return nil, nil
	}
	g, err := FromState(state)
	if err != nil {
		log.Warn().Err(err).Str("session", s.player).Msg("discarding stored hangman state")
		return nil, nil
	}
	return g, nil
}

// fresh fetches a word and builds a new game.
func (s *Session) fresh(ctx context.Context) (*Game, error) {
	word, err := s.words.Word(ctx)
	if err != nil {
		if errors.Is(err, game.ErrWordSourceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", game.ErrWordSourceUnavailable, err)
	}
	g, err := New(word)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", game.ErrWordSourceUnavailable, err)
	}
	return g, nil
}

func (s *Session) save(ctx context.Context, g *Game) {
	if err := s.states.Save(ctx, s.player, g.State()); err != nil {
		log.Warn().Err(err).Str("session", s.player).Str("game", s.id).Msg("save hangman state")
	}
}

// ID implements game.Game.
func (s *Session) ID() string { return s.id }

// Join implements game.Game. Only the owning session may join.
func (s *Session) Join(ctx context.Context, sessionID string) ([]game.Reply, error) {
	if sessionID != s.player {
		return nil, fmt.Errorf("%w: %s", game.ErrInvalidPlayer, sessionID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return []game.Reply{{SessionID: s.player, Text: s.game.Render()}}, nil
}

// Event implements game.Game.
func (s *Session) Event(ctx context.Context, sessionID, input string) ([]game.Reply, error) {
	if sessionID != s.player {
		return nil, fmt.Errorf("%w: %s", game.ErrInvalidPlayer, sessionID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.Exited || s.left {
		return nil, fmt.Errorf("%w: game %s already ended", game.ErrInvalidState, s.id)
	}

	if s.game.Won() {
		g, err := s.fresh(ctx)
		if err != nil {
			return nil, err
		}
		s.game = g
		s.save(ctx, g)
		return []game.Reply{{SessionID: s.player, Text: g.Render()}}, nil
	}

	s.game.Event(strings.ToLower(strings.TrimSpace(input)))
	if s.game.Exited {
		if err := s.states.Delete(ctx, s.player); err != nil {
			log.Warn().Err(err).Str("session", s.player).Str("game", s.id).Msg("delete hangman state")
		}
		log.Debug().Str("session", s.player).Str("game", s.id).Msg("hangman exited")
		return []game.Reply{{SessionID: s.player, Text: s.game.Render(), End: true}}, nil
	}
	s.save(ctx, s.game)
	return []game.Reply{{SessionID: s.player, Text: s.game.Render()}}, nil
}

// Leave implements game.Game. Stored state is kept so the session can resume later.
func (s *Session) Leave(ctx context.Context, sessionID string) ([]game.Reply, error) {
	if sessionID != s.player {
		return nil, fmt.Errorf("%w: %s", game.ErrInvalidPlayer, sessionID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.left = true
	return nil, nil
}

// Players implements game.Game.
func (s *Session) Players() []string { return []string{s.player} }

// Full implements game.Game. Hangman never takes a second player.
func (s *Session) Full() bool { return true }

// Done implements game.Game.
func (s *Session) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Exited || s.left
}

// Snapshot returns a copy of the current puzzle state.
func (s *Session) Snapshot() Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := *s.game
	g.Guesses = make(map[rune]struct{}, len(s.game.Guesses))
	for r := range s.game.Guesses {
		g.Guesses[r] = struct{}{}
	}
	return g
}
