// internal/session/registry.go
//
// Registry maps session ids to live game instances.
//
// Modes:
//   - Single (default): every NewSession builds a fresh game through the
//     factory. The factory may block (word fetch, storage) and runs without
//     the registry lock; the session id is reserved meanwhile.
//   - Pairing (WithPairing): at most one game is open. A new session joins
//     the open game if there is one, otherwise it opens a new one. The whole
//     operation runs under the registry lock, so factories used for pairing
//     must not block.
//
// A game is released (every session unbound) as soon as it reports Done.

package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/textgames/internal/game"
)

// Option configures a Registry.
type Option func(*Registry)

// WithPairing makes the registry pair consecutive sessions into shared games.
func WithPairing() Option {
	return func(r *Registry) { r.pairing = true }
}

// Registry is safe for concurrent use.
type Registry struct {
	factory game.Factory
	pairing bool

	mu       sync.RWMutex
	sessions map[string]game.Game
	reserved map[string]struct{} // single mode: ids whose factory call is in flight
	open     game.Game           // pairing mode: game awaiting a second player
}

// New constructs an empty registry building games with factory.
func New(factory game.Factory, opts ...Option) *Registry {
	r := &Registry{
		factory:  factory,
		sessions: make(map[string]game.Game),
		reserved: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewSession binds sessionID to a game and returns the greeting replies.
func (r *Registry) NewSession(ctx context.Context, sessionID string) ([]game.Reply, error) {
	if r.pairing {
		return r.newPaired(ctx, sessionID)
	}
	return r.newSingle(ctx, sessionID)
}

func (r *Registry) newSingle(ctx context.Context, sessionID string) ([]game.Reply, error) {
	r.mu.Lock()
	if err := r.checkUnboundLocked(sessionID); err != nil {
		r.mu.Unlock()
		return nil, err
	}
	r.reserved[sessionID] = struct{}{}
	r.mu.Unlock()

	g, err := r.factory(ctx, sessionID)

	r.mu.Lock()
	delete(r.reserved, sessionID)
	if err == nil {
		r.sessions[sessionID] = g
	}
	r.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("new session %s: %w", sessionID, err)
	}

	replies, err := g.Join(ctx, sessionID)
	if err != nil {
		r.release(g)
		return nil, fmt.Errorf("join session %s: %w", sessionID, err)
	}
	log.Debug().Str("session", sessionID).Str("game", g.ID()).Msg("session started")
	return replies, nil
}

func (r *Registry) newPaired(ctx context.Context, sessionID string) ([]game.Reply, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.checkUnboundLocked(sessionID); err != nil {
		return nil, err
	}

	if g := r.open; g != nil {
		replies, err := g.Join(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("join open game %s: %w", g.ID(), err)
		}
		r.sessions[sessionID] = g
		if g.Full() {
			if err := r.closeOpenLocked(g); err != nil {
				return nil, err
			}
		}
		log.Debug().Str("session", sessionID).Str("game", g.ID()).Msg("session paired")
		return replies, nil
	}

	g, err := r.factory(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("new session %s: %w", sessionID, err)
	}
	replies, err := g.Join(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("join session %s: %w", sessionID, err)
	}
	r.sessions[sessionID] = g
	if !g.Full() {
		r.open = g
	}
	log.Debug().Str("session", sessionID).Str("game", g.ID()).Msg("session opened game")
	return replies, nil
}

// ResumeSession forwards input from sessionID to its game.
// The result is empty when the game is waiting on the other player.
func (r *Registry) ResumeSession(ctx context.Context, sessionID, input string) ([]game.Reply, error) {
	g, err := r.Lookup(sessionID)
	if err != nil {
		return nil, err
	}
	replies, err := g.Event(ctx, sessionID, input)
	if err != nil {
		return nil, err
	}
	if g.Done() {
		r.release(g)
		log.Debug().Str("session", sessionID).Str("game", g.ID()).Msg("game finished")
	}
	return replies, nil
}

// EndSession unbinds sessionID. For paired games the remaining player, if
// any, is notified through the returned replies and unbound as well.
func (r *Registry) EndSession(ctx context.Context, sessionID string) ([]game.Reply, error) {
	r.mu.Lock()
	g, ok := r.sessions[sessionID]
	if !ok {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", game.ErrSessionNotFound, sessionID)
	}
	delete(r.sessions, sessionID)
	if r.open == g {
		// Cannot fail: the slot holds g.
		_ = r.closeOpenLocked(g)
	}
	r.mu.Unlock()

	replies, err := g.Leave(ctx, sessionID)
	if g.Done() {
		r.release(g)
	}
	log.Debug().Str("session", sessionID).Str("game", g.ID()).Msg("session ended")
	return replies, err
}

// Lookup returns the game bound to sessionID.
func (r *Registry) Lookup(sessionID string) (game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", game.ErrSessionNotFound, sessionID)
	}
	return g, nil
}

// Open returns the game awaiting a partner, or nil.
func (r *Registry) Open() game.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.open
}

// Sessions returns a copy of the session → game bindings.
func (r *Registry) Sessions() map[string]game.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]game.Game, len(r.sessions))
	for id, g := range r.sessions {
		out[id] = g
	}
	return out
}

// checkUnboundLocked rejects ids that already own a game. Callers hold r.mu.
func (r *Registry) checkUnboundLocked(sessionID string) error {
	if _, ok := r.sessions[sessionID]; ok {
		return fmt.Errorf("%w: session %s already bound", game.ErrInvalidState, sessionID)
	}
	if _, ok := r.reserved[sessionID]; ok {
		return fmt.Errorf("%w: session %s is being created", game.ErrInvalidState, sessionID)
	}
	return nil
}

// closeOpenLocked clears the pairing slot, which must hold g. Callers hold r.mu.
func (r *Registry) closeOpenLocked(g game.Game) error {
	if r.open == nil || r.open != g {
		return fmt.Errorf("%w: pairing slot already closed", game.ErrInvalidState)
	}
	r.open = nil
	return nil
}

// release unbinds every session still pointing at g.
func (r *Registry) release(g game.Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range g.Players() {
		if r.sessions[p] == g {
			delete(r.sessions, p)
		}
	}
	if r.open == g {
		r.open = nil
	}
}
