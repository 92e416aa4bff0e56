package hangman

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/textgames/internal/game"
)

type fixedWords struct {
	words []string
	err   error
	calls int
}

func (f *fixedWords) Word(ctx context.Context) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	w := f.words[f.calls%len(f.words)]
	f.calls++
	return w, nil
}

type mapStates struct {
	states  map[string]string
	loadErr error
	saveErr error
}

func newMapStates() *mapStates { return &mapStates{states: map[string]string{}} }

func (m *mapStates) Load(ctx context.Context, id string) (string, bool, error) {
	if m.loadErr != nil {
		return "", false, m.loadErr
	}
	s, ok := m.states[id]
	return s, ok, nil
}

func (m *mapStates) Save(ctx context.Context, id, state string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.states[id] = state
	return nil
}

func (m *mapStates) Delete(ctx context.Context, id string) error {
	delete(m.states, id)
	return nil
}

func openSession(t *testing.T, w WordSource, st StateStore, id string) *Session {
	t.Helper()
	g, err := NewFactory(w, st)(context.Background(), id)
	require.NoError(t, err)
	return g.(*Session)
}

func TestSessionNewGame(t *testing.T) {
	st := newMapStates()
	s := openSession(t, &fixedWords{words: []string{"elephant"}}, st, "sp1")

	replies, err := s.Join(context.Background(), "sp1")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, game.Reply{
		SessionID: "sp1",
		Text: "New game!\n" +
			"Word: ________\n" +
			"Letters guessed so far: \n" +
			"Enter next guess (0 to quit):\n",
	}, replies[0])
	assert.Equal(t, "elephant::New game!", st.states["sp1"])
	assert.True(t, s.Full())
	assert.Equal(t, []string{"sp1"}, s.Players())
	assert.NotEmpty(t, s.ID())
}

func TestSessionResumesStoredState(t *testing.T) {
	st := newMapStates()
	st.states["sp1"] = "bar:xyz:Eep?"
	w := &fixedWords{words: []string{"elephant"}}
	s := openSession(t, w, st, "sp1")

	snap := s.Snapshot()
	assert.Equal(t, "bar", snap.Word)
	assert.Equal(t, "Eep?", snap.Msg)
	assert.Equal(t, 0, w.calls, "no word fetched for a stored game")
}

func TestSessionDiscardsCorruptState(t *testing.T) {
	st := newMapStates()
	st.states["sp1"] = "garbage"
	s := openSession(t, &fixedWords{words: []string{"moo"}}, st, "sp1")
	assert.Equal(t, "moo", s.Snapshot().Word)
	assert.Equal(t, "moo::New game!", st.states["sp1"])
}

func TestSessionWordSourceFailure(t *testing.T) {
	boom := errors.New("timeout")
	_, err := NewFactory(&fixedWords{err: boom}, newMapStates())(context.Background(), "sp1")
	assert.ErrorIs(t, err, game.ErrWordSourceUnavailable)
	assert.ErrorIs(t, err, boom)

	_, err = NewFactory(&fixedWords{words: []string{""}}, newMapStates())(context.Background(), "sp1")
	assert.ErrorIs(t, err, game.ErrWordSourceUnavailable)
}

func TestSessionLoadFailure(t *testing.T) {
	st := newMapStates()
	st.loadErr = errors.New("disk")
	_, err := NewFactory(&fixedWords{words: []string{"moo"}}, st)(context.Background(), "sp1")
	assert.ErrorIs(t, err, st.loadErr)
}

func TestSessionEventPersists(t *testing.T) {
	ctx := context.Background()
	st := newMapStates()
	s := openSession(t, &fixedWords{words: []string{"moo"}}, st, "sp1")

	replies, err := s.Event(ctx, "sp1", "m")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.False(t, replies[0].End)
	assert.Equal(t, "moo:m:Word contains at least one 'm'! :D", st.states["sp1"])

	st.saveErr = errors.New("disk full")
	_, err = s.Event(ctx, "sp1", "o")
	require.NoError(t, err, "save failures are logged, not returned")
	snap := s.Snapshot()
	assert.True(t, snap.Won())
}

func TestSessionWonStartsNewGame(t *testing.T) {
	ctx := context.Background()
	st := newMapStates()
	s := openSession(t, &fixedWords{words: []string{"ox", "moo"}}, st, "sp1")

	_, err := s.Event(ctx, "sp1", "o")
	require.NoError(t, err)
	replies, err := s.Event(ctx, "sp1", "x")
	require.NoError(t, err)
	assert.Contains(t, replies[0].Text, "Flawless victory!")

	replies, err = s.Event(ctx, "sp1", "anything")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Text, "Word: ___\n")
	assert.Equal(t, "moo::New game!", st.states["sp1"])
}

func TestSessionExitDeletesState(t *testing.T) {
	ctx := context.Background()
	st := newMapStates()
	s := openSession(t, &fixedWords{words: []string{"moo"}}, st, "sp1")

	replies, err := s.Event(ctx, "sp1", "0")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.True(t, replies[0].End)
	assert.True(t, s.Done())
	assert.NotContains(t, st.states, "sp1")

	_, err = s.Event(ctx, "sp1", "m")
	assert.ErrorIs(t, err, game.ErrInvalidState)
}

func TestSessionLeaveKeepsState(t *testing.T) {
	ctx := context.Background()
	st := newMapStates()
	s := openSession(t, &fixedWords{words: []string{"moo"}}, st, "sp1")
	_, err := s.Event(ctx, "sp1", "m")
	require.NoError(t, err)

	replies, err := s.Leave(ctx, "sp1")
	require.NoError(t, err)
	assert.Empty(t, replies)
	assert.True(t, s.Done())
	assert.Contains(t, st.states, "sp1")
}

func TestSessionRejectsOtherPlayers(t *testing.T) {
	ctx := context.Background()
	s := openSession(t, &fixedWords{words: []string{"moo"}}, newMapStates(), "sp1")
	_, err := s.Join(ctx, "sp2")
	assert.ErrorIs(t, err, game.ErrInvalidPlayer)
	_, err = s.Event(ctx, "sp2", "m")
	assert.ErrorIs(t, err, game.ErrInvalidPlayer)
	_, err = s.Leave(ctx, "sp2")
	assert.ErrorIs(t, err, game.ErrInvalidPlayer)
}

func TestSessionNormalizesInput(t *testing.T) {
	ctx := context.Background()
	st := newMapStates()
	s := openSession(t, &fixedWords{words: []string{"zoo"}}, st, "sp1")

	for _, in := range []string{" Z ", "\tO\r\n"} {
		_, err := s.Event(ctx, "sp1", in)
		require.NoError(t, err)
	}
	snap := s.Snapshot()
	assert.Equal(t, guessSet("oz"), snap.Guesses)
	assert.True(t, snap.Won())

	s = openSession(t, &fixedWords{words: []string{"zoo"}}, newMapStates(), "sp2")
	_, err := s.Event(ctx, "sp2", "\x00")
	require.NoError(t, err)
	assert.Empty(t, s.Snapshot().Guesses)
}
