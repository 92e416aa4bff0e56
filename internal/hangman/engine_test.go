package hangman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, word string) *Game {
	t.Helper()
	g, err := New(word)
	require.NoError(t, err)
	return g
}

func guessSet(s string) map[rune]struct{} {
	m := map[rune]struct{}{}
	for _, r := range s {
		m[r] = struct{}{}
	}
	return m
}

func TestNew(t *testing.T) {
	g := mustNew(t, "moo")
	assert.Equal(t, "moo", g.Word)
	assert.Empty(t, g.Guesses)
	assert.Equal(t, "New game!", g.Msg)
	assert.False(t, g.Exited)

	for _, bad := range []string{"", "Moo", "mo o", "m00", "café"} {
		_, err := New(bad)
		assert.ErrorIs(t, err, ErrBadWord, bad)
	}
}

func TestEasyGame(t *testing.T) {
	g := mustNew(t, "moo")
	g.Event("m")
	assert.False(t, g.Won())
	g.Event("o")
	assert.True(t, g.Won())
	assert.True(t, strings.HasPrefix(g.State(), "moo:mo:"))

	g.Event("x")
	assert.True(t, g.Won(), "won stays true after further guesses")
}

func TestWonCoversEveryDistinctLetter(t *testing.T) {
	for _, word := range []string{"a", "banana", "elephant", "mississippi", "abcdefghijklmnopqrstuvwxyz"} {
		g := mustNew(t, word)
		seen := map[rune]bool{}
		for _, r := range word {
			if seen[r] {
				continue
			}
			seen[r] = true
			assert.False(t, g.Won(), word)
			g.Event(string(r))
		}
		assert.True(t, g.Won(), word)
	}
}

func TestFromState(t *testing.T) {
	g, err := FromState("bar:xyz:Eep?")
	require.NoError(t, err)
	assert.Equal(t, "bar", g.Word)
	assert.Equal(t, guessSet("xyz"), g.Guesses)
	assert.Equal(t, "Eep?", g.Msg)
	assert.False(t, g.Exited)
}

func TestFromStateMessageWithColons(t *testing.T) {
	g, err := FromState("bar::a: b: c")
	require.NoError(t, err)
	assert.Empty(t, g.Guesses)
	assert.Equal(t, "a: b: c", g.Msg)
}

func TestFromStateMalformed(t *testing.T) {
	for _, s := range []string{"", "bar", "bar:xyz", ":xyz:msg", "BAR:x:msg", "bar:x1:msg"} {
		_, err := FromState(s)
		assert.ErrorIs(t, err, ErrBadState, s)
	}
}

func TestStateRoundTrip(t *testing.T) {
	g := mustNew(t, "elephant")
	for _, in := range []string{"e", "z", "!", "p", "e", "abc"} {
		g.Event(in)
		back, err := FromState(g.State())
		require.NoError(t, err)
		assert.Equal(t, g.Word, back.Word)
		assert.Equal(t, g.Guesses, back.Guesses)
		assert.Equal(t, g.Msg, back.Msg)
	}
}

func TestStateSortsGuesses(t *testing.T) {
	g := mustNew(t, "word")
	g.Event("w")
	g.Event("d")
	g.Event("a")
	assert.Equal(t, "word:adw:Word contains no 'a'. :(", g.State())
}

func TestExit(t *testing.T) {
	g := mustNew(t, "elephant")
	g.Event("e")
	g.Event("0")
	assert.True(t, g.Exited)
	assert.Equal(t, "Adieu!", g.Msg)

	g.Event("l")
	g.Event("0")
	assert.Equal(t, guessSet("e"), g.Guesses)
	assert.Equal(t, "Adieu!", g.Msg)
}

func TestGarbageInput(t *testing.T) {
	g := mustNew(t, "zoo")
	for _, garbage := range []string{
		":", "!", "\x00", "+", "abc", "", "   ", "\t", "é", "12",
		"A", "Z", "\ta", "a\n", "\va\r", "\u00a0a", " o",
	} {
		g.Event(garbage)
		assert.Empty(t, g.Guesses, "input %q", garbage)
		assert.Equal(t, "zoo", g.Word)
	}
	g.Event("z")
	g.Event("o")
	assert.True(t, g.Won())
}

func TestEventMessages(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "Some input required please."},
		{"multiple", "ab", "Single characters only please."},
		{"punctuation", "!", "Letters of the alphabet only please."},
		{"hit", "o", "Word contains at least one 'o'! :D"},
		{"miss", "x", "Word contains no 'x'. :("},
		{"uppercase", "Z", "Letters of the alphabet only please."},
		{"surrounding space", " o ", "Single characters only please."},
		{"whitespace only", " ", "Letters of the alphabet only please."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t, "zoo")
			g.Event(tt.input)
			assert.Equal(t, tt.want, g.Msg)
		})
	}
}

func TestRepeatGuess(t *testing.T) {
	g := mustNew(t, "zoo")
	g.Event("x")
	g.Event("x")
	assert.Equal(t, guessSet("x"), g.Guesses)
	assert.Equal(t, "You've already guessed 'x'.", g.Msg)
}

func TestRenderNewGame(t *testing.T) {
	g := mustNew(t, "word")
	lines := strings.Split(g.Render(), "\n")
	assert.Equal(t, []string{
		"New game!",
		"Word: ____",
		"Letters guessed so far: ",
		"Enter next guess (0 to quit):",
		"",
	}, lines)
}

func TestRenderDisplaysWord(t *testing.T) {
	g := mustNew(t, "word")
	g.Event("w")
	g.Event("r")
	lines := strings.Split(g.Render(), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Word: w_r_", lines[1])
	assert.Equal(t, "Letters guessed so far: rw", lines[2])
}

func TestRenderWonAndExited(t *testing.T) {
	g := mustNew(t, "ox")
	g.Event("o")
	g.Event("x")
	lines := strings.Split(g.Render(), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Word: ox", lines[1])
	assert.Equal(t, "Flawless victory! Enter anything to start a new game.", lines[3])

	g.Event("0")
	lines = strings.Split(g.Render(), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Adieu!", lines[0])
	assert.Equal(t, "Thanks for playing!", lines[3])
}
