// internal/hangman/engine.go
//
// Core state machine for a single hangman puzzle.
// Responsibilities:
//   - Hold the answer, the set of guessed letters, the last feedback message
//     and the exit flag.
//   - Validate and apply one raw player input per Event call.
//   - Render the four-line board shown to the player.
//   - Encode/decode the compact "<word>:<guesses>:<msg>" state string.
//
// Notes:
//   - Input is taken as-is: only a single lowercase a–z character is a guess.
//   - Garbage input only changes Msg; Word and Guesses are never touched.
//   - Once Exited is set every further Event is a no-op.
//   - The exit flag is not part of the state string. Exited games are
//     deleted from storage rather than persisted.
package hangman

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// QuitInput ends the game when entered as a guess.
const QuitInput = "0"

const (
	msgNewGame   = "New game!"
	msgEmpty     = "Some input required please."
	msgMultiple  = "Single characters only please."
	msgNotLetter = "Letters of the alphabet only please."
	msgRepeat    = "You've already guessed '%c'."
	msgHit       = "Word contains at least one '%c'! :D"
	msgMiss      = "Word contains no '%c'. :("
	msgExit      = "Adieu!"

	promptNext   = "Enter next guess (0 to quit):"
	promptWon    = "Flawless victory! Enter anything to start a new game."
	promptExited = "Thanks for playing!"
)

var (
	// ErrBadWord is returned for answers that are empty or not all a–z.
	ErrBadWord = errors.New("hangman: word must be non-empty lowercase a-z")

	// ErrBadState is returned by FromState for malformed state strings.
	ErrBadState = errors.New("hangman: malformed state")
)

// New constructs a fresh game for word.
func New(word string) (*Game, error) {
	if !isWord(word) {
		return nil, fmt.Errorf("%w: %q", ErrBadWord, word)
	}
	return &Game{
		Word:    word,
		Guesses: map[rune]struct{}{},
		Msg:     msgNewGame,
	}, nil
}

// FromState rebuilds a game from a string produced by State.
// The message is everything after the second colon and may itself contain colons.
// The rebuilt game is never exited.
func FromState(state string) (*Game, error) {
	parts := strings.SplitN(state, ":", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: want 3 fields, got %d", ErrBadState, len(parts))
	}
	word, letters, msg := parts[0], parts[1], parts[2]
	if !isWord(word) {
		return nil, fmt.Errorf("%w: word %q", ErrBadState, word)
	}
	guesses := make(map[rune]struct{}, len(letters))
	for _, r := range letters {
		if !isLetter(r) {
			return nil, fmt.Errorf("%w: guess %q", ErrBadState, r)
		}
		guesses[r] = struct{}{}
	}
	return &Game{Word: word, Guesses: guesses, Msg: msg}, nil
}

// State encodes the game as "<word>:<sorted guesses>:<msg>".
func (g *Game) State() string {
	return g.Word + ":" + g.guessedLetters() + ":" + g.Msg
}

// Event applies one raw input.
//
// Validation order:
//   - empty input → feedback only
//   - "0" → exit
//   - more than one character → feedback only
//   - not a–z → feedback only
//   - already guessed → feedback only
//   - otherwise the letter is recorded and Msg reports hit or miss.
func (g *Game) Event(input string) {
	if g.Exited {
		return
	}
	in := input
	switch {
	case in == "":
		g.Msg = msgEmpty
	case in == QuitInput:
		g.Exited = true
		g.Msg = msgExit
	case utf8.RuneCountInString(in) != 1:
		g.Msg = msgMultiple
	default:
		r, _ := utf8.DecodeRuneInString(in)
		switch {
		case !isLetter(r):
			g.Msg = msgNotLetter
		case g.guessed(r):
			g.Msg = fmt.Sprintf(msgRepeat, r)
		default:
			g.Guesses[r] = struct{}{}
			if strings.ContainsRune(g.Word, r) {
				g.Msg = fmt.Sprintf(msgHit, r)
			} else {
				g.Msg = fmt.Sprintf(msgMiss, r)
			}
		}
	}
}

// Won reports whether every distinct letter of the word has been guessed.
func (g *Game) Won() bool {
	for _, r := range g.Word {
		if !g.guessed(r) {
			return false
		}
	}
	return true
}

// Render draws the board: message, masked word, guessed letters, prompt.
// Each line, including the last, ends in a newline.
func (g *Game) Render() string {
	prompt := promptNext
	switch {
	case g.Exited:
		prompt = promptExited
	case g.Won():
		prompt = promptWon
	}
	var b strings.Builder
	b.WriteString(g.Msg)
	b.WriteString("\nWord: ")
	b.WriteString(g.maskedWord())
	b.WriteString("\nLetters guessed so far: ")
	b.WriteString(g.guessedLetters())
	b.WriteString("\n")
	b.WriteString(prompt)
	b.WriteString("\n")
	return b.String()
}

// maskedWord shows guessed letters and '_' for the rest.
func (g *Game) maskedWord() string {
	var b strings.Builder
	for _, r := range g.Word {
		if g.guessed(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// guessedLetters returns the guesses sorted alphabetically.
func (g *Game) guessedLetters() string {
	out := make([]rune, 0, len(g.Guesses))
	for r := range g.Guesses {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return string(out)
}

func (g *Game) guessed(r rune) bool {
	_, ok := g.Guesses[r]
	return ok
}

// isLetter reports whether r is a lowercase ASCII letter.
func isLetter(r rune) bool { return r >= 'a' && r <= 'z' }

// isWord reports whether s is non-empty and all lowercase a–z.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isLetter(r) {
			return false
		}
	}
	return true
}
