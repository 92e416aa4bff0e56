// internal/words/words.go
//
// Word sources for hangman.
//
// Sources:
//   - List:  picks uniformly at random from a fixed list (embedded or file).
//   - HTTP:  asks a remote endpoint for one word per call.
//   - Daily: picks the same list word for everyone on a given UTC date.
//
// Every source returns a lowercase a–z word or an error wrapping
// game.ErrWordSourceUnavailable. Callers must not start a game on error.

package words

import (
	"bufio"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/textgames/assets"
	"github.com/robalobadob/textgames/internal/game"
)

// Source supplies answers for new games.
type Source interface {
	Word(ctx context.Context) (string, error)
}

// ErrEmptyList is returned when a list ends up with no usable words.
var ErrEmptyList = errors.New("words: list is empty")

// List is a fixed in-memory word list.
type List struct {
	words []string
}

// NewList normalizes words (trim, lowercase) and drops anything not a–z.
func NewList(words []string) (*List, error) {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = normalize(w); isAlpha(w) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptyList
	}
	return &List{words: out}, nil
}

// LoadList reads one word per line from path, or the embedded list if path is empty.
func LoadList(path string) (*List, error) {
	if path == "" {
		ws, err := assets.WordList()
		if err != nil {
			return nil, fmt.Errorf("embedded word list: %w", err)
		}
		return NewList(ws)
	}
	ws, err := readWordFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return NewList(ws)
}

// Word returns a cryptographically random word from the list.
func (l *List) Word(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", game.ErrWordSourceUnavailable, err)
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return "", fmt.Errorf("%w: %w", game.ErrWordSourceUnavailable, err)
	}
	return l.words[n.Int64()], nil
}

// Len returns the number of words in the list.
func (l *List) Len() int { return len(l.words) }

// At returns the word at index i.
func (l *List) At(i int) string { return l.words[i] }

// readWordFile loads one word per line, skipping blanks and '#' comments.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// isAlpha reports whether s is non-empty and all lowercase ASCII letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
