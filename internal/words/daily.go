package words

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/robalobadob/textgames/internal/game"
)

// Daily serves one word per UTC date, chosen from a list by HMAC(salt, date).
type Daily struct {
	list *List
	salt string
	now  func() time.Time
}

// NewDaily returns a daily source over list.
func NewDaily(list *List, salt string) *Daily {
	return &Daily{list: list, salt: salt, now: time.Now}
}

// Word implements Source.
func (d *Daily) Word(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", game.ErrWordSourceUnavailable, err)
	}
	return d.list.ForDate(d.now(), d.salt), nil
}

// ForDate returns the list word for t's UTC calendar day under salt.
// Every caller with the same list and salt gets the same word all day.
func (l *List) ForDate(t time.Time, salt string) string {
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(t.UTC().Format(time.DateOnly)))
	n := binary.BigEndian.Uint64(mac.Sum(nil))
	return l.words[n%uint64(len(l.words))]
}
