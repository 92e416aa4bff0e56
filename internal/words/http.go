package words

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/robalobadob/textgames/internal/game"
)

// DefaultTimeout bounds a single HTTP word fetch.
const DefaultTimeout = 5 * time.Second

// maxWordBytes is the largest response body accepted as a word.
const maxWordBytes = 256

// HTTP fetches a word from a URL whose body is the word as plain text.
type HTTP struct {
	url    string
	client *http.Client
}

// NewHTTP returns a source for url. A non-positive timeout uses DefaultTimeout.
func NewHTTP(url string, timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTP{url: url, client: &http.Client{Timeout: timeout}}
}

// Word implements Source.
func (h *HTTP) Word(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", game.ErrWordSourceUnavailable, err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", game.ErrWordSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s returned %d", game.ErrWordSourceUnavailable, h.url, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWordBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", game.ErrWordSourceUnavailable, err)
	}
	if len(body) > maxWordBytes {
		return "", fmt.Errorf("%w: body exceeds %d bytes", game.ErrWordSourceUnavailable, maxWordBytes)
	}
	w := normalize(string(body))
	if !isAlpha(w) {
		return "", fmt.Errorf("%w: bad word %q", game.ErrWordSourceUnavailable, w)
	}
	return w, nil
}
