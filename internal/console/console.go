// internal/console/console.go
//
// Line-oriented driver for a session registry.
//
// Input lines:
//   new <sid>        open a session
//   end <sid>        close a session
//   <sid> <text>     deliver text to a session (text may be empty)
//
// Output: every reply line prefixed with "[<sid>] ", followed by
// "[<sid>] (session ended)" for replies that close the session. Errors are
// printed as "! <error>" and do not stop the loop.

package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/textgames/internal/game"
)

// Sessions is the registry surface the console drives.
type Sessions interface {
	NewSession(ctx context.Context, sessionID string) ([]game.Reply, error)
	ResumeSession(ctx context.Context, sessionID, input string) ([]game.Reply, error)
	EndSession(ctx context.Context, sessionID string) ([]game.Reply, error)
}

// Run reads commands from in until EOF or ctx is cancelled.
func Run(ctx context.Context, in io.Reader, out io.Writer, s Sessions) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		replies, err := dispatch(ctx, s, line)
		if err != nil {
			log.Debug().Err(err).Str("line", line).Msg("console command failed")
			fmt.Fprintf(out, "! %v\n", err)
			continue
		}
		write(out, replies)
	}
	return sc.Err()
}

func dispatch(ctx context.Context, s Sessions, line string) ([]game.Reply, error) {
	head, rest, _ := strings.Cut(line, " ")
	switch head {
	case "new":
		if id := strings.TrimSpace(rest); id != "" {
			return s.NewSession(ctx, id)
		}
	case "end":
		if id := strings.TrimSpace(rest); id != "" {
			return s.EndSession(ctx, id)
		}
	default:
		return s.ResumeSession(ctx, head, rest)
	}
	return nil, fmt.Errorf("usage: %s <session>", head)
}

func write(out io.Writer, replies []game.Reply) {
	for _, r := range replies {
		for _, l := range strings.Split(strings.TrimSuffix(r.Text, "\n"), "\n") {
			fmt.Fprintf(out, "[%s] %s\n", r.SessionID, l)
		}
		if r.End {
			fmt.Fprintf(out, "[%s] (session ended)\n", r.SessionID)
		}
	}
}
