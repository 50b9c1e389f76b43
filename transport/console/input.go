package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type token struct {
	text string
	err  error
}

// readTokens scans whitespace separated words from in until it is drained
// or ctx is done. The channel is closed when reading stops. Cancelling ctx
// does not interrupt a pending Read, so on stdin the goroutine stays blocked
// until the process exits.
func readTokens(ctx context.Context, in io.Reader) <-chan token {
	tokens := make(chan token)

	go func() {
		defer close(tokens)

		scanner := bufio.NewScanner(in)
		scanner.Split(bufio.ScanWords)

		for scanner.Scan() {
			select {
			case tokens <- token{text: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case tokens <- token{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return tokens
}

// readInt prompts until a numeric token arrives.
func (that *Server) readInt(ctx context.Context, tokens <-chan token, prompt string) (int, error) {
	for {
		fmt.Fprint(that.out, prompt)

		select {
		case <-ctx.Done():
			return 0, fmt.Errorf("input aborted: %w", ctx.Err())
		case tok, ok := <-tokens:
			if !ok {
				return 0, apperror.ErrInputClosed
			}

			if tok.err != nil {
				return 0, fmt.Errorf("failed to read input: %w", tok.err)
			}

			value, err := strconv.Atoi(tok.text)
			if err != nil {
				that.logger.Debug("non numeric input", "token", tok.text)
				fmt.Fprintln(that.out, that.renderer.Notice(fmt.Sprintf("%q is not a number. Try again...", tok.text)))

				continue
			}

			return value, nil
		}
	}
}
