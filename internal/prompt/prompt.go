// Package prompt reads validated values from line-based input.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rail44/primer/internal/log"
	"github.com/rail44/primer/internal/ui"
)

// ErrInputClosed is returned when input ends before a valid line was read
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on out and reads answers from in
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	theme  ui.Theme
	logger log.Logger
}

// New creates a Prompter. Output styling is derived from out.
func New(in io.Reader, out io.Writer, logger log.Logger) *Prompter {
	if logger == nil {
		logger = log.Default()
	}
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		theme:  ui.NewTheme(out),
		logger: logger,
	}
}

// Ask prints question, reads a line and parses it. Invalid lines print
// invalidMsg and the question is asked again, without limit. It returns
// ErrInputClosed when input ends and ctx.Err() when ctx is done.
func Ask[T any](ctx context.Context, p *Prompter, question, invalidMsg string, parse func(line string) (T, error)) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		if _, err := fmt.Fprintln(p.out, p.theme.Prompt.Render(question)); err != nil {
			return zero, fmt.Errorf("failed to write prompt: %w", err)
		}

		line, err := p.readLine()
		if err != nil {
			return zero, err
		}

		v, err := parse(line)
		if err != nil {
			p.logger.Debug("rejected input", slog.Int("attempt", attempt), slog.String("error", err.Error()))
			if _, werr := fmt.Fprintln(p.out, p.theme.Invalid.Render(invalidMsg)); werr != nil {
				return zero, fmt.Errorf("failed to write diagnostic: %w", werr)
			}
			continue
		}

		p.logger.Debug("accepted input", slog.Int("attempt", attempt))
		return v, nil
	}
}

// readLine returns the next line. A final line without a newline is still
// returned; only an empty read at end of input counts as closed.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		return "", ErrInputClosed
	}
	return "", fmt.Errorf("%w: failed to read line: %v", ErrInputClosed, err)
}
