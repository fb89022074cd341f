package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rail44/primer/internal/fibonacci"
	"github.com/rail44/primer/internal/log"
	"github.com/rail44/primer/internal/prompt"
)

const (
	indexQuestion = "Enter sequence number to find:"
	indexInvalid  = "Invalid number"

	// Above this index the recursive computation runs for minutes or longer
	slowIndex = 45
)

// FibonacciApp handles the Fibonacci lookup
type FibonacciApp struct {
	prompter *prompt.Prompter
	out      io.Writer
	logger   log.Logger
}

// NewFibonacciApp creates a calculator reading from in and printing to out
func NewFibonacciApp(in io.Reader, out io.Writer, logger log.Logger) *FibonacciApp {
	logger = orDefault(logger)
	return &FibonacciApp{
		prompter: prompt.New(in, out, logger),
		out:      out,
		logger:   logger,
	}
}

// Run asks for an index until one parses, then prints its Fibonacci number
func (a *FibonacciApp) Run(ctx context.Context) error {
	n, err := prompt.Ask(ctx, a.prompter, indexQuestion, indexInvalid, fibonacci.ParseIndex)
	if err != nil {
		return fmt.Errorf("failed to read sequence number: %w", err)
	}

	if n > slowIndex {
		a.logger.Warn("naive recursion will take a very long time", slog.Uint64("n", n))
	}

	start := time.Now()
	value := fibonacci.Fib(n)
	a.logger.Debug("computed fibonacci number", slog.Uint64("n", n), slog.Duration("elapsed", time.Since(start)))

	_, err = fmt.Fprintln(a.out, fibonacci.Format(n, value))
	return err
}
