// Package app runs each exercise against a reader, a writer and a logger.
package app

import (
	"context"

	"github.com/rail44/primer/internal/log"
)

// Runner is implemented by every program in this package
type Runner interface {
	Run(ctx context.Context) error
}

var (
	_ Runner = (*FtoCApp)(nil)
	_ Runner = (*FibonacciApp)(nil)
	_ Runner = (*RectanglesApp)(nil)
	_ Runner = (*TwelveDaysApp)(nil)
)

func orDefault(logger log.Logger) log.Logger {
	if logger == nil {
		return log.Default()
	}
	return logger
}
