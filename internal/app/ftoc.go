package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rail44/primer/internal/log"
	"github.com/rail44/primer/internal/prompt"
	"github.com/rail44/primer/internal/temperature"
)

const (
	fahrenheitQuestion = "Enter Farenheit value:"
	fahrenheitInvalid  = "Invalid value"
)

// FtoCApp handles the Fahrenheit to Celsius conversion
type FtoCApp struct {
	prompter *prompt.Prompter
	out      io.Writer
	logger   log.Logger
}

// NewFtoCApp creates a converter reading from in and printing to out
func NewFtoCApp(in io.Reader, out io.Writer, logger log.Logger) *FtoCApp {
	logger = orDefault(logger)
	return &FtoCApp{
		prompter: prompt.New(in, out, logger),
		out:      out,
		logger:   logger,
	}
}

// Run asks for a value until one parses, then prints the conversion
func (a *FtoCApp) Run(ctx context.Context) error {
	f, err := prompt.Ask(ctx, a.prompter, fahrenheitQuestion, fahrenheitInvalid, temperature.ParseFahrenheit)
	if err != nil {
		return fmt.Errorf("failed to read fahrenheit value: %w", err)
	}

	c := temperature.ToCelsius(f)
	a.logger.Debug("converted temperature", slog.Int("fahrenheit", int(f)), slog.Int("celsius", int(c)))

	_, err = fmt.Fprintln(a.out, temperature.Format(f, c))
	return err
}
