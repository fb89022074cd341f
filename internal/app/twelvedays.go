package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rail44/primer/internal/log"
	"github.com/rail44/primer/internal/twelvedays"
)

// TwelveDaysApp prints the twelve verses
type TwelveDaysApp struct {
	song   *twelvedays.Song
	out    io.Writer
	logger log.Logger
}

// NewTwelveDaysApp creates the verse printer. correctSpelling selects
// twelvedays.CorrectedOrdinals for the day names.
func NewTwelveDaysApp(out io.Writer, logger log.Logger, correctSpelling bool) *TwelveDaysApp {
	var opts []twelvedays.Option
	if correctSpelling {
		opts = append(opts, twelvedays.WithCorrectedSpelling())
	}
	return &TwelveDaysApp{
		song:   twelvedays.New(opts...),
		out:    out,
		logger: orDefault(logger),
	}
}

// Run prints every verse followed by a blank line
func (a *TwelveDaysApp) Run(ctx context.Context) error {
	for day := 0; day < twelvedays.Days; day++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		verse, err := a.song.Verse(day)
		if err != nil {
			return fmt.Errorf("failed to build verse %d: %w", day+1, err)
		}
		if _, err := fmt.Fprintln(a.out, verse); err != nil {
			return err
		}
		a.logger.Debug("printed verse", slog.Int("day", day+1))
	}
	return nil
}
