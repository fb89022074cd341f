package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rail44/primer/internal/log"
	"github.com/rail44/primer/internal/rectangles"
)

// RectanglesApp prints the rectangle demo
type RectanglesApp struct {
	rect   rectangles.Rectangle
	out    io.Writer
	logger log.Logger
}

// NewRectanglesApp creates the demo for the 30x50 rectangle
func NewRectanglesApp(out io.Writer, logger log.Logger) *RectanglesApp {
	return &RectanglesApp{
		rect:   rectangles.Default(),
		out:    out,
		logger: orDefault(logger),
	}
}

// Run prints the rectangle's debug dump followed by its area
func (a *RectanglesApp) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(a.out, "rect is %s", rectangles.Dump(a.rect)); err != nil {
		return err
	}

	area := rectangles.Area(a.rect)
	a.logger.Debug("computed area",
		slog.Any("width", a.rect.Width),
		slog.Any("height", a.rect.Height),
		slog.Any("area", area))

	_, err := fmt.Fprintln(a.out, rectangles.FormatArea(area))
	return err
}
