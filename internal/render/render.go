// Package render lays decorated entries out on a writer.
//
// The flat layouts (one-line, long and grid) receive the complete, sorted
// entry list from fileutil.Walker.Collect. The tree layout is a
// fileutil.Visitor and prints as fileutil.Walker.Walk discovers entries.
package render

import (
	"fmt"
	"io"

	"github.com/harrison/treels/internal/config"
	"github.com/harrison/treels/internal/decorate"
	"github.com/harrison/treels/internal/models"
	"github.com/harrison/treels/internal/terminal"
)

// Renderer prints a flat list of entries.
type Renderer interface {
	Render(entries []models.Entry) error
}

// New returns the flat renderer for cfg.Mode. Tree mode is driven by the
// walker instead; use NewTree.
func New(cfg *config.Config, dec *decorate.Decorator, term terminal.Terminal, out io.Writer) (Renderer, error) {
	switch cfg.Mode {
	case config.ModeOneLine:
		return NewOneLine(dec, out), nil
	case config.ModeLong:
		return NewLong(dec, out), nil
	case config.ModeGrid:
		return NewGrid(dec, term, out, cfg.Width, cfg.Fill), nil
	default:
		return nil, fmt.Errorf("%s is not a flat display mode", cfg.Mode)
	}
}

// printer turns write failures into RenderErrors.
type printer struct {
	out io.Writer
}

func (p printer) printf(format string, args ...interface{}) error {
	if _, err := fmt.Fprintf(p.out, format, args...); err != nil {
		return &models.RenderError{Err: err}
	}
	return nil
}

func (p printer) print(s string) error {
	if _, err := io.WriteString(p.out, s); err != nil {
		return &models.RenderError{Err: err}
	}
	return nil
}
