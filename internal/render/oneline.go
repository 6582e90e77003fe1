package render

import (
	"io"

	"github.com/harrison/treels/internal/decorate"
	"github.com/harrison/treels/internal/models"
)

// OneLine prints one decorated entry per line.
type OneLine struct {
	dec *decorate.Decorator
	p   printer
}

// NewOneLine creates a one-line renderer writing to out.
func NewOneLine(dec *decorate.Decorator, out io.Writer) *OneLine {
	return &OneLine{dec: dec, p: printer{out: out}}
}

// Render prints entries in order.
func (r *OneLine) Render(entries []models.Entry) error {
	for _, e := range entries {
		f, err := r.dec.Decorate(e)
		if err != nil {
			return err
		}
		if err := r.p.print(f.String() + "\n"); err != nil {
			return err
		}
	}
	return nil
}
