package render

import (
	"io"
	"strings"

	"github.com/harrison/treels/internal/decorate"
	"github.com/harrison/treels/internal/models"
	"github.com/mattn/go-runewidth"
)

const (
	typeColumnWidth = 10
	timeColumnWidth = 20
	timeLayout      = "2006-01-02 15:04:05"
)

// Long prints a table of type, size, modification time and name.
type Long struct {
	dec *decorate.Decorator
	p   printer
}

// NewLong creates a long-format renderer writing to out.
func NewLong(dec *decorate.Decorator, out io.Writer) *Long {
	return &Long{dec: dec, p: printer{out: out}}
}

// Render prints the header, the rule and one row per entry.
func (r *Long) Render(entries []models.Entry) error {
	sizeWidth, nameWidth := 0, 0
	for _, e := range entries {
		sizeWidth = max(sizeWidth, len(decorate.FormatSize(e.Size)))
		nameWidth = max(nameWidth, runewidth.StringWidth(e.FileName()))
	}

	if err := r.p.printf("%-*s %*s %-*s %s\n", typeColumnWidth, "Type", sizeWidth, "Size", timeColumnWidth, "Modified", "Name"); err != nil {
		return err
	}
	rule := strings.Repeat("-", typeColumnWidth+1+sizeWidth+1+timeColumnWidth+1+nameWidth)
	if err := r.p.print(rule + "\n"); err != nil {
		return err
	}

	for _, e := range entries {
		f, err := r.dec.Decorate(e)
		if err != nil {
			return err
		}
		err = r.p.printf("%s%-*s %*s %-*s %s%s\n",
			f.Open,
			typeColumnWidth, e.Type.Label(),
			sizeWidth, decorate.FormatSize(e.Size),
			timeColumnWidth, e.ModTime.Local().Format(timeLayout),
			f.Body(),
			f.Close,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
