package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harrison/treels/internal/decorate"
	"github.com/harrison/treels/internal/models"
)

// Summary prints the directory/file counts and the total size.
type Summary struct {
	p      printer
	counts *color.Color
	total  *color.Color
}

// NewSummary creates a summary writer. colorOn forces bold blue and bold
// green on or off regardless of fatih/color's own detection.
func NewSummary(out io.Writer, colorOn bool) *Summary {
	s := &Summary{
		p:      printer{out: out},
		counts: color.New(color.Bold, color.FgBlue),
		total:  color.New(color.Bold, color.FgGreen),
	}
	for _, c := range []*color.Color{s.counts, s.total} {
		if colorOn {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Write prints stats after a blank line.
func (s *Summary) Write(stats models.Stats) error {
	counts := fmt.Sprintf("%d directories, %d files", stats.Directories, stats.Files)
	total := "Total size: " + decorate.FormatSize(stats.TotalSize)
	return s.p.print("\n" + s.counts.Sprint(counts) + "\n" + s.total.Sprint(total) + "\n")
}
