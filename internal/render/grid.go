package render

import (
	"io"
	"strings"

	"github.com/harrison/treels/internal/config"
	"github.com/harrison/treels/internal/decorate"
	"github.com/harrison/treels/internal/models"
	"github.com/harrison/treels/internal/terminal"
)

// DefaultWidth is used when neither an override nor the terminal gives one.
const DefaultWidth = 80

// cellGap separates grid columns.
const cellGap = 2

// Grid prints entries in columns sized to the widest cell.
type Grid struct {
	dec   *decorate.Decorator
	term  terminal.Terminal
	p     printer
	width int
	fill  config.FillDirection
}

// NewGrid creates a grid renderer. A positive width overrides the terminal.
func NewGrid(dec *decorate.Decorator, term terminal.Terminal, out io.Writer, width int, fill config.FillDirection) *Grid {
	return &Grid{dec: dec, term: term, p: printer{out: out}, width: width, fill: fill}
}

// Width resolves the line width: override, then terminal, then DefaultWidth.
func (r *Grid) Width() int {
	if r.width > 0 {
		return r.width
	}
	if w, err := r.term.Width(); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

// Layout returns the column and row counts for n cells of cellWidth.
func Layout(n, cellWidth, lineWidth int) (columns, rows int) {
	if n == 0 {
		return 0, 0
	}
	columns = max(1, lineWidth/max(1, cellWidth))
	rows = (n + columns - 1) / columns
	return columns, rows
}

// Index maps grid cell (row, col) to an entry index.
func Index(row, col, columns, rows int, fill config.FillDirection) int {
	if fill == config.FillAcross {
		return row*columns + col
	}
	return col*rows + row
}

// Render decorates every entry, then prints the grid row by row.
func (r *Grid) Render(entries []models.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	cells := make([]decorate.Fragments, len(entries))
	cellWidth := 0
	for i, e := range entries {
		f, err := r.dec.Decorate(e)
		if err != nil {
			return err
		}
		cells[i] = f
		cellWidth = max(cellWidth, f.Width())
	}
	cellWidth += cellGap

	columns, rows := Layout(len(cells), cellWidth, r.Width())
	for row := 0; row < rows; row++ {
		var line strings.Builder
		for col := 0; col < columns; col++ {
			idx := Index(row, col, columns, rows, r.fill)
			if idx >= len(cells) {
				continue
			}
			f := cells[idx]
			line.WriteString(f.String())
			line.WriteString(strings.Repeat(" ", cellWidth-f.Width()))
		}
		line.WriteByte('\n')
		if err := r.p.print(line.String()); err != nil {
			return err
		}
	}
	return nil
}
