// Package terminal exposes the two terminal facts the renderers care about:
// whether stdout is interactive and how many columns it has.
package terminal

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ErrNoWidth is returned when a terminal width is not known.
var ErrNoWidth = errors.New("terminal width unavailable")

// Terminal is the capability injected into decoration and the grid layout.
type Terminal interface {
	IsInteractive() bool
	Width() (int, error)
}

// File inspects an *os.File, normally the command's stdout.
type File struct {
	f *os.File
}

// NewFile returns a Terminal for f.
func NewFile(f *os.File) *File {
	return &File{f: f}
}

// IsInteractive reports whether the file is a TTY (including Cygwin/MSYS ptys).
func (t *File) IsInteractive() bool {
	if t.f == nil {
		return false
	}
	fd := t.f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Width returns the column count of the terminal.
func (t *File) Width() (int, error) {
	if t.f == nil {
		return 0, ErrNoWidth
	}
	w, _, err := term.GetSize(int(t.f.Fd()))
	if err != nil {
		return 0, err
	}
	if w <= 0 {
		return 0, ErrNoWidth
	}
	return w, nil
}

// Fixed is a deterministic Terminal for tests and piped output.
// A zero Columns value means the width is unknown.
type Fixed struct {
	Interactive bool
	Columns     int
}

// IsInteractive implements Terminal.
func (f Fixed) IsInteractive() bool {
	return f.Interactive
}

// Width implements Terminal.
func (f Fixed) Width() (int, error) {
	if f.Columns <= 0 {
		return 0, ErrNoWidth
	}
	return f.Columns, nil
}
