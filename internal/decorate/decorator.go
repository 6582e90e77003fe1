// Package decorate turns an entry into the display fragments every renderer
// composes: color, icon, name, type suffix and size.
package decorate

import (
	"os"
	"path/filepath"
	"time"

	"github.com/harrison/treels/internal/config"
	"github.com/harrison/treels/internal/models"
	"github.com/harrison/treels/internal/terminal"
	"github.com/mattn/go-runewidth"
)

// Fragments are the decorated pieces of one entry, in output order.
type Fragments struct {
	Open   string // scale color escape, empty when uncolored
	Icon   string
	Name   string // quoted and, when enabled, hyperlinked
	Suffix string // classification character
	Size   string // " [1.50 KB]" when sizes are shown
	Close  string // Reset when Open is set

	plainName string
}

// Body is everything between the color escapes.
func (f Fragments) Body() string {
	return f.Icon + f.Name + f.Suffix + f.Size
}

// String is the fully decorated entry.
func (f Fragments) String() string {
	return f.Open + f.Body() + f.Close
}

// Width is the number of terminal columns the entry occupies.
// Escapes and hyperlink wrappers take no space.
func (f Fragments) Width() int {
	return runewidth.StringWidth(f.Icon + f.plainName + f.Suffix + f.Size)
}

// Decorator applies the configured policies. It never touches the
// filesystem: age and size come from the metadata captured on the entry.
type Decorator struct {
	cfg     *config.Config
	now     func() time.Time
	getwd   func() (string, error)
	colorOn bool
	iconsOn bool
}

// Option customizes a Decorator.
type Option func(*Decorator)

// WithClock replaces time.Now for age coloring.
func WithClock(now func() time.Time) Option {
	return func(d *Decorator) { d.now = now }
}

// WithWorkDir replaces os.Getwd for hyperlink resolution.
func WithWorkDir(getwd func() (string, error)) Option {
	return func(d *Decorator) { d.getwd = getwd }
}

// New creates a Decorator. Auto policies are resolved once against term.
func New(cfg *config.Config, term terminal.Terminal, opts ...Option) *Decorator {
	interactive := term.IsInteractive()
	d := &Decorator{
		cfg:     cfg,
		now:     time.Now,
		getwd:   os.Getwd,
		colorOn: cfg.Color.Resolve(interactive),
		iconsOn: cfg.Icons.Resolve(interactive),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ColorEnabled reports whether the color policy resolved to on.
func (d *Decorator) ColorEnabled() bool {
	return d.colorOn
}

// Icon returns the glyph for e, or "" when icons are off.
func (d *Decorator) Icon(e models.Entry) string {
	if !d.iconsOn {
		return ""
	}
	return IconFor(e)
}

// ScaleColor returns the age and/or size escape for e.
func (d *Decorator) ScaleColor(e models.Entry) string {
	if !d.colorOn || d.cfg.ColorScale == config.ScaleNone {
		return ""
	}
	var out string
	if d.cfg.ColorScale.HasAge() {
		out += AgeColor(d.now().Sub(e.ModTime), d.cfg.ScaleMode)
	}
	if d.cfg.ColorScale.HasSize() {
		out += SizeColor(e.Size, d.cfg.ScaleMode)
	}
	return out
}

// SizeSuffix returns " [<size>]" when sizes are shown.
func (d *Decorator) SizeSuffix(e models.Entry) string {
	if !d.cfg.ShowSize {
		return ""
	}
	return " [" + FormatSize(e.Size) + "]"
}

// link wraps name in a hyperlink to e's absolute path. Relative display
// paths are resolved against the working directory now, at render time.
func (d *Decorator) link(e models.Entry, name string) (string, error) {
	if !d.cfg.Hyperlink {
		return name, nil
	}
	target := e.DisplayPath
	if !filepath.IsAbs(target) {
		wd, err := d.getwd()
		if err != nil {
			return "", models.NewFilesystemError("getwd", "", err)
		}
		target = filepath.Join(wd, target)
	}
	return Hyperlink(target, name), nil
}

// Decorate builds all fragments for e.
func (d *Decorator) Decorate(e models.Entry) (Fragments, error) {
	plain := QuoteName(e.FileName(), d.cfg.QuoteNames)
	name, err := d.link(e, plain)
	if err != nil {
		return Fragments{}, err
	}

	f := Fragments{
		Open:      d.ScaleColor(e),
		Icon:      d.Icon(e),
		Name:      name,
		Suffix:    ClassifySuffix(e.Type, d.cfg.Classify),
		Size:      d.SizeSuffix(e),
		plainName: plain,
	}
	if f.Open != "" {
		f.Close = Reset
	}
	return f, nil
}
