package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/treels/internal/config"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Options    []string // Options the warning is about (optional)
	Suggestion string   // Action to take (optional)
}

// Display writes the warning, in yellow when color is on.
func (w Warning) Display(out io.Writer, color bool) {
	var b strings.Builder

	if color {
		b.WriteString("\x1b[33m")
	}
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Options) > 0 {
		b.WriteString("    ")
		if len(w.Options) == 1 {
			b.WriteString("Ignored option:\n")
		} else {
			b.WriteString("Ignored options:\n")
		}

		for i, opt := range w.Options {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, opt))
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if color {
		b.WriteString("\x1b[0m")
	}

	fmt.Fprint(out, b.String())
}

// Advisories lists options in cfg that the selected display mode ignores.
// colorOn is the resolved color policy.
func Advisories(cfg *config.Config, colorOn bool) []Warning {
	var warnings []Warning

	if cfg.Mode != config.ModeTree && cfg.MaxDepth != config.NoDepthLimit {
		warnings = append(warnings, Warning{
			Title:      "Depth limit ignored",
			Message:    fmt.Sprintf("%s mode lists without a depth limit", cfg.Mode),
			Options:    []string{fmt.Sprintf("--max-depth %d", cfg.MaxDepth)},
			Suggestion: "Use --tree to limit the depth",
		})
	}

	if cfg.Mode == config.ModeTree && cfg.Recurse {
		warnings = append(warnings, Warning{
			Title:   "Recurse ignored",
			Message: "tree mode always descends into subdirectories",
			Options: []string{"--recurse"},
		})
	}

	if cfg.Mode != config.ModeGrid {
		var opts []string
		if cfg.Width > 0 {
			opts = append(opts, fmt.Sprintf("--width %d", cfg.Width))
		}
		if cfg.Fill == config.FillAcross {
			opts = append(opts, "--across")
		}
		if len(opts) > 0 {
			warnings = append(warnings, Warning{
				Title:      "Grid options ignored",
				Message:    fmt.Sprintf("%s mode does not use a grid", cfg.Mode),
				Options:    opts,
				Suggestion: "Use --grid to lay entries out in columns",
			})
		}
	}

	if cfg.ColorScale != config.ScaleNone && !colorOn {
		warnings = append(warnings, Warning{
			Title:      "Color scale ignored",
			Message:    "color is disabled for this output",
			Options:    []string{"--color-scale " + cfg.ColorScale.String()},
			Suggestion: "Use --color always to force color",
		})
	}

	return warnings
}
