// Package display provides advisory warnings written alongside a listing.
//
// Warnings never change the listing itself. They go to stderr so that
// stdout stays machine-readable:
//
//	for _, w := range display.Advisories(cfg, dec.ColorEnabled()) {
//	    w.Display(os.Stderr, dec.ColorEnabled())
//	}
//
// A warning has an optional message, the options it concerns and a
// suggestion:
//
//	warning := display.Warning{
//	    Title:      "Grid options ignored",
//	    Message:    "long mode does not use a grid",
//	    Options:    []string{"--across"},
//	    Suggestion: "Use --grid to lay entries out in columns",
//	}
//	warning.Display(os.Stderr, true)
//
// With color on, the whole block is yellow (\x1b[33m) and ends with a reset
// (\x1b[0m).
package display
