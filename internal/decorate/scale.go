package decorate

import (
	"math"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/treels/internal/config"
)

// 256-color palette indexes for the fixed buckets.
const (
	paletteGreen  = 46
	paletteYellow = 226
	paletteOrange = 208
	paletteRed    = 196
)

const (
	day  = 24 * time.Hour
	week = 7 * day
	// month is a flat 30 days.
	month = 30 * day
	year  = 365 * day

	kib = int64(1024)
	mib = 1024 * kib
	gib = 1024 * mib
)

// extendedFg selects the 256-color foreground palette (SGR 38;5;n).
const extendedFg color.Attribute = 38

// Reset closes any color escape.
var Reset = sgr(color.New(color.Reset))

// sgr renders the opening sequence of c. Color is forced on: whether the
// listing is colored at all is decided by the Decorator.
func sgr(c *color.Color) string {
	c.EnableColor()
	var b strings.Builder
	c.SetWriter(&b)
	return b.String()
}

func palette(index int) string {
	return sgr(color.New(extendedFg, 5, color.Attribute(index)))
}

func trueColor(r, g, b uint8) string {
	return sgr(color.RGB(int(r), int(g), int(b)))
}

// AgeColor maps an age to an escape sequence.
func AgeColor(age time.Duration, mode config.ScaleMode) string {
	if age < 0 {
		age = 0
	}
	if mode == config.ScaleGradient {
		return gradient(float64(age) / float64(year))
	}
	switch {
	case age < day:
		return palette(paletteGreen)
	case age < week:
		return palette(paletteYellow)
	case age < month:
		return palette(paletteOrange)
	default:
		return palette(paletteRed)
	}
}

// SizeColor maps a byte size to an escape sequence.
func SizeColor(size int64, mode config.ScaleMode) string {
	if mode == config.ScaleGradient {
		return gradient(float64(size) / float64(gib))
	}
	switch {
	case size < kib:
		return palette(paletteGreen)
	case size < mib:
		return palette(paletteYellow)
	case size < 100*mib:
		return palette(paletteOrange)
	default:
		return palette(paletteRed)
	}
}

// gradient converts a ratio into a truecolor escape running from green
// (ratio 0) to red (ratio >= 1).
func gradient(ratio float64) string {
	ratio = math.Max(0, math.Min(1, ratio))
	r, g, b := hueToRGB((1 - ratio) * 120)
	return trueColor(r, g, b)
}

// hueToRGB is HSV to RGB with full saturation and value.
func hueToRGB(hue float64) (uint8, uint8, uint8) {
	const c = 1.0
	x := c * (1 - math.Abs(math.Mod(hue/60, 2)-1))

	var r, g, b float64
	switch {
	case hue < 60:
		r, g, b = c, x, 0
	case hue < 120:
		r, g, b = x, c, 0
	case hue < 180:
		r, g, b = 0, c, x
	case hue < 240:
		r, g, b = 0, x, c
	case hue < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}
