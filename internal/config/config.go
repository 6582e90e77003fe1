package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/harrison/treels/internal/models"
	"gopkg.in/yaml.v3"
)

// NoDepthLimit disables the tree depth limit.
const NoDepthLimit = -1

// Config represents every policy knob consumed by the listing pipeline.
// It is built once (defaults, then file, then flags) and read-only afterwards.
type Config struct {
	// Root is the directory (or file) to list
	Root string

	// MaxDepth limits tree recursion; NoDepthLimit means unlimited
	MaxDepth int

	// ShowHidden includes names starting with a dot
	ShowHidden bool

	// Pattern keeps only non-directory entries whose name matches (nil = keep all)
	Pattern *regexp.Regexp

	// Sort is the ordering key
	Sort SortKey

	// ShowSize appends a bracketed size to each entry
	ShowSize bool

	// Mode selects the layout
	Mode DisplayMode

	// Classify controls the type suffix (/, @, =, |)
	Classify Policy

	// Dereference reads symlink targets' metadata instead of the link's own
	Dereference bool

	// Color gates all ANSI coloring
	Color Policy

	// ColorScale selects age and/or size coloring
	ColorScale ColorScale

	// ScaleMode selects bucketed or gradient scale colors
	ScaleMode ScaleMode

	// Icons controls the leading glyph
	Icons Policy

	// QuoteNames wraps names containing spaces in double quotes
	QuoteNames bool

	// Hyperlink wraps names in OSC 8 file:// links
	Hyperlink bool

	// Absolute controls display path resolution
	Absolute AbsolutePolicy

	// Width overrides the grid width (0 = detect)
	Width int

	// Fill is the grid packing order
	Fill FillDirection

	// Recurse descends into subdirectories in the flat modes
	Recurse bool

	// LogLevel sets stderr diagnostics verbosity (trace, debug, info, warn, error)
	LogLevel string
}

// DefaultConfig returns a Config with the default policies.
func DefaultConfig() *Config {
	return &Config{
		Root:        ".",
		MaxDepth:    NoDepthLimit,
		ShowHidden:  false,
		Sort:        SortName,
		Mode:        ModeTree,
		Classify:    PolicyAuto,
		Color:       PolicyAuto,
		ColorScale:  ScaleNone,
		ScaleMode:   ScaleFixed,
		Icons:       PolicyAuto,
		QuoteNames:  true,
		Absolute:    AbsoluteOff,
		Fill:        FillDown,
		LogLevel:    "warn",
		Dereference: false,
	}
}

// fileConfig mirrors the YAML defaults file. Pointer fields distinguish
// "absent" from "set to the zero value".
type fileConfig struct {
	MaxDepth    *int            `yaml:"max_depth"`
	ShowHidden  *bool           `yaml:"show_hidden"`
	Pattern     *string         `yaml:"pattern"`
	Sort        *SortKey        `yaml:"sort"`
	ShowSize    *bool           `yaml:"show_size"`
	Mode        *DisplayMode    `yaml:"mode"`
	Classify    *Policy         `yaml:"classify"`
	Dereference *bool           `yaml:"dereference"`
	Color       *Policy         `yaml:"color"`
	ColorScale  *ColorScale     `yaml:"color_scale"`
	ScaleMode   *ScaleMode      `yaml:"color_scale_mode"`
	Icons       *Policy         `yaml:"icons"`
	QuoteNames  *bool           `yaml:"quote_names"`
	Hyperlink   *bool           `yaml:"hyperlink"`
	Absolute    *AbsolutePolicy `yaml:"absolute"`
	Width       *int            `yaml:"width"`
	Fill        *FillDirection  `yaml:"fill"`
	Recurse     *bool           `yaml:"recurse"`
	LogLevel    *string         `yaml:"log_level"`
}

// LoadConfig loads defaults from the YAML file at path.
// A missing file yields DefaultConfig without error; a malformed file,
// an unknown key or an invalid value is a *models.ConfigError.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, models.NewConfigError(path, "", "failed to parse config file", err)
	}

	if err := cfg.apply(fc); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(fc fileConfig) error {
	if fc.MaxDepth != nil {
		c.MaxDepth = *fc.MaxDepth
	}
	if fc.ShowHidden != nil {
		c.ShowHidden = *fc.ShowHidden
	}
	if fc.Pattern != nil {
		re, err := CompilePattern("pattern", *fc.Pattern)
		if err != nil {
			return err
		}
		c.Pattern = re
	}
	if fc.Sort != nil {
		c.Sort = *fc.Sort
	}
	if fc.ShowSize != nil {
		c.ShowSize = *fc.ShowSize
	}
	if fc.Mode != nil {
		c.Mode = *fc.Mode
	}
	if fc.Classify != nil {
		c.Classify = *fc.Classify
	}
	if fc.Dereference != nil {
		c.Dereference = *fc.Dereference
	}
	if fc.Color != nil {
		c.Color = *fc.Color
	}
	if fc.ColorScale != nil {
		c.ColorScale = *fc.ColorScale
	}
	if fc.ScaleMode != nil {
		c.ScaleMode = *fc.ScaleMode
	}
	if fc.Icons != nil {
		c.Icons = *fc.Icons
	}
	if fc.QuoteNames != nil {
		c.QuoteNames = *fc.QuoteNames
	}
	if fc.Hyperlink != nil {
		c.Hyperlink = *fc.Hyperlink
	}
	if fc.Absolute != nil {
		c.Absolute = *fc.Absolute
	}
	if fc.Width != nil {
		c.Width = *fc.Width
	}
	if fc.Fill != nil {
		c.Fill = *fc.Fill
	}
	if fc.Recurse != nil {
		c.Recurse = *fc.Recurse
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	return nil
}

// CompilePattern compiles a name filter, reporting failures against option.
func CompilePattern(option, src string) (*regexp.Regexp, error) {
	if src == "" {
		return nil, nil
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, models.NewConfigError(option, src, "invalid regular expression", err)
	}
	return re, nil
}

// FlagOverrides carries the command-line values the user actually set.
// Nil fields leave the configuration untouched.
type FlagOverrides struct {
	Root        *string
	MaxDepth    *int
	ShowHidden  *bool
	Pattern     *regexp.Regexp
	Sort        *SortKey
	ShowSize    *bool
	Mode        *DisplayMode
	Classify    *Policy
	Dereference *bool
	Color       *Policy
	ColorScale  *ColorScale
	ScaleMode   *ScaleMode
	Icons       *Policy
	NoQuotes    *bool
	Hyperlink   *bool
	Absolute    *AbsolutePolicy
	Width       *int
	Across      *bool
	Recurse     *bool
	LogLevel    *string
}

// MergeWithFlags merges CLI flags into the configuration.
// Flags take precedence over config file settings.
func (c *Config) MergeWithFlags(f FlagOverrides) {
	if f.Root != nil {
		c.Root = *f.Root
	}
	if f.MaxDepth != nil {
		c.MaxDepth = *f.MaxDepth
	}
	if f.ShowHidden != nil {
		c.ShowHidden = *f.ShowHidden
	}
	if f.Pattern != nil {
		c.Pattern = f.Pattern
	}
	if f.Sort != nil {
		c.Sort = *f.Sort
	}
	if f.ShowSize != nil {
		c.ShowSize = *f.ShowSize
	}
	if f.Mode != nil {
		c.Mode = *f.Mode
	}
	if f.Classify != nil {
		c.Classify = *f.Classify
	}
	if f.Dereference != nil {
		c.Dereference = *f.Dereference
	}
	if f.Color != nil {
		c.Color = *f.Color
	}
	if f.ColorScale != nil {
		c.ColorScale = *f.ColorScale
	}
	if f.ScaleMode != nil {
		c.ScaleMode = *f.ScaleMode
	}
	if f.Icons != nil {
		c.Icons = *f.Icons
	}
	if f.NoQuotes != nil {
		c.QuoteNames = !*f.NoQuotes
	}
	if f.Hyperlink != nil {
		c.Hyperlink = *f.Hyperlink
	}
	if f.Absolute != nil {
		c.Absolute = *f.Absolute
	}
	if f.Width != nil {
		c.Width = *f.Width
	}
	if f.Across != nil {
		if *f.Across {
			c.Fill = FillAcross
		} else {
			c.Fill = FillDown
		}
	}
	if f.Recurse != nil {
		c.Recurse = *f.Recurse
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
}

// Validate checks value ranges the enumerations cannot express.
func (c *Config) Validate() error {
	if c.Root == "" {
		return models.NewConfigError("path", "", "root path cannot be empty", nil)
	}
	if c.MaxDepth < NoDepthLimit {
		return models.NewConfigError("--max-depth", fmt.Sprint(c.MaxDepth), "must be >= 0", nil)
	}
	if c.Width < 0 {
		return models.NewConfigError("--width", fmt.Sprint(c.Width), "must be > 0", nil)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return models.NewConfigError("--log-level", c.LogLevel, "must be one of: trace, debug, info, warn, error", nil)
	}

	return nil
}
