package cmd

import (
	"strconv"
	"strings"

	"github.com/harrison/treels/internal/config"
	"github.com/harrison/treels/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// listFlags holds the raw command-line values before they are merged over
// the defaults file.
type listFlags struct {
	configPath  string
	logLevel    string
	maxDepth    int
	showHidden  bool
	sort        config.SortKey
	pattern     string
	showSize    bool
	mode        config.DisplayMode
	dereference bool
	classify    config.Policy
	color       config.Policy
	colorScale  config.ColorScale
	scaleMode   config.ScaleMode
	icons       config.Policy
	noQuotes    bool
	hyperlink   bool
	absolute    config.AbsolutePolicy
	width       int
	across      bool
	recurse     bool
}

// modeFlags are the boolean switches that select a display mode. They share
// one destination so the last switch on the command line wins.
var modeFlags = []struct {
	name      string
	shorthand string
	mode      config.DisplayMode
	usage     string
}{
	{"oneline", "1", config.ModeOneLine, "List one entry per line"},
	{"long", "l", config.ModeLong, "List type, size and modification time"},
	{"grid", "G", config.ModeGrid, "List entries in columns"},
	{"tree", "T", config.ModeTree, "Show the directory tree (default)"},
}

// modeSwitch is a boolean pflag.Value writing a fixed mode into a shared
// destination.
type modeSwitch struct {
	dest *config.DisplayMode
	mode config.DisplayMode
}

func (m *modeSwitch) String() string { return "false" }

func (m *modeSwitch) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*m.dest = m.mode
	}
	return nil
}

func (m *modeSwitch) Type() string { return "bool" }

// normalizeColour accepts the British spelling for every color flag.
func normalizeColour(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "colour", "color"))
}

// register declares every flag on cmd.
func (f *listFlags) register(cmd *cobra.Command) {
	defaults := config.DefaultConfig()
	f.sort = defaults.Sort
	f.mode = defaults.Mode
	f.classify = defaults.Classify
	f.color = defaults.Color
	f.scaleMode = defaults.ScaleMode
	f.icons = defaults.Icons
	f.absolute = defaults.Absolute
	f.colorScale = defaults.ColorScale

	flags := cmd.Flags()
	flags.SetNormalizeFunc(normalizeColour)

	flags.StringVar(&f.configPath, "config", "", "Path to defaults file (default: $TREELS_CONFIG or ~/.config/treels/config.yaml)")
	flags.StringVar(&f.logLevel, "log-level", defaults.LogLevel, "Diagnostics level on stderr: trace, debug, info, warn, error")

	flags.IntVar(&f.maxDepth, "max-depth", 0, "Limit tree depth (0 shows only the root)")
	flags.BoolVar(&f.showHidden, "show-hidden", false, "Include entries whose name starts with '.'")
	flags.Var(&f.sort, "sort", "Sort entries by name, size or time")
	flags.StringVar(&f.pattern, "pattern", "", "Only list files whose name matches this regular expression")
	flags.BoolVar(&f.showSize, "show-size", false, "Append each entry's size")

	for _, mf := range modeFlags {
		flag := flags.VarPF(&modeSwitch{dest: &f.mode, mode: mf.mode}, mf.name, mf.shorthand, mf.usage)
		flag.NoOptDefVal = "true"
	}

	flags.BoolVarP(&f.dereference, "dereference", "X", false, "Show symlink targets' metadata")
	flags.VarP(&f.classify, "classify", "F", "Append a type indicator: always, auto or never")
	flags.Var(&f.color, "color", "Colorize output: always, auto or never")
	flags.Var(&f.colorScale, "color-scale", "Color entries by age, size or all")
	flags.Var(&f.scaleMode, "color-scale-mode", "Color scale style: fixed or gradient")
	flags.Var(&f.icons, "icons", "Show icons: always, auto or never")
	flags.BoolVar(&f.noQuotes, "no-quotes", false, "Never quote names containing spaces")
	flags.BoolVar(&f.hyperlink, "hyperlink", false, "Wrap names in terminal hyperlinks")
	flags.Var(&f.absolute, "absolute", "Display paths: on (canonical), follow (symlink targets) or off")
	flags.IntVarP(&f.width, "width", "w", 0, "Grid width in columns (default: terminal width)")
	flags.BoolVarP(&f.across, "across", "x", false, "Fill the grid across rows instead of down columns")
	flags.BoolVarP(&f.recurse, "recurse", "R", false, "Recurse into subdirectories in flat modes")
}

// overrides converts the flags the user actually set.
func (f *listFlags) overrides(cmd *cobra.Command, args []string) (config.FlagOverrides, error) {
	flags := cmd.Flags()
	var o config.FlagOverrides

	if len(args) == 1 {
		o.Root = &args[0]
	}
	if flags.Changed("max-depth") {
		if f.maxDepth < 0 {
			return o, models.NewConfigError("--max-depth", strconv.Itoa(f.maxDepth), "must be >= 0", nil)
		}
		o.MaxDepth = &f.maxDepth
	}
	if flags.Changed("width") {
		if f.width <= 0 {
			return o, models.NewConfigError("--width", strconv.Itoa(f.width), "must be > 0", nil)
		}
		o.Width = &f.width
	}
	if flags.Changed("pattern") {
		re, err := config.CompilePattern("--pattern", f.pattern)
		if err != nil {
			return o, err
		}
		o.Pattern = re
	}
	for _, mf := range modeFlags {
		if flags.Changed(mf.name) {
			o.Mode = &f.mode
			break
		}
	}

	setBool := func(name string, v *bool) *bool {
		if flags.Changed(name) {
			return v
		}
		return nil
	}
	o.ShowHidden = setBool("show-hidden", &f.showHidden)
	o.ShowSize = setBool("show-size", &f.showSize)
	o.Dereference = setBool("dereference", &f.dereference)
	o.NoQuotes = setBool("no-quotes", &f.noQuotes)
	o.Hyperlink = setBool("hyperlink", &f.hyperlink)
	o.Across = setBool("across", &f.across)
	o.Recurse = setBool("recurse", &f.recurse)

	if flags.Changed("sort") {
		o.Sort = &f.sort
	}
	if flags.Changed("classify") {
		o.Classify = &f.classify
	}
	if flags.Changed("color") {
		o.Color = &f.color
	}
	if flags.Changed("color-scale") {
		o.ColorScale = &f.colorScale
	}
	if flags.Changed("color-scale-mode") {
		o.ScaleMode = &f.scaleMode
	}
	if flags.Changed("icons") {
		o.Icons = &f.icons
	}
	if flags.Changed("absolute") {
		o.Absolute = &f.absolute
	}
	if flags.Changed("log-level") {
		o.LogLevel = &f.logLevel
	}

	return o, nil
}

// flagError reports pflag parse failures (unknown values, missing
// arguments) as configuration errors.
func flagError(_ *cobra.Command, err error) error {
	return models.NewConfigError("", "", "", err)
}
